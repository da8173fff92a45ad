package chatwise

import "time"

// Source tags every imported thread so the server can tell where it came from.
const Source = "chatwise"

// threadIDPrefix makes thread ids deterministic: the same export file always
// maps to the same id, which is what duplicate detection keys on.
const threadIDPrefix = "chatwise-"

type Thread struct {
	ThreadID   string    `json:"thread_id"`
	Title      string    `json:"title"`
	Messages   []Message `json:"messages"`
	Source     string    `json:"source"`
	ImportDate time.Time `json:"import_date"`
	Metadata   Metadata  `json:"metadata"`
}

type Message struct {
	Content string `json:"content"`
	Role    string `json:"role"` // "user" or "assistant"
}

// Metadata carries source-file fields through to the server untouched.
// Pointer fields stay null in the output when the export omitted them.
type Metadata struct {
	OriginalID string  `json:"original_id"`
	Model      *string `json:"model"`
	CreatedAt  *string `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
}
