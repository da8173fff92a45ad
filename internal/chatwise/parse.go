package chatwise

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// chatFile mirrors one exported chat-*.json document.
type chatFile struct {
	ID        *string       `json:"id"`
	Title     *string       `json:"title"`
	Messages  []chatMessage `json:"messages"`
	Model     *string       `json:"model"`
	CreatedAt *string       `json:"createdAt"`
	UpdatedAt *string       `json:"updatedAt"`
}

type chatMessage struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// ChatFiles lists the chat-*.json files directly under dir, in lexical order.
func ChatFiles(dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, "chat-*.json"))
}

// ParseFile reads one exported conversation. A non-nil error means the file
// could not be parsed and should be skipped with a warning. A nil Thread with
// a nil error means the conversation had no importable messages.
func ParseFile(path string) (*Thread, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw chatFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if raw.ID == nil {
		return nil, fmt.Errorf("parse %s: missing id field", filepath.Base(path))
	}

	var msgs []Message
	for _, m := range raw.Messages {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		role := m.Role
		if role == "" {
			role = "user"
		}
		msgs = append(msgs, Message{Content: content, Role: role})
	}
	if len(msgs) == 0 {
		return nil, nil
	}

	// An empty title present in the export stays empty; only an absent
	// field gets the fallback.
	title := "Untitled"
	if raw.Title != nil {
		title = *raw.Title
	}

	return &Thread{
		ThreadID:   threadIDPrefix + *raw.ID,
		Title:      title,
		Messages:   msgs,
		Source:     Source,
		ImportDate: time.Now(),
		Metadata: Metadata{
			OriginalID: *raw.ID,
			Model:      raw.Model,
			CreatedAt:  raw.CreatedAt,
			UpdatedAt:  raw.UpdatedAt,
		},
	}, nil
}
