package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nowledge-app/chatwise-import/internal/chatwise"
	"github.com/nowledge-app/chatwise-import/internal/importer"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short stays whole", "hello world", 100, "hello world"},
		{"flattens whitespace", "a\nb\t c", 100, "a b c"},
		{"long gets ellipsis", strings.Repeat("x", 120), 100, strings.Repeat("x", 100) + "..."},
		{"exact width untouched", strings.Repeat("x", 100), 100, strings.Repeat("x", 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.in, tt.width); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummaryPanel_MissingMetadata(t *testing.T) {
	chat := &chatwise.Thread{
		ThreadID: "chatwise-1",
		Title:    "Lunch ideas",
		Messages: []chatwise.Message{{Content: "something quick", Role: "user"}},
	}

	panel := SummaryPanel(chat)
	if !strings.Contains(panel, "Lunch ideas") {
		t.Errorf("panel missing title:\n%s", panel)
	}
	if !strings.Contains(panel, "N/A") {
		t.Errorf("nil model and created time should render as N/A:\n%s", panel)
	}
	if !strings.Contains(panel, "something quick") {
		t.Errorf("panel missing first message preview:\n%s", panel)
	}
}

func TestSummaryPanel_ClipsCreatedTime(t *testing.T) {
	created := "2026-05-01T09:30:00.000Z"
	chat := &chatwise.Thread{
		Title:    "t",
		Messages: []chatwise.Message{{Content: "hi", Role: "user"}},
		Metadata: chatwise.Metadata{CreatedAt: &created},
	}

	panel := SummaryPanel(chat)
	if !strings.Contains(panel, "2026-05-01T09:30:00") {
		t.Errorf("created time should keep 19 characters:\n%s", panel)
	}
	if strings.Contains(panel, ".000Z") {
		t.Errorf("created time should be clipped:\n%s", panel)
	}
}

func TestChatTable(t *testing.T) {
	created := "2026-05-01T09:30:00.000Z"
	chats := []*chatwise.Thread{
		{
			Title:    strings.Repeat("long title ", 10),
			Messages: []chatwise.Message{{Content: "a"}, {Content: "b"}},
			Metadata: chatwise.Metadata{CreatedAt: &created},
		},
		{
			Title:    "Second",
			Messages: []chatwise.Message{{Content: "c"}},
		},
	}

	out := ChatTable(chats)
	if !strings.Contains(out, "TITLE") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Second") {
		t.Errorf("missing row:\n%s", out)
	}
	if !strings.Contains(out, "2026-05-01") {
		t.Errorf("created column should hold the date part:\n%s", out)
	}
	if strings.Contains(out, "T09:30") {
		t.Errorf("created column should clip the time part:\n%s", out)
	}
}

func TestBatchReport(t *testing.T) {
	res := importer.BatchResult{
		Succeeded:  3,
		Duplicates: 2,
		Failures: []importer.Failure{
			{Title: "f1", Reason: "api error 500: a"},
			{Title: "f2", Reason: "api error 500: b"},
			{Title: "f3", Reason: "api error 500: c"},
			{Title: "f4", Reason: "api error 500: d"},
			{Title: "f5", Reason: "api error 500: e"},
			{Title: "f6", Reason: "api error 500: f"},
			{Title: "f7", Reason: "api error 500: g"},
		},
	}

	var out bytes.Buffer
	BatchReport(&out, res)
	got := out.String()

	if !strings.Contains(got, "✓ Imported: 3") {
		t.Errorf("missing success line:\n%s", got)
	}
	if !strings.Contains(got, "⊘ Duplicates skipped: 2") {
		t.Errorf("missing duplicate line:\n%s", got)
	}
	if !strings.Contains(got, "✗ Failed: 7") {
		t.Errorf("missing failure line:\n%s", got)
	}
	if !strings.Contains(got, "f5") {
		t.Errorf("first five failures should be listed:\n%s", got)
	}
	if strings.Contains(got, "f6") {
		t.Errorf("failures past the fifth should be collapsed:\n%s", got)
	}
	if !strings.Contains(got, "... and 2 more") {
		t.Errorf("missing overflow note:\n%s", got)
	}
}

func TestBatchReport_CleanRun(t *testing.T) {
	var out bytes.Buffer
	BatchReport(&out, importer.BatchResult{Succeeded: 4})
	got := out.String()

	if !strings.Contains(got, "✓ Imported: 4") {
		t.Errorf("missing success line:\n%s", got)
	}
	if strings.Contains(got, "Duplicates") || strings.Contains(got, "Failed") {
		t.Errorf("zero counts should not be reported:\n%s", got)
	}
}
