package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/nowledge-app/chatwise-import/internal/chatwise"
)

// progressTitleWidth is how many columns of the title the per-record
// progress line shows.
const progressTitleWidth = 30

// Creator uploads one conversation and returns the server-assigned id.
// *mem.Client satisfies it.
type Creator interface {
	CreateThread(ctx context.Context, thread *chatwise.Thread) (string, error)
}

// Failure records one conversation the server rejected.
type Failure struct {
	Title  string
	Reason string
}

// BatchResult aggregates one batch run. Succeeded + Duplicates +
// len(Failures) always equals the number of input records.
type BatchResult struct {
	Succeeded  int
	Duplicates int
	Failures   []Failure
}

// RunBatch uploads every non-duplicate record in order, writing a progress
// line per attempt to out. Failures are recorded and the run continues.
func RunBatch(ctx context.Context, creator Creator, chats []*chatwise.Thread, known KnownIDs, out io.Writer) BatchResult {
	var res BatchResult

	for i, chat := range chats {
		if known.Has(chat.ThreadID) {
			res.Duplicates++
			continue
		}

		fmt.Fprintf(out, "(%d/%d) Importing: %s...\n", i+1, len(chats), runewidth.Truncate(chat.Title, progressTitleWidth, ""))

		if _, err := creator.CreateThread(ctx, chat); err != nil {
			res.Failures = append(res.Failures, Failure{Title: chat.Title, Reason: err.Error()})
			continue
		}
		res.Succeeded++
	}

	return res
}
