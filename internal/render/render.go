package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/nowledge-app/chatwise-import/internal/chatwise"
	"github.com/nowledge-app/chatwise-import/internal/importer"
)

// previewWidth is how many columns of the first message the summary shows.
const previewWidth = 100

// titleWidth caps titles in the conversation table.
const titleWidth = 40

// maxFailureLines is how many failed records the batch report lists before
// collapsing the rest into a count.
const maxFailureLines = 5

var (
	// Colors
	colorPrimary = lipgloss.Color("12")  // bright blue
	colorOK      = lipgloss.Color("10")  // bright green
	colorWarn    = lipgloss.Color("11")  // bright yellow
	colorError   = lipgloss.Color("9")   // bright red
	colorDim     = lipgloss.Color("240") // gray
	colorBorder  = lipgloss.Color("238") // dark gray

	styleBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 2)

	styleHeader = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOK).
			Foreground(colorOK).
			Padding(0, 1)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Width(15)

	styleTableHeader = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1)

	styleTableCell = lipgloss.NewStyle().
			Padding(0, 1)

	styleOk   = lipgloss.NewStyle().Foreground(colorOK)
	styleWarn = lipgloss.NewStyle().Foreground(colorWarn)
	styleFail = lipgloss.NewStyle().Foreground(colorError)
	styleDim  = lipgloss.NewStyle().Foreground(colorDim)
)

// Banner renders the startup panel.
func Banner() string {
	return styleBanner.Render("ChatWise → Nowledge Mem importer")
}

// Header renders a mode header panel.
func Header(text string) string {
	return styleHeader.Render(text)
}

func Ok(s string) string   { return styleOk.Render(s) }
func Warn(s string) string { return styleWarn.Render(s) }
func Fail(s string) string { return styleFail.Render(s) }
func Dim(s string) string  { return styleDim.Render(s) }

// Truncate cuts s to at most w display columns.
func Truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "")
}

// Preview flattens and shortens message content for single-line display.
func Preview(s string, w int) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "") + "..."
}

// SummaryPanel renders the details of one conversation for the interactive
// confirm prompt.
func SummaryPanel(chat *chatwise.Thread) string {
	model := "N/A"
	if chat.Metadata.Model != nil {
		model = *chat.Metadata.Model
	}
	created := "N/A"
	if chat.Metadata.CreatedAt != nil {
		created = Truncate(*chat.Metadata.CreatedAt, 19)
	}

	rows := []string{
		styleLabel.Render("Title") + chat.Title,
		styleLabel.Render("Messages") + strconv.Itoa(len(chat.Messages)),
		styleLabel.Render("Model") + model,
		styleLabel.Render("Created") + created,
		styleLabel.Render("First message") + Preview(chat.Messages[0].Content, previewWidth),
	}
	return stylePanel.Render(strings.Join(rows, "\n"))
}

// ChatTable renders the numbered overview of every parsed conversation.
func ChatTable(chats []*chatwise.Thread) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col == 0:
				return styleTableCell.Foreground(colorDim)
			case col == 2:
				return styleTableCell.Align(lipgloss.Right)
			default:
				return styleTableCell
			}
		}).
		Headers("#", "TITLE", "MSGS", "CREATED")

	for i, chat := range chats {
		created := ""
		if chat.Metadata.CreatedAt != nil {
			created = Truncate(*chat.Metadata.CreatedAt, 10)
		}
		t.Row(strconv.Itoa(i+1), Truncate(chat.Title, titleWidth), strconv.Itoa(len(chat.Messages)), created)
	}

	return t.Render()
}

// BatchReport writes the end-of-run summary for a batch import.
func BatchReport(w io.Writer, res importer.BatchResult) {
	fmt.Fprintln(w, Ok(fmt.Sprintf("✓ Imported: %d", res.Succeeded)))
	if res.Duplicates > 0 {
		fmt.Fprintln(w, Warn(fmt.Sprintf("⊘ Duplicates skipped: %d", res.Duplicates)))
	}
	if len(res.Failures) == 0 {
		return
	}

	fmt.Fprintln(w, Fail(fmt.Sprintf("✗ Failed: %d", len(res.Failures))))
	for i, f := range res.Failures {
		if i == maxFailureLines {
			fmt.Fprintln(w, Dim(fmt.Sprintf("  ... and %d more", len(res.Failures)-maxFailureLines)))
			break
		}
		fmt.Fprintln(w, Dim(fmt.Sprintf("  - %s: %s", f.Title, f.Reason)))
	}
}
