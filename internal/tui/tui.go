package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nowledge-app/chatwise-import/internal/chatwise"
	"github.com/nowledge-app/chatwise-import/internal/importer"
	"github.com/nowledge-app/chatwise-import/internal/render"
)

type phase int

const (
	phaseStarting phase = iota
	phasePresenting
	phaseUploading
	phaseDone
)

// message types

type startMsg struct{}

type uploadResultMsg struct {
	id  string
	err error
}

// Totals counts the outcomes of one interactive run. Records after an early
// quit are neither processed nor counted.
type Totals struct {
	Imported   int
	Skipped    int
	Duplicates int
}

// model

type model struct {
	ctx     context.Context
	creator importer.Creator
	chats   []*chatwise.Thread
	known   importer.KnownIDs

	cursor int
	phase  phase
	spin   spinner.Model
	totals Totals
	quit   bool
}

func newModel(ctx context.Context, creator importer.Creator, chats []*chatwise.Thread, known importer.KnownIDs) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	return model{
		ctx:     ctx,
		creator: creator,
		chats:   chats,
		known:   known,
		spin:    sp,
	}
}

// Run walks the records in order, asking for a decision on each one not
// already on the server. It blocks until the last record is handled or the
// user quits, and reports whether the run was cut short.
func Run(ctx context.Context, creator importer.Creator, chats []*chatwise.Thread, known importer.KnownIDs) (Totals, bool, error) {
	if len(chats) == 0 {
		return Totals{}, false, nil
	}

	p := tea.NewProgram(newModel(ctx, creator, chats, known))
	final, err := p.Run()
	if err != nil {
		return Totals{}, false, fmt.Errorf("tui: %w", err)
	}

	fm := final.(model)
	return fm.totals, fm.quit, nil
}

// Init kicks off the walk over the records.
func (m model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case startMsg:
		cmd := m.advance()
		return m, cmd

	case tea.KeyMsg:
		// An in-flight upload is never interrupted; keys are dropped
		// until the result comes back.
		if m.phase != phasePresenting {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Accept):
			m.phase = phaseUploading
			return m, tea.Batch(m.spin.Tick, m.uploadCmd())

		case key.Matches(msg, keys.Skip):
			m.totals.Skipped++
			line := m.recordLine(m.cursor) + "\n" + render.Dim("skipped")
			m.cursor++
			cmd := m.printAndAdvance(line)
			return m, cmd

		case key.Matches(msg, keys.Quit):
			m.quit = true
			m.phase = phaseDone
			return m, tea.Quit
		}
		return m, nil

	case uploadResultMsg:
		if m.phase != phaseUploading {
			return m, nil
		}
		var line string
		if msg.err != nil {
			line = m.recordLine(m.cursor) + "\n" + render.Fail("✗ "+msg.err.Error())
		} else {
			m.totals.Imported++
			line = m.recordLine(m.cursor) + "\n" + render.Ok("✓ Created thread "+msg.id)
		}
		m.cursor++
		cmd := m.printAndAdvance(line)
		return m, cmd

	case spinner.TickMsg:
		if m.phase != phaseUploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the pending record; decided records persist in the scrollback
// through println commands instead.
func (m model) View() string {
	switch m.phase {
	case phasePresenting:
		chat := m.chats[m.cursor]
		var b strings.Builder
		b.WriteString(styleCount.Render(fmt.Sprintf("(%d/%d)", m.cursor+1, len(m.chats))))
		b.WriteString("\n")
		b.WriteString(render.SummaryPanel(chat))
		b.WriteString("\n")
		b.WriteString(stylePrompt.Render("Import this conversation?"))
		b.WriteString(" ")
		b.WriteString(styleKeys.Render("[Y/n/q]"))
		b.WriteString(" ")
		return b.String()

	case phaseUploading:
		return fmt.Sprintf("%s Importing: %s...", m.spin.View(), render.Truncate(m.chats[m.cursor].Title, 30))

	default:
		return ""
	}
}

// advance walks the cursor to the next record that needs a decision,
// printing and counting duplicates on the way. Reaching the end quits the
// program.
func (m *model) advance() tea.Cmd {
	var lines []string
	for m.cursor < len(m.chats) {
		chat := m.chats[m.cursor]
		if !m.known.Has(chat.ThreadID) {
			break
		}
		m.totals.Duplicates++
		lines = append(lines, m.recordLine(m.cursor)+"\n"+render.Warn("⊘ already exists, skipping"))
		m.cursor++
	}

	var cmds []tea.Cmd
	if len(lines) > 0 {
		cmds = append(cmds, tea.Println(strings.Join(lines, "\n")))
	}

	if m.cursor >= len(m.chats) {
		m.phase = phaseDone
		cmds = append(cmds, tea.Quit)
	} else {
		m.phase = phasePresenting
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Sequence(cmds...)
}

// printAndAdvance persists one outcome line, then continues the walk.
func (m *model) printAndAdvance(line string) tea.Cmd {
	cmds := []tea.Cmd{tea.Println(line)}
	if cmd := m.advance(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Sequence(cmds...)
}

func (m model) uploadCmd() tea.Cmd {
	ctx := m.ctx
	creator := m.creator
	chat := m.chats[m.cursor]
	return func() tea.Msg {
		id, err := creator.CreateThread(ctx, chat)
		return uploadResultMsg{id: id, err: err}
	}
}

func (m model) recordLine(i int) string {
	return fmt.Sprintf("(%d/%d) %s", i+1, len(m.chats), render.Dim(m.chats[i].Title))
}
