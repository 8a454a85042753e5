// Package shell is the interactive paste-and-copy screen, plus a plain line
// mode used when standard input is not a terminal.
package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ccollicutt/topup/pkg/extractor"
	"github.com/ccollicutt/topup/pkg/session"
)

const (
	defaultWidth = 80
	inputHeight  = 10
)

type mode int

const (
	modePaste mode = iota
	modeRecords
)

// Model is the paste-and-copy screen. The session owns the records; the
// model only tracks the cursor, the paste buffer and the status line.
type Model struct {
	sess  *session.Session
	input textarea.Model
	help  help.Model
	keys  keyMap

	mode   mode
	cursor int
	status string
	width  int
}

// NewModel creates a screen over sess, starting in paste mode.
func NewModel(sess *session.Session) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste lines such as: 1001 充值 5w"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.SetWidth(defaultWidth)
	ta.SetHeight(inputHeight)
	ta.Focus()

	return Model{
		sess:  sess,
		input: ta,
		help:  help.New(),
		keys:  defaultKeys(),
		width: defaultWidth,
	}
}

// Run shows the screen until the user quits.
func Run(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(sess),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(msg.Width-2, 20))
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.mode == modePaste {
			return m.updatePaste(msg)
		}
		return m.updateRecords(msg)
	}

	if m.mode == modePaste {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Analyze):
		return m.analyze(), nil
	case key.Matches(msg, m.keys.Clear):
		return m.reset()
	case key.Matches(msg, m.keys.Back):
		if len(m.sess.Records()) > 0 {
			m.mode = modeRecords
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateRecords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.sess.Records())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.CopyID):
		return m.copy(extractor.FieldID), nil
	case key.Matches(msg, m.keys.CopyAmount):
		return m.copy(extractor.FieldAmount), nil
	case key.Matches(msg, m.keys.Edit):
		m.mode = modePaste
		m.status = ""
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	}
	return m, nil
}

// analyze extracts records from the paste buffer. The buffer is kept so the
// user can fix a line and analyze again.
func (m Model) analyze() Model {
	text := m.input.Value()
	if session.Blank(text) {
		m.status = session.EmptyTextHint
		return m
	}

	records := m.sess.Analyze(text)
	m.cursor = 0
	if len(records) == 0 {
		m.status = "No records found"
		return m
	}

	m.mode = modeRecords
	m.input.Blur()
	m.status = fmt.Sprintf("%d records", len(records))
	return m
}

func (m Model) copy(field extractor.Field) Model {
	value, err := m.sess.Copy(m.cursor, field)
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.status = fmt.Sprintf("copied %s %s", field, value)
	return m
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.sess.Reset()
	m.input.Reset()
	m.cursor = 0
	m.mode = modePaste
	m.status = "cleared"
	cmd := m.input.Focus()
	return m, cmd
}
