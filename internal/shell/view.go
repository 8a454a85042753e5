package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ccollicutt/topup/pkg/extractor"
	"github.com/ccollicutt/topup/pkg/output"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
)

const copiedMark = "✓"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("topup"))
	b.WriteString("\n\n")

	if m.mode == modePaste {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.recordsView())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == modePaste {
		b.WriteString(m.help.ShortHelpView(m.keys.pasteHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.recordsHelp()))
	}

	return b.String()
}

func (m Model) recordsView() string {
	records := m.sess.Records()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-4s %-16s %16s", "#", "ID", "AMOUNT")))
	b.WriteString("\n")

	for i, r := range records {
		row := fmt.Sprintf("%-4d %-14s %s %16d %s", i, r.ID, mark(r, extractor.FieldID), r.Amount, mark(r, extractor.FieldAmount))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	sum := output.Summarize(records)
	b.WriteString(headerStyle.Render(fmt.Sprintf("\n%d records, total %d, %d fully copied", sum.Records, sum.TotalAmount, sum.Copied)))
	b.WriteString("\n")
	return b.String()
}

func mark(r extractor.Record, field extractor.Field) string {
	if r.Copied(field) {
		return checkStyle.Render(copiedMark)
	}
	return " "
}
