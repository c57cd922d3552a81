package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cachedStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func renderTitle(s string) string {
	return titleStyle.Render(s)
}

// renderCard draws a titled box of label/value rows.
func renderCard(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderCachedNotice marks data served from the local snapshot cache.
func renderCachedNotice(at time.Time) string {
	return cachedStyle.Render(fmt.Sprintf("(offline, cached %s)", at.Format("2006-01-02 15:04 MST")))
}

func checkmark(done bool) string {
	if done {
		return doneStyle.Render("✓")
	}
	return "·"
}
