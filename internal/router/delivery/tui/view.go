package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n\n")

	for _, lines := range a.visibleTurns() {
		b.WriteString(lines)
	}

	b.WriteString(styleBox.Render(a.input.View()))
	b.WriteString("\n")

	status := "enter send • esc quit"
	if a.pending {
		status = "thinking... • esc quit"
	}
	b.WriteString(styleStatusBar.Render(status))

	return b.String()
}

// visibleTurns renders the transcript, keeping only the most recent turns
// that fit on screen.
func (a *App) visibleTurns() []string {
	width := a.width - 4
	if width < 20 {
		width = 76
	}
	wrap := lipgloss.NewStyle().Width(width)

	rendered := make([]string, 0, len(a.transcript))
	for i, t := range a.transcript {
		reply := t.Reply
		if reply == "" && a.pending && i == len(a.transcript)-1 {
			reply = "..."
		}
		rendered = append(rendered,
			styleUser.Render(wrap.Render("> You: "+t.Input))+"\n"+
				styleBot.Render(wrap.Render("< Bot: "+reply))+"\n\n")
	}

	if a.height <= 0 {
		return rendered
	}

	budget := a.height - 6
	used := 0
	start := len(rendered)
	for start > 0 {
		h := lipgloss.Height(rendered[start-1])
		if used+h > budget {
			break
		}
		used += h
		start--
	}
	return rendered[start:]
}
