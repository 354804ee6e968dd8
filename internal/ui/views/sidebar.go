package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"faqflip/internal/flipcard"
)

// SidebarLayout shows the look-ahead list next to the card. Completed,
// current and upcoming entries are listed; hidden ones are left out.
type SidebarLayout struct {
	styles *Styles
	answer *AnswerRenderer
}

func NewSidebarLayout(styles *Styles, answer *AnswerRenderer) *SidebarLayout {
	return &SidebarLayout{styles: styles, answer: answer}
}

func (l *SidebarLayout) Name() string { return LayoutSidebar }

func (l *SidebarLayout) Render(f Frame, width int) string {
	sideWidth := min(max(width/3, 16), 36)
	mainWidth := width - sideWidth - 2

	side := l.styles.Sidebar.Width(sideWidth).Render(l.renderSidebar(f, sideWidth-2))

	var main strings.Builder
	if f.ProgressBar != "" {
		main.WriteString(f.ProgressBar)
		main.WriteString("\n\n")
	}
	main.WriteString(renderBlocks(l.styles, l.answer, f, mainWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, side, " ", main.String())
}

func (l *SidebarLayout) renderSidebar(f Frame, width int) string {
	s := l.styles
	lines := []string{s.BlockTitle.Render("Questions")}

	for _, item := range f.Sidebar {
		var marker string
		var style lipgloss.Style
		switch item.Visibility {
		case flipcard.Completed:
			marker, style = "✓", s.ItemCompleted
		case flipcard.Current:
			marker, style = "▸", s.ItemCurrent
		case flipcard.Upcoming:
			marker, style = "·", s.ItemUpcoming
		default:
			continue
		}

		label := fmt.Sprintf("%s %d. %s", marker, item.Index+1, item.Entry.Question)
		label = ansi.Truncate(label, width, "…")
		line := style.Render(label)
		if item.Index == f.Cursor && f.Cursor != f.Index {
			line = s.CursorBg.Render(label)
		}
		lines = append(lines, line)
	}

	if hidden := countHidden(f.Sidebar); hidden > 0 {
		lines = append(lines, s.Dim.Render(fmt.Sprintf("  +%d more", hidden)))
	}
	return strings.Join(lines, "\n")
}

func countHidden(items []flipcard.SidebarItem) int {
	n := 0
	for _, item := range items {
		if item.Visibility == flipcard.Hidden {
			n++
		}
	}
	return n
}
