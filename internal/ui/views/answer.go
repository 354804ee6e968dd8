package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"faqflip/internal/markdown"
)

// AnswerRenderer turns rendered markdown blocks into styled terminal text.
// Links show their label followed by the resolved URL, since a terminal
// cannot open them on click.
type AnswerRenderer struct {
	styles *Styles
}

func NewAnswerRenderer(styles *Styles) *AnswerRenderer {
	return &AnswerRenderer{styles: styles}
}

// Below this width link targets no longer fit next to their labels
const minStyledWidth = 24

// Render returns one wrapped paragraph per block, separated by blank lines.
// Very narrow panes get the unstyled text without link targets.
func (r *AnswerRenderer) Render(blocks []markdown.Block, width int) string {
	if width > 0 && width < minStyledWidth {
		return r.styles.Body.Width(width).Render(markdown.PlainText(blocks))
	}

	paras := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var sb strings.Builder
		r.writeInlines(&sb, b.Inlines, r.styles.Body)
		p := sb.String()
		if width > 0 {
			p = lipgloss.NewStyle().Width(width).Render(p)
		}
		paras = append(paras, p)
	}
	return strings.Join(paras, "\n\n")
}

func (r *AnswerRenderer) writeInlines(sb *strings.Builder, nodes []markdown.Inline, style lipgloss.Style) {
	for _, n := range nodes {
		switch n := n.(type) {
		case markdown.Text:
			sb.WriteString(style.Render(string(n)))
		case markdown.Bold:
			r.writeInlines(sb, n.Children, r.styles.Bold)
		case markdown.Italic:
			r.writeInlines(sb, n.Children, r.styles.Italic)
		case markdown.Link:
			sb.WriteString(r.styles.LinkText.Render(n.Text))
			if n.Href != n.Text {
				sb.WriteString(r.styles.LinkURL.Render(" <" + n.Href + ">"))
			}
		}
	}
}
