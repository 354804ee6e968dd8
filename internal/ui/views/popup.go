package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent centered over a greyed-out copy of
// mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width <= 0 {
		width = max(lipgloss.Width(mainContent), modalW)
	}
	if height <= 0 {
		height = max(lipgloss.Height(mainContent), modalH)
	}
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	popupLines := strings.Split(styledPopup, "\n")

	out := make([]string, len(base))
	for i, line := range base {
		// pad so the right-hand remainder lines up with the popup edge
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		if i < y || i >= y+len(popupLines) {
			out[i] = pr.styles.Backdrop.Render(line)
			continue
		}
		left := ansi.Truncate(line, x, "")
		right := ansi.TruncateLeft(line, x+modalW, "")
		out[i] = pr.styles.Backdrop.Render(left) + popupLines[i-y] + pr.styles.Backdrop.Render(right)
	}
	return strings.Join(out, "\n")
}
