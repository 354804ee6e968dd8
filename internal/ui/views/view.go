package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"faqflip/internal/flipcard"
	"faqflip/internal/markdown"
)

// Frame contains all the state needed for rendering one screen
type Frame struct {
	Width  int
	Height int

	Index    int
	Total    int
	Mode     flipcard.Mode
	Question string
	Answer   []markdown.Block
	Next     string
	Images   []string

	// FocusedImage is flipcard.NoImage unless the lightbox is open
	FocusedImage int

	Sidebar []flipcard.SidebarItem
	Cursor  int

	ProgressBar   string
	StatusMessage string
	StatusWarning bool
	Footer        string
}

// LightboxOpen reports whether an enlarged image should be drawn
func (f Frame) LightboxOpen() bool {
	return f.FocusedImage >= 0 && f.FocusedImage < len(f.Images)
}

// Layout arranges the card, its answer and its navigation on screen.
// All layouts consume the same Frame, built from one controller.
type Layout interface {
	Name() string
	// Render draws the body between the title line and the footer
	Render(f Frame, width int) string
}

// Layout names, in the order the theme key cycles through them
const (
	LayoutBasic   = "basic"
	LayoutBlocks  = "blocks"
	LayoutSidebar = "sidebar"
)

// LayoutNames lists every registered layout
var LayoutNames = []string{LayoutBasic, LayoutBlocks, LayoutSidebar}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	answer      *AnswerRenderer
	popupRender *PopupRenderer
	layouts     map[string]Layout
}

// NewRenderer creates a new renderer with every layout registered
func NewRenderer() *Renderer {
	styles := NewStyles()
	answer := NewAnswerRenderer(styles)
	return &Renderer{
		styles:      styles,
		answer:      answer,
		popupRender: NewPopupRenderer(styles),
		layouts: map[string]Layout{
			LayoutBasic:   NewBasicLayout(styles, answer),
			LayoutBlocks:  NewBlocksLayout(styles, answer),
			LayoutSidebar: NewSidebarLayout(styles, answer),
		},
	}
}

// Layout returns the named layout, falling back to the sidebar layout
func (r *Renderer) Layout(name string) Layout {
	if l, ok := r.layouts[name]; ok {
		return l
	}
	return r.layouts[LayoutSidebar]
}

// Render produces the complete view
func (r *Renderer) Render(layout string, f Frame) string {
	content := &strings.Builder{}

	termWidth := f.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Account for main container padding
	inner := termWidth - 4

	content.WriteString(r.titleLine(f, inner))
	content.WriteString("\n\n")
	content.WriteString(r.Layout(layout).Render(f, inner))

	body := content.String()
	if f.Footer != "" {
		footer := r.styles.Help.Render(f.Footer)
		footerLines := lipgloss.Height(footer)
		availableLines := f.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		// the footer wins over the bottom of the body when both don't fit
		lines := strings.Split(body, "\n")
		if room := max(availableLines-footerLines, 1); len(lines) > room {
			lines = lines[:room]
		}
		body = strings.Join(lines, "\n")
		if pad := availableLines - len(lines) - footerLines; pad > 0 {
			body += strings.Repeat("\n", pad)
		}
		body += "\n" + footer
	}

	mainStyle := r.styles.Main
	if f.Height > 0 {
		mainStyle = mainStyle.MaxHeight(f.Height)
	}
	finalContent := mainStyle.Render(body)

	if f.LightboxOpen() {
		return r.popupRender.RenderPopupOverlay(finalContent, r.lightboxContent(f), f.Height, f.Width, r.styles.Lightbox)
	}
	return finalContent
}

func (r *Renderer) titleLine(f Frame, width int) string {
	logo := r.styles.Title.Render("faqflip")

	right := r.styles.Counter.Render(fmt.Sprintf("%d / %d", f.Index+1, f.Total))
	if f.StatusMessage != "" {
		status := r.styles.Status
		if f.StatusWarning {
			status = r.styles.StatusWarn
		}
		right = status.Render(f.StatusMessage) + "  " + right
	}

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) lightboxContent(f Frame) string {
	var sb strings.Builder
	sb.WriteString(r.styles.LightboxTitle.Render(fmt.Sprintf("Image %d of %d", f.FocusedImage+1, len(f.Images))))
	sb.WriteString("\n\n")
	sb.WriteString(r.styles.LinkText.Render(f.Images[f.FocusedImage]))
	sb.WriteString("\n\n")
	sb.WriteString(r.styles.Hint.Render(f.Question))
	sb.WriteString("\n\n")
	hint := "esc close"
	if len(f.Images) > 1 {
		hint = "←/→ cycle  " + hint
	}
	sb.WriteString(r.styles.Dim.Render(hint))
	return sb.String()
}

// cardBody renders the question side and, once revealed, the answer side.
// While the card is switching entries only a faded placeholder is shown.
func cardBody(s *Styles, answer *AnswerRenderer, f Frame, width int) (question, body string) {
	switch f.Mode {
	case flipcard.ModeTransitioning:
		return s.Dim.Render(f.Question), ""
	case flipcard.ModeQuestion:
		return s.Question.Width(width).Render(f.Question), s.Hint.Render("press space to reveal the answer")
	default:
		return s.Question.Width(width).Render(f.Question), answer.Render(f.Answer, width)
	}
}

// gallery lists image URLs as numbered thumbnails
func gallery(s *Styles, images []string) string {
	lines := make([]string, len(images))
	for i, url := range images {
		lines[i] = fmt.Sprintf("%s %s", s.Counter.Render(fmt.Sprintf("[%d]", i+1)), s.LinkURL.Render(url))
	}
	return strings.Join(lines, "\n")
}

// navBar mirrors the card's << < > controls and position counter
func navBar(s *Styles, f Frame, width int) string {
	buttons := s.NavButton.Render("<<") + s.NavButton.Render("<") + s.NavButton.Render(">")
	counter := s.Counter.Render(fmt.Sprintf("%d / %d", f.Index+1, f.Total))
	gap := width - lipgloss.Width(buttons) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	return buttons + strings.Repeat(" ", gap) + counter
}
