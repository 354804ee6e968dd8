package views

import (
	"strings"

	"faqflip/internal/flipcard"
)

// BasicLayout draws a single card, like the original flip tile
type BasicLayout struct {
	styles *Styles
	answer *AnswerRenderer
}

func NewBasicLayout(styles *Styles, answer *AnswerRenderer) *BasicLayout {
	return &BasicLayout{styles: styles, answer: answer}
}

func (l *BasicLayout) Name() string { return LayoutBasic }

func (l *BasicLayout) Render(f Frame, width int) string {
	s := l.styles
	cardStyle := s.Card
	if f.Mode == flipcard.ModeTransitioning {
		cardStyle = s.CardFading
	}
	// border and padding
	inner := max(width-6, 10)

	question, body := cardBody(s, l.answer, f, inner)
	parts := []string{question, "", body}

	if f.Mode == flipcard.ModeAnswer {
		if len(f.Images) > 0 {
			parts = append(parts, "", gallery(s, f.Images))
		}
		parts = append(parts,
			"",
			s.Dim.Render(strings.Repeat("─", inner)),
			s.Counter.Render("Next question:"),
			s.Teaser.Width(inner).Render(f.Next),
		)
	}
	parts = append(parts, "", navBar(s, f, inner))

	return cardStyle.Width(width - 2).Render(strings.Join(parts, "\n"))
}
