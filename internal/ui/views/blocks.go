package views

import (
	"strings"

	"faqflip/internal/flipcard"
)

// BlocksLayout splits the card into titled blocks under a progress bar
type BlocksLayout struct {
	styles *Styles
	answer *AnswerRenderer
}

func NewBlocksLayout(styles *Styles, answer *AnswerRenderer) *BlocksLayout {
	return &BlocksLayout{styles: styles, answer: answer}
}

func (l *BlocksLayout) Name() string { return LayoutBlocks }

func (l *BlocksLayout) Render(f Frame, width int) string {
	var parts []string
	if f.ProgressBar != "" {
		parts = append(parts, f.ProgressBar, "")
	}
	parts = append(parts, renderBlocks(l.styles, l.answer, f, width))
	return strings.Join(parts, "\n")
}

// renderBlocks is shared with the sidebar layout
func renderBlocks(s *Styles, answer *AnswerRenderer, f Frame, width int) string {
	// border and padding
	inner := max(width-4, 10)
	block := func(title, content string) string {
		return s.Block.Width(width - 2).Render(s.BlockTitle.Render(title) + "\n" + content)
	}

	question, body := cardBody(s, answer, f, inner)
	if f.Mode == flipcard.ModeTransitioning {
		return s.CardFading.Width(width - 2).Render(question)
	}

	blocks := []string{block("Question", question)}
	switch f.Mode {
	case flipcard.ModeQuestion:
		blocks = append(blocks, s.Hint.Render("  "+body))
	case flipcard.ModeAnswer:
		blocks = append(blocks, block("Answer", body))
		if len(f.Images) > 0 {
			blocks = append(blocks, block("Images", gallery(s, f.Images)))
		}
		blocks = append(blocks, block("Next question", s.Teaser.Width(inner).Render(f.Next)))
	}
	blocks = append(blocks, navBar(s, f, width))
	return strings.Join(blocks, "\n")
}
