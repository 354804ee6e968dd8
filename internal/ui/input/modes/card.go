package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"faqflip/internal/ui/input/types"
)

// CardMode handles keys while the flip card itself has focus
type CardMode struct{}

func NewCardMode() *CardMode {
	return &CardMode{}
}

func (m *CardMode) Name() string {
	return "card"
}

func (m *CardMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *CardMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *CardMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyRight:
		return []types.Action{types.AdvanceAction{}}, true

	case tea.KeyLeft:
		return []types.Action{types.RetreatAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case tea.KeyDown:
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case tea.KeyHome:
		return []types.Action{types.RewindAction{}}, true

	case tea.KeyEnter:
		// Enter on another sidebar row jumps there, otherwise it flips the card
		if ctx.Cursor() != ctx.CurrentIndex() {
			return []types.Action{types.JumpAction{Index: ctx.Cursor()}}, true
		}
		if !ctx.IsRevealed() {
			return []types.Action{types.RevealAction{}}, true
		}
		return []types.Action{types.AdvanceAction{}}, true
	}

	switch key := msg.String(); key {
	case " ":
		return []types.Action{types.RevealAction{}}, true

	case "l", "n":
		return []types.Action{types.AdvanceAction{}}, true

	case "h", "p":
		return []types.Action{types.RetreatAction{}}, true

	case "k":
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case "j":
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case "r", "0":
		return []types.Action{types.RewindAction{}}, true

	case "i":
		if ctx.ImageCount() > 0 {
			return []types.Action{types.OpenImageAction{Index: 0}}, true
		}
		return nil, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		// Digits pick a thumbnail from the gallery
		idx := int(key[0] - '1')
		if idx < ctx.ImageCount() {
			return []types.Action{types.OpenImageAction{Index: idx}}, true
		}
		return nil, true

	case "t":
		return []types.Action{types.CycleThemeAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
