package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"faqflip/internal/ui/input/types"
)

// LightboxMode handles keys while an image is enlarged. Card navigation is
// unavailable until the lightbox is closed.
type LightboxMode struct{}

func NewLightboxMode() *LightboxMode {
	return &LightboxMode{}
}

func (m *LightboxMode) Name() string {
	return "lightbox"
}

func (m *LightboxMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LightboxMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LightboxMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q", "i", "enter", " ":
		return []types.Action{types.CloseImageAction{}}, true
	case "right", "l", "tab":
		return []types.Action{types.CycleImageAction{Direction: 1}}, true
	case "left", "h", "shift+tab":
		return []types.Action{types.CycleImageAction{Direction: -1}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Swallow everything else so card keys cannot leak through
	return nil, true
}
