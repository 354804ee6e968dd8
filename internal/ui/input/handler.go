package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"faqflip/internal/ui/input/modes"
	"faqflip/internal/ui/input/types"
)

// Handler routes keys to the mode matching the card's current state
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeCard,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeCard] = modes.NewCardMode()
	h.modes[types.ModeLightbox] = modes.NewLightboxMode()

	return h
}

// HandleKey translates a key into actions. Escape is handled here, before
// any mode sees it, so it closes the lightbox from everywhere.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	actions := h.sync(ctx)

	if msg.Type == tea.KeyEsc {
		return append(actions, types.CancelAction{})
	}

	handler := h.modes[h.currentMode]
	if handler == nil {
		return actions
	}

	modeActions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return actions
	}
	return append(actions, modeActions...)
}

// sync moves the handler into the mode the card state calls for
func (h *Handler) sync(ctx types.Context) []types.Action {
	want := types.ModeCard
	if ctx.ImageOpen() {
		want = types.ModeLightbox
	}
	if want == h.currentMode {
		return nil
	}

	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	h.currentMode = want
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the mode used for the last key
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeCard
	}
	return h.currentMode
}
