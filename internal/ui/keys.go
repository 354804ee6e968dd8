package ui

import "github.com/charmbracelet/bubbles/key"

// cardKeys documents the card mode bindings for the footer. Key handling
// itself lives in the input package.
type cardKeys struct {
	Reveal key.Binding
	Next   key.Binding
	Prev   key.Binding
	Rewind key.Binding
	Cursor key.Binding
	Jump   key.Binding
	Image  key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newCardKeys() cardKeys {
	return cardKeys{
		Reveal: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "reveal")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous")),
		Rewind: key.NewBinding(key.WithKeys("r", "0", "home"), key.WithHelp("r", "first question")),
		Cursor: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "browse list")),
		Jump:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reveal / go to")),
		Image:  key.NewBinding(key.WithKeys("i", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("i/1-9", "enlarge image")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "layout")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k cardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Next, k.Prev, k.Image, k.Help, k.Quit}
}

func (k cardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reveal, k.Jump, k.Next, k.Prev, k.Rewind},
		{k.Cursor, k.Image, k.Theme},
		{k.Help, k.Quit},
	}
}

// lightboxKeys documents the lightbox bindings
type lightboxKeys struct {
	Cycle key.Binding
	Close key.Binding
	Quit  key.Binding
}

func newLightboxKeys() lightboxKeys {
	return lightboxKeys{
		Cycle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "cycle images")),
		Close: key.NewBinding(key.WithKeys("esc", "q", "i"), key.WithHelp("esc", "close")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k lightboxKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Close, k.Quit}
}

func (k lightboxKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
