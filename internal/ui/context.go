package ui

import "faqflip/internal/flipcard"

// cardContext exposes controller state to the input modes
type cardContext struct {
	ctrl   *flipcard.Controller
	cursor int
}

func (c cardContext) CurrentIndex() int     { return c.ctrl.Snapshot().CurrentIndex }
func (c cardContext) TotalItems() int       { return c.ctrl.Len() }
func (c cardContext) IsRevealed() bool      { return c.ctrl.Snapshot().IsRevealed }
func (c cardContext) IsTransitioning() bool { return c.ctrl.Snapshot().IsTransitioning }
func (c cardContext) ImageCount() int       { return c.ctrl.Current().ImageCount() }
func (c cardContext) ImageOpen() bool       { return c.ctrl.Snapshot().ImageOpen() }
func (c cardContext) Cursor() int           { return c.cursor }
