package flipcard

import "faqflip/internal/domain"

// Current returns the entry at the current index
func (c *Controller) Current() domain.Entry {
	return c.entries[c.state.CurrentIndex]
}

// Next returns the entry after the current one, wrapping at the end
func (c *Controller) Next() domain.Entry {
	return c.entries[(c.state.CurrentIndex+1)%len(c.entries)]
}

// ProgressFraction is (current + 1) / N
func (c *Controller) ProgressFraction() float64 {
	return float64(c.state.CurrentIndex+1) / float64(len(c.entries))
}

// FocusedImageURL returns the enlarged image, if any
func (c *Controller) FocusedImageURL() (string, bool) {
	if !c.state.ImageOpen() {
		return "", false
	}
	urls := c.Current().ImageURLs
	if c.state.FocusedImage >= len(urls) {
		return "", false
	}
	return urls[c.state.FocusedImage], true
}

// Visibility classifies entry i for the sidebar. Upcoming entries are
// limited to the lookahead window past the current index and to what the
// watermark has already unlocked.
func (c *Controller) Visibility(i int) Visibility {
	return classify(i, c.state.CurrentIndex, c.state.HighestReached, len(c.entries), c.lookahead)
}

func classify(i, current, highest, n, lookahead int) Visibility {
	switch {
	case i < 0 || i >= n:
		return Hidden
	case i < current:
		return Completed
	case i == current:
		return Current
	case i <= min(highest+lookahead, n-1) && i <= current+lookahead:
		return Upcoming
	default:
		return Hidden
	}
}

// SidebarItem is one row of the look-ahead sidebar
type SidebarItem struct {
	Index      int
	Entry      domain.Entry
	Visibility Visibility
}

// Sidebar classifies every entry, in order
func (c *Controller) Sidebar() []SidebarItem {
	items := make([]SidebarItem, len(c.entries))
	for i, e := range c.entries {
		items[i] = SidebarItem{Index: i, Entry: e, Visibility: c.Visibility(i)}
	}
	return items
}
