package markdown

import "strings"

// Block is one paragraph, produced from one non-blank input line
type Block struct {
	Inlines []Inline
}

// Inline is one of Text, Bold, Italic or Link
type Inline interface {
	inline()
}

// Text is plain, unformatted text
type Text string

// Bold wraps strongly emphasized content
type Bold struct {
	Children []Inline
}

// Italic wraps emphasized content
type Italic struct {
	Children []Inline
}

// Link is an outbound link. Href is already resolved against the base origin.
type Link struct {
	Text   string
	Href   string
	Target string
	Rel    string
}

func (Text) inline()   {}
func (Bold) inline()   {}
func (Italic) inline() {}
func (Link) inline()   {}

// PlainText flattens blocks into text, one line per block
func PlainText(blocks []Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var sb strings.Builder
		writePlain(&sb, b.Inlines)
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func writePlain(sb *strings.Builder, nodes []Inline) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			sb.WriteString(string(n))
		case Bold:
			writePlain(sb, n.Children)
		case Italic:
			writePlain(sb, n.Children)
		case Link:
			sb.WriteString(n.Text)
		}
	}
}
