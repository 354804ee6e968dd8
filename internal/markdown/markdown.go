// Package markdown renders the small markdown dialect used by FAQ answers:
// **bold**, *italic* and [text](target) links, one paragraph per line.
//
// Emphasis is tracked as a pair of on/off toggles while a line is scanned,
// so spans never nest and markers that end up split by a link drift
// instead of failing. That output is part of the contract and must not be
// "corrected" into a nested parser.
package markdown

import (
	"regexp"
	"strings"
)

// DefaultBaseURL is the origin prepended to site-relative link targets
const DefaultBaseURL = "https://demismatch.com"

// Link attributes for outbound navigation: a new browsing context with no
// opener and no referrer.
const (
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"
)

// Private-use runes mark emphasis boundaries after the textual pass.
const (
	boldStart   = "\uE000"
	boldEnd     = "\uE001"
	italicStart = "\uE002"
	italicEnd   = "\uE003"
)

var (
	boldRE   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRE = regexp.MustCompile(`\*([^*]+)\*`)
	linkRE   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	markerRE = regexp.MustCompile("[\uE000-\uE003]")

	// restores author text inside link labels
	markerUndo = strings.NewReplacer(boldStart, "**", boldEnd, "**", italicStart, "*", italicEnd, "*")
)

// Renderer turns answer text into blocks
type Renderer struct {
	baseURL string
}

// New creates a renderer that resolves "/path" targets against baseURL
func New(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

var defaultRenderer = New(DefaultBaseURL)

// Render renders text with the default base origin
func Render(text string) []Block {
	return defaultRenderer.Render(text)
}

// Render splits text into one block per non-blank line
func (r *Renderer) Render(text string) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		blocks = append(blocks, Block{Inlines: r.renderLine(trimmed)})
	}
	return blocks
}

func (r *Renderer) renderLine(line string) []Inline {
	processed := boldRE.ReplaceAllString(line, boldStart+"${1}"+boldEnd)
	processed = italicRE.ReplaceAllString(processed, italicStart+"${1}"+italicEnd)

	var out []Inline
	var state toggles
	last := 0
	for _, m := range linkRE.FindAllStringSubmatchIndex(processed, -1) {
		if m[0] > last {
			out = state.emit(out, processed[last:m[0]])
		}
		out = append(out, Link{
			Text:   markerUndo.Replace(processed[m[2]:m[3]]),
			Href:   r.resolve(markerUndo.Replace(processed[m[4]:m[5]])),
			Target: LinkTarget,
			Rel:    LinkRel,
		})
		last = m[1]
	}
	if last < len(processed) {
		out = state.emit(out, processed[last:])
	}
	return out
}

func (r *Renderer) resolve(target string) string {
	if strings.HasPrefix(target, "/") {
		return r.baseURL + target
	}
	return target
}

// toggles is the emphasis state of the line being scanned
type toggles struct {
	bold   bool
	italic bool
}

func (s *toggles) emit(out []Inline, text string) []Inline {
	last := 0
	for _, m := range markerRE.FindAllStringIndex(text, -1) {
		out = s.text(out, text[last:m[0]])
		switch text[m[0]:m[1]] {
		case boldStart:
			s.bold = true
		case boldEnd:
			s.bold = false
		case italicStart:
			s.italic = true
		case italicEnd:
			s.italic = false
		}
		last = m[1]
	}
	return s.text(out, text[last:])
}

func (s *toggles) text(out []Inline, part string) []Inline {
	if part == "" {
		return out
	}
	switch {
	case s.bold:
		return append(out, Bold{Children: []Inline{Text(part)}})
	case s.italic:
		return append(out, Italic{Children: []Inline{Text(part)}})
	default:
		return append(out, Text(part))
	}
}
