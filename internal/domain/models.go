package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Entry is one question/answer/image-set unit of the FAQ sequence
type Entry struct {
	ID        string   `json:"id" yaml:"id"`
	Question  string   `json:"question" yaml:"question"`
	Answer    string   `json:"answer" yaml:"answer"`
	ImageURLs []string `json:"imageUrls" yaml:"imageUrls"`
}

var (
	ErrEmptyQuestion = errors.New("entry has an empty question")
	ErrNoImages      = errors.New("entry has no images")
)

// entryWire mirrors the feed format, which has carried both a single
// imageUrl and an imageUrls array over time
type entryWire struct {
	ID        json.RawMessage `json:"id"`
	Question  string          `json:"question"`
	Answer    string          `json:"answer"`
	ImageURL  string          `json:"imageUrl"`
	ImageURLs []string        `json:"imageUrls"`
}

// UnmarshalJSON accepts an integer or string id and either image field
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w entryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id, err := decodeID(w.ID)
	if err != nil {
		return err
	}

	e.ID = id
	e.Question = w.Question
	e.Answer = w.Answer
	e.ImageURLs = w.ImageURLs
	if len(e.ImageURLs) == 0 && w.ImageURL != "" {
		e.ImageURLs = []string{w.ImageURL}
	}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid entry id %s: %w", trimmed, err)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}

// Validate checks the per-entry invariants the widget relies on
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Question) == "" {
		return fmt.Errorf("entry %q: %w", e.ID, ErrEmptyQuestion)
	}
	if len(e.ImageURLs) == 0 {
		return fmt.Errorf("entry %q: %w", e.ID, ErrNoImages)
	}
	return nil
}

// ImageCount returns the number of gallery images
func (e Entry) ImageCount() int {
	return len(e.ImageURLs)
}
