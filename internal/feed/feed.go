// Package feed loads the ordered FAQ entry list the flip card walks through.
package feed

import (
	"context"
	"errors"
	"fmt"

	"faqflip/internal/domain"
)

// DefaultURL is the public FAQ endpoint
const DefaultURL = "https://demismatch.com/api/faq"

var ErrEmpty = errors.New("feed returned no entries")

// Provider returns the full entry collection
type Provider interface {
	Fetch(ctx context.Context) ([]domain.Entry, error)
	Source() string
}

// FetchError is a failed load of the entry collection. The widget has no
// degraded mode without data, so callers treat it as fatal.
type FetchError struct {
	Source string
	Status int // HTTP status, 0 when the request never completed
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to fetch FAQ data from %s: status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("failed to fetch FAQ data from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// validate rejects collections the controller cannot work with
func validate(source string, entries []domain.Entry) error {
	if len(entries) == 0 {
		return &FetchError{Source: source, Err: ErrEmpty}
	}
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return &FetchError{Source: source, Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		if e.ID != "" && seen[e.ID] {
			return &FetchError{Source: source, Err: fmt.Errorf("entry %d: duplicate id %q", i, e.ID)}
		}
		seen[e.ID] = true
	}
	return nil
}
