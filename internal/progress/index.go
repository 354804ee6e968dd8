package progress

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MalformedValueError reports a stored index that is not an integer in
// [0, Limit)
type MalformedValueError struct {
	Key   string
	Value string
	Limit int
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("stored %s=%q is not an index in [0, %d)", e.Key, e.Value, e.Limit)
}

// ReadIndex reads key as an index into a collection of n entries.
// Missing keys return ErrNotFound; unusable values a *MalformedValueError.
func ReadIndex(s Store, key string, n int) (int, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, err
	}

	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 0 || idx >= n {
		return 0, &MalformedValueError{Key: key, Value: raw, Limit: n}
	}
	return idx, nil
}

// WriteIndex stores idx in base 10
func WriteIndex(s Store, key string, idx int) error {
	return s.Set(key, strconv.Itoa(idx))
}

// IsMalformed reports whether err is a *MalformedValueError
func IsMalformed(err error) bool {
	var m *MalformedValueError
	return errors.As(err, &m)
}

// Reset removes the stored position so the next session starts over
func Reset(s Store) error {
	if err := s.Delete(KeyIndex); err != nil {
		return err
	}
	return s.Delete(KeyHighest)
}
