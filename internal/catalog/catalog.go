package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("entry not found")
	ErrMalformedSnapshot  = errors.New("malformed catalog snapshot")
	ErrStorageUnavailable = errors.New("catalog storage unavailable")
	ErrInvalidDirection   = errors.New("invalid direction")
)

// Catalog operations never return errors. Mutations report success as a
// boolean and callers re-read List to observe the result.
type Catalog interface {
	List() []Entry
	Get(id string) (Entry, bool)
	Create(e Entry) (Entry, bool)
	Update(id string, f Fields) bool
	Delete(id string) bool
	Reorder(id string, d Direction) bool
	Reset() bool
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
