// Package storage keeps whole serialized documents under short namespaced keys.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotExist    = errors.New("key not found")
	ErrUnavailable = errors.New("storage unavailable")
	ErrInvalidKey  = errors.New("invalid storage key")
)

// Store replaces documents wholesale; there is no partial write.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, doc []byte) error
	Remove(key string) error
}

func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.HasPrefix(key, ".") {
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidKey, key)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidKey, key, r)
		}
	}
	return nil
}
