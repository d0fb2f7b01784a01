package assert

import "fmt"

// Success unwraps v for calls that can only fail on a programming error,
// such as encoding a value of a known, JSON-safe type.
func Success[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("unexpected failure: %w", err))
	}
	return v
}
