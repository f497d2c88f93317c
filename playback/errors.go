package playback

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a playlist index does not refer to an entry.
var ErrOutOfRange = errors.New("playlist index out of range")

// LoadError reports a failure to load a playlist entry into the engine.
// The entry stays selected so the user can retry.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
