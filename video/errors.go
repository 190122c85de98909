package video

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable covers a file that is missing, unreadable or
	// undecodable, whether detected at open time or while reading.
	ErrSourceUnavailable = errors.New("video source unavailable")

	ErrStreamActive        = errors.New("stream already started")
	ErrUnsupportedProperty = errors.New("unsupported property")
	ErrInvalidProperty     = errors.New("invalid property value")
	ErrDependencyMissing   = errors.New("required tool not found")
)

func unavailable(path string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrSourceUnavailable, path)
	}
	return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
}
