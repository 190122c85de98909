// Package playback holds the frame-advance state machine that drives a
// single playback session.
package playback

import (
	"image"
	"time"

	"vidstep/video"
)

// Source yields decoded frames one at a time. Read returns io.EOF when the
// stream is exhausted; any other error is a failure of the source.
type Source interface {
	IsOpen() bool
	Read() (*video.NativeFrame, error)
	Property(p video.Property) float64
	SetProperty(p video.Property, value float64) error
	Release()
}

// Opener opens the source bound to a session.
type Opener func(path string) (Source, error)

// Renderer paints a frame into a surface, replacing what was there.
type Renderer interface {
	CreateSurface(width, height int) *video.Surface
	DrawImage(s *video.Surface, img image.Image, x, y int) error
}

// Scheduler runs fn once after delay on the UI loop. The returned func
// cancels the call if it has not run yet.
type Scheduler interface {
	After(delay time.Duration, fn func()) (cancel func())
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(title, message string)
}
