package video

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Property names a stream attribute readable through Source.Property.
type Property int

const (
	PropFrameWidth Property = iota
	PropFrameHeight
	PropFPS
)

func (p Property) String() string {
	switch p {
	case PropFrameWidth:
		return "frame_width"
	case PropFrameHeight:
		return "frame_height"
	case PropFPS:
		return "fps"
	}
	return "unknown"
}

type SourceOptions struct {
	HWAccel bool
}

// Source decodes one video file frame by frame through ffmpeg. The decoder
// process starts on the first Read, so the rate can still be changed after
// opening.
type Source struct {
	path       string
	properties *VideoProperties
	hwaccel    bool
	fps        float64

	mu     sync.Mutex
	stream *FrameStream
	opened bool
	ended  bool
	frames int
}

// OpenSource probes path and returns a source ready to read. Any failure is
// reported as ErrSourceUnavailable.
func OpenSource(path string, opts SourceOptions) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	if info.IsDir() {
		return nil, unavailable(path, fmt.Errorf("is a directory"))
	}

	props, err := GetVideoProperties(path)
	if err != nil {
		return nil, unavailable(path, err)
	}

	LogInfo("opened %s: %s %s %s", path, props.Resolution(), props.Codec, props.FormattedFPS())
	return &Source{
		path:       path,
		properties: props,
		hwaccel:    opts.HWAccel,
		opened:     true,
	}, nil
}

func (s *Source) Properties() *VideoProperties {
	return s.properties
}

func (s *Source) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened
}

// Read returns the next frame, io.EOF once the stream is exhausted, or an
// ErrSourceUnavailable error when decoding fails.
func (s *Source) Read() (*NativeFrame, error) {
	s.mu.Lock()
	if !s.opened {
		s.mu.Unlock()
		return nil, unavailable(s.path, fmt.Errorf("source released"))
	}
	if s.ended {
		s.mu.Unlock()
		return nil, io.EOF
	}
	if s.stream == nil {
		cfg := streamConfig{
			Path:   s.path,
			Width:  s.properties.Width,
			Height: s.properties.Height,
			FPS:    s.fps,
		}
		if s.hwaccel {
			cfg.HWAccel = DetectHWAccel()
		}
		stream, err := newFrameStream(cfg)
		if err != nil {
			s.mu.Unlock()
			return nil, unavailable(s.path, err)
		}
		s.stream = stream
	}
	stream := s.stream
	s.mu.Unlock()

	frame, err := stream.NextFrame()
	if err == io.EOF {
		s.mu.Lock()
		s.ended = true
		s.mu.Unlock()
		LogDebug("end of stream after %d frames", s.frames)
		return nil, io.EOF
	}
	if err != nil {
		LogError("read %s: %v", s.path, err)
		return nil, unavailable(s.path, err)
	}

	s.mu.Lock()
	s.frames++
	s.mu.Unlock()
	return frame, nil
}

func (s *Source) Property(p Property) float64 {
	switch p {
	case PropFrameWidth:
		return float64(s.properties.Width)
	case PropFrameHeight:
		return float64(s.properties.Height)
	case PropFPS:
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.fps > 0 {
			return s.fps
		}
		return s.properties.FPS
	}
	return 0
}

// SetProperty rewrites the decode rate. Only PropFPS is writable, and only
// before the first Read.
func (s *Source) SetProperty(p Property, value float64) error {
	if p != PropFPS {
		return fmt.Errorf("%w: %s", ErrUnsupportedProperty, p)
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s=%g", ErrInvalidProperty, p, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stream != nil {
		return ErrStreamActive
	}
	s.fps = value
	return nil
}

// Release stops decoding. Releasing a closed source is a no-op.
func (s *Source) Release() {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	wasOpen := s.opened
	s.opened = false
	s.mu.Unlock()

	if stream != nil {
		stream.Close()
	}
	if wasOpen {
		LogDebug("released %s", s.path)
	}
}
