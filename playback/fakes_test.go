package playback

import (
	"errors"
	"image"
	"io"
	"time"

	"vidstep/video"
)

type fakeSource struct {
	frames   []*video.NativeFrame
	err      error // returned once frames run out, io.EOF when nil
	open     bool
	reads    int
	released int
	fps      float64
	width    int
	height   int
}

func newFakeSource(n, width, height int) *fakeSource {
	s := &fakeSource{open: true, width: width, height: height}
	for i := 0; i < n; i++ {
		s.frames = append(s.frames, solidFrame(width, height, byte(i+1)))
	}
	return s
}

// solidFrame fills every pixel with blue=v, green=0, red=255-v.
func solidFrame(width, height int, v byte) *video.NativeFrame {
	pix := make([]byte, width*height*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i] = v
		pix[i+2] = 255 - v
	}
	return &video.NativeFrame{Width: width, Height: height, Pix: pix}
}

func (s *fakeSource) IsOpen() bool { return s.open }

func (s *fakeSource) Read() (*video.NativeFrame, error) {
	s.reads++
	if len(s.frames) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, nil
}

func (s *fakeSource) Property(p video.Property) float64 {
	switch p {
	case video.PropFrameWidth:
		return float64(s.width)
	case video.PropFrameHeight:
		return float64(s.height)
	case video.PropFPS:
		return s.fps
	}
	return 0
}

func (s *fakeSource) SetProperty(p video.Property, v float64) error {
	if p != video.PropFPS {
		return video.ErrUnsupportedProperty
	}
	s.fps = v
	return nil
}

func (s *fakeSource) Release() {
	if s.open {
		s.released++
	}
	s.open = false
}

type fakeRenderer struct {
	drawn   []image.Image
	origins []image.Point
	surface *video.Surface
}

func (r *fakeRenderer) CreateSurface(width, height int) *video.Surface {
	r.surface = video.NewSurface(width, height)
	return r.surface
}

func (r *fakeRenderer) DrawImage(s *video.Surface, img image.Image, x, y int) error {
	r.drawn = append(r.drawn, img)
	r.origins = append(r.origins, image.Pt(x, y))
	return nil
}

type scheduled struct {
	id    int
	delay time.Duration
	fn    func()
}

// fakeScheduler queues callbacks until the test fires them.
type fakeScheduler struct {
	next       int
	pending    []scheduled
	maxPending int
	delays     []time.Duration
}

func (s *fakeScheduler) After(delay time.Duration, fn func()) func() {
	s.next++
	id := s.next
	s.pending = append(s.pending, scheduled{id: id, delay: delay, fn: fn})
	s.delays = append(s.delays, delay)
	s.maxPending = max(s.maxPending, len(s.pending))
	return func() { s.remove(id) }
}

func (s *fakeScheduler) remove(id int) {
	for i, p := range s.pending {
		if p.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// fire runs the oldest pending callback and reports whether there was one.
func (s *fakeScheduler) fire() bool {
	if len(s.pending) == 0 {
		return false
	}
	p := s.pending[0]
	s.pending = s.pending[1:]
	p.fn()
	return true
}

func (s *fakeScheduler) drain(limit int) int {
	n := 0
	for n < limit && s.fire() {
		n++
	}
	return n
}

type notice struct{ title, message string }

type fakeNotifier struct {
	notices []notice
}

func (n *fakeNotifier) Notify(title, message string) {
	n.notices = append(n.notices, notice{title, message})
}

type harness struct {
	src      *fakeSource
	renderer *fakeRenderer
	sched    *fakeScheduler
	notifier *fakeNotifier
	ctrl     *Controller
}

func newHarness(src *fakeSource, cfg Config) *harness {
	h := &harness{
		src:      src,
		renderer: &fakeRenderer{},
		sched:    &fakeScheduler{},
		notifier: &fakeNotifier{},
	}
	open := func(string) (Source, error) { return src, nil }
	h.ctrl = Open("clip.mp4", open, cfg, h.renderer, h.sched, h.notifier)
	return h
}

var errBroken = errors.New("decoder crashed")
