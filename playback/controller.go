package playback

import (
	"errors"
	"image"
	"io"
	"time"

	"vidstep/video"
)

const DefaultFrameDelay = 10 * time.Millisecond

const (
	errorTitle   = "Video file not found"
	errorMessage = "Error opening file, please check the availability of the video source."
)

type Config struct {
	// FPS rewrites the source rate before playback when positive.
	FPS float64
	// DisplayWidth and DisplayHeight fix the rendered size. Zero keeps the
	// native stream size and frames are never resized.
	DisplayWidth  int
	DisplayHeight int
	Monochrome    bool
	FrameDelay    time.Duration
	HistorySize   int
}

// Controller plays one source into one surface. All methods must be called
// from the scheduler's loop; it is not safe for concurrent use.
type Controller struct {
	path     string
	src      Source
	renderer Renderer
	sched    Scheduler
	notifier Notifier
	surface  *video.Surface

	width      int
	height     int
	resize     bool
	monochrome bool
	delay      time.Duration
	history    *video.History

	state             State
	pauseRequested    bool
	stepBackRequested bool
	cancel            func()

	ended    bool
	reported bool
	lastErr  error
	shown    uint64
}

// Open binds a controller to the source at path. A source that cannot be
// opened is reported once through the notifier; the controller is still
// returned, idle and without a source.
func Open(path string, open Opener, cfg Config, r Renderer, s Scheduler, n Notifier) *Controller {
	c := &Controller{
		path:       path,
		renderer:   r,
		sched:      s,
		notifier:   n,
		monochrome: cfg.Monochrome,
		delay:      cfg.FrameDelay,
		history:    video.NewHistory(cfg.HistorySize),
	}
	if c.delay <= 0 {
		c.delay = DefaultFrameDelay
	}

	src, err := open(path)
	if err != nil {
		c.fail(err)
	} else {
		c.src = src
		if cfg.FPS > 0 {
			if err := src.SetProperty(video.PropFPS, cfg.FPS); err != nil {
				video.LogWarn("set fps %g: %v", cfg.FPS, err)
			}
		}
	}

	if cfg.DisplayWidth > 0 && cfg.DisplayHeight > 0 {
		c.width, c.height = cfg.DisplayWidth, cfg.DisplayHeight
		c.resize = true
	} else if c.src != nil {
		c.width = int(c.src.Property(video.PropFrameWidth))
		c.height = int(c.src.Property(video.PropFrameHeight))
	}
	c.surface = r.CreateSurface(c.width, c.height)
	return c
}

// Play starts advancing when idle. It is a no-op while advancing.
func (c *Controller) Play() {
	if c.state == Advancing {
		return
	}
	c.Advance()
}

// Pause latches a pause request consumed by the next advance.
func (c *Controller) Pause() {
	c.pauseRequested = true
}

// StepBack latches a request to keep the next frame out of the history.
func (c *Controller) StepBack() {
	c.stepBackRequested = true
}

// Advance pulls, transforms and renders one frame, then decides whether to
// schedule the next advance.
func (c *Controller) Advance() {
	c.cancelPending()

	frame, err := c.read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.ended = true
			video.LogInfo("playback of %s finished after %d frames", c.path, c.shown)
		} else {
			c.fail(err)
		}
		return
	}

	var img image.Image = frame.RGBA()
	if c.monochrome {
		img = video.Grayscale(img)
	}
	if c.resize {
		img = video.Resize(img, c.width, c.height)
	}
	c.history.Push(img)

	if err := c.renderer.DrawImage(c.surface, img, 0, 0); err != nil {
		video.LogWarn("render frame %d: %v", c.shown, err)
	}
	c.shown++

	switch {
	case c.pauseRequested:
		c.pauseRequested = false
		c.stepBackRequested = false
		return
	case c.stepBackRequested:
		c.history.PopLast()
		c.stepBackRequested = false
		video.LogDebug("stepped back one frame")
	}
	c.schedule()
}

// Close cancels any pending advance, drops the history and releases the
// source. Calling it again does nothing.
func (c *Controller) Close() {
	c.cancelPending()
	c.history.Clear()
	if c.src != nil {
		c.src.Release()
	}
}

func (c *Controller) read() (*video.NativeFrame, error) {
	if c.src == nil || !c.src.IsOpen() {
		return nil, video.ErrSourceUnavailable
	}
	return c.src.Read()
}

func (c *Controller) schedule() {
	c.cancel = c.sched.After(c.delay, c.tick)
	c.state = Advancing
}

// tick is the scheduled callback. The call it was registered by has fired,
// so there is nothing left to cancel.
func (c *Controller) tick() {
	c.cancel = nil
	c.state = Idle
	c.Advance()
}

func (c *Controller) cancelPending() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = Idle
}

// fail records err and notifies the user the first time only.
func (c *Controller) fail(err error) {
	c.lastErr = err
	video.LogError("%v", err)
	if c.reported {
		return
	}
	c.reported = true
	c.notifier.Notify(errorTitle, errorMessage)
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) History() *video.History {
	return c.history
}

func (c *Controller) Surface() *video.Surface {
	return c.surface
}

func (c *Controller) DisplaySize() (int, int) {
	return c.width, c.height
}

// Resized reports whether frames are scaled to a fixed display size.
func (c *Controller) Resized() bool {
	return c.resize
}

// FPS is the rate the source decodes at, after any rewrite at open. It is
// zero without a source.
func (c *Controller) FPS() float64 {
	if c.src == nil {
		return 0
	}
	return c.src.Property(video.PropFPS)
}

func (c *Controller) Monochrome() bool {
	return c.monochrome
}

func (c *Controller) FrameDelay() time.Duration {
	return c.delay
}

// Ended reports whether the source reached the end of its stream.
func (c *Controller) Ended() bool {
	return c.ended
}

// Err returns the last source failure, if any.
func (c *Controller) Err() error {
	return c.lastErr
}

func (c *Controller) FramesShown() uint64 {
	return c.shown
}

func (c *Controller) PauseRequested() bool {
	return c.pauseRequested
}

func (c *Controller) StepBackRequested() bool {
	return c.stepBackRequested
}
