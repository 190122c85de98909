package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// streamConfig describes one ffmpeg decode of a file into raw bgr24 frames.
type streamConfig struct {
	Path    string
	Width   int
	Height  int
	FPS     float64 // 0 keeps the file's own rate
	HWAccel HWAccelConfig
}

func (c streamConfig) args() []string {
	args := []string{"-nostdin"}

	// Hardware acceleration must come before -i
	if c.HWAccel.Available && c.HWAccel.Type != HWAccelNone {
		args = append(args, "-hwaccel", string(c.HWAccel.Type))
	}

	// Frames are read at the probed coded size, so the rotation metadata
	// must not swap the output dimensions.
	args = append(args, "-noautorotate", "-i", c.Path, "-map", "0:v:0")
	if c.FPS > 0 {
		args = append(args, "-vf", "fps="+formatRate(c.FPS))
	}
	args = append(args,
		"-f", "rawvideo",
		"-pix_fmt", "bgr24",
		"-loglevel", "error",
		"-",
	)
	return args
}

func (c streamConfig) frameSize() int {
	return c.Width * c.Height * 3
}

// FrameStream keeps a long-lived ffmpeg process that writes raw BGR frames
// at the stream's native resolution.
type FrameStream struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr *bytes.Buffer
	cancel context.CancelFunc
	cfg    streamConfig
	mu     sync.Mutex
}

func newFrameStream(cfg streamConfig) (*FrameStream, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid stream configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, "ffmpeg", cfg.args()...)
	stream, err := startFrameStream(cmd, cancel, cfg)
	if err != nil {
		return nil, err
	}
	LogDebug("started ffmpeg %s", strings.Join(cfg.args(), " "))
	return stream, nil
}

// startFrameStream runs cmd and reads cfg-sized frames from its stdout.
func startFrameStream(cmd *exec.Cmd, cancel context.CancelFunc, cfg streamConfig) (*FrameStream, error) {
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, err
	}

	return &FrameStream{
		cmd:    cmd,
		stdout: stdout,
		stderr: stderr,
		cancel: cancel,
		cfg:    cfg,
	}, nil
}

// NextFrame reads exactly one frame. It returns io.EOF when ffmpeg finished
// cleanly, or the ffmpeg failure when it did not.
func (s *FrameStream) NextFrame() (*NativeFrame, error) {
	s.mu.Lock()
	stdout := s.stdout
	s.mu.Unlock()
	if stdout == nil {
		return nil, io.EOF
	}

	buf := make([]byte, s.cfg.frameSize())
	_, err := io.ReadFull(stdout, buf)
	switch {
	case err == nil:
		return &NativeFrame{Width: s.cfg.Width, Height: s.cfg.Height, Pix: buf}, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		if werr := s.wait(); werr != nil {
			return nil, werr
		}
		return nil, io.EOF
	default:
		return nil, err
	}
}

// wait reaps ffmpeg after its output ended.
func (s *FrameStream) wait() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil {
		return nil
	}
	err := s.cmd.Wait()
	s.cmd = nil
	if err != nil {
		msg := strings.TrimSpace(s.stderr.String())
		if msg != "" {
			return fmt.Errorf("ffmpeg: %w: %s", err, msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

// Close stops the ffmpeg process.
func (s *FrameStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.cmd != nil {
		_ = s.cmd.Wait()
	}
	s.cancel = nil
	s.cmd = nil
	if s.stdout != nil {
		_ = s.stdout.Close()
		s.stdout = nil
	}
}

func formatRate(fps float64) string {
	return strings.TrimRight(strings.TrimRight(
		fmt.Sprintf("%.3f", fps), "0"), ".")
}
