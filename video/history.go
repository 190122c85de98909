package video

import "image"

const DefaultHistorySize = 8

// History is a fixed-capacity ring of the most recently displayed frames.
// Pushing into a full ring evicts the oldest frame. The frame evicted by
// the latest Push is kept until the next Push so PopLast can undo it.
type History struct {
	frames  []image.Image
	head    int // index of the oldest frame
	size    int
	total   uint64
	evicted image.Image
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{frames: make([]image.Image, capacity)}
}

func (h *History) Push(frame image.Image) {
	h.total++
	if h.size < len(h.frames) {
		h.evicted = nil
		h.frames[(h.head+h.size)%len(h.frames)] = frame
		h.size++
		return
	}
	h.evicted = h.frames[h.head]
	h.frames[h.head] = frame
	h.head = (h.head + 1) % len(h.frames)
}

// PopLast removes and returns the newest frame. Right after a Push that
// evicted, the evicted frame is put back, so Push followed by PopLast
// leaves the history as it was.
func (h *History) PopLast() (image.Image, bool) {
	if h.size == 0 {
		return nil, false
	}
	n := len(h.frames)
	idx := (h.head + h.size - 1) % n
	frame := h.frames[idx]
	h.frames[idx] = nil
	h.size--
	h.total--

	if h.evicted != nil {
		h.head = (h.head - 1 + n) % n
		h.frames[h.head] = h.evicted
		h.size++
		h.evicted = nil
	}
	return frame, true
}

func (h *History) Len() int {
	return h.size
}

func (h *History) Cap() int {
	return len(h.frames)
}

// Total counts frames pushed and not popped, including evicted ones.
func (h *History) Total() uint64 {
	return h.total
}

// Clear drops every frame.
func (h *History) Clear() {
	clear(h.frames)
	h.head = 0
	h.size = 0
	h.total = 0
	h.evicted = nil
}
