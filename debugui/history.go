package debugui

import "fmt"

// history is a fixed-size ring of samples for PlotLines.
type history struct {
	samples []float32
	offset  int
}

func newHistory(size int) *history {
	if size < 1 {
		panic(fmt.Sprintf("debugui: history size must be at least 1, got %d", size))
	}
	return &history{samples: make([]float32, size)}
}

func (h *history) push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
}

// ordered returns the samples oldest first.
func (h *history) ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.offset:])
	copy(out[n:], h.samples[:h.offset])
	return out
}

func (h *history) avg() float32 {
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(len(h.samples))
}
