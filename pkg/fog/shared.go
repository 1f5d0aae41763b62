package fog

import (
	"image"
	"sync"
)

// Shared serialises access to an Engine so several goroutines can reveal
// into the same mask. The per-cell max merge spans many cells, so every
// mutation holds the lock for its whole duration.
type Shared struct {
	mu sync.Mutex
	e  *Engine
}

// NewShared wraps e. The caller must stop using e directly.
func NewShared(e *Engine) *Shared {
	return &Shared{e: e}
}

// Reveal is Engine.Reveal under the lock.
func (s *Shared) Reveal(p Vec2, innerRadius, fadeWidth float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Reveal(p, innerRadius, fadeWidth)
}

// RevealDefault is Engine.RevealDefault under the lock.
func (s *Shared) RevealDefault(p Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.RevealDefault(p)
}

// Reset is Engine.Reset under the lock.
func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.Reset()
}

// Sample is Engine.Sample under the lock.
func (s *Shared) Sample(p Vec2) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Sample(p)
}

// Coverage is Engine.Coverage under the lock.
func (s *Shared) Coverage() Coverage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Coverage()
}

// TakeDirty returns the pending dirty rectangle and clears it in one step.
func (s *Shared) TakeDirty() (image.Rectangle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.e.Dirty() {
		return image.Rectangle{}, false
	}
	r := s.e.DirtyRect()
	s.e.ClearDirty()
	return r, true
}

// Quantize is Engine.Quantize under the lock.
func (s *Shared) Quantize(dst []byte, r image.Rectangle) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Quantize(dst, r)
}
