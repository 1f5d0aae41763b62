package fog

import (
	"slices"
	"sync"
	"testing"
)

func TestSharedConcurrentRevealsMatchSequential(t *testing.T) {
	points := make([]Vec2, 0, 64)
	for i := 0; i < 64; i++ {
		points = append(points, Vec2{X: float64(i%8) - 3.5, Y: float64(i/8) - 3.5})
	}

	seq := squareEngine(t, 10, 128)
	for _, p := range points {
		seq.Reveal(p, 0.4, 0)
	}

	shared := NewShared(squareEngine(t, 10, 128))
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < len(points); i += 4 {
				shared.Reveal(points[i], 0.4, 0)
				shared.Sample(points[i])
			}
		}(w)
	}
	wg.Wait()

	r, ok := shared.TakeDirty()
	if !ok || r.Empty() {
		t.Fatal("shared engine should be dirty after reveals")
	}
	if _, ok := shared.TakeDirty(); ok {
		t.Fatal("TakeDirty should clear the flag")
	}

	want := seq.Quantize(nil, seq.DirtyRect().Union(r))
	got := shared.Quantize(nil, seq.DirtyRect().Union(r))
	if !slices.Equal(want, got) {
		t.Fatal("concurrent reveals diverged from sequential result")
	}
	if shared.Coverage() != seq.Coverage() {
		t.Fatalf("coverage %+v, want %+v", shared.Coverage(), seq.Coverage())
	}

	shared.Reset()
	if shared.Coverage().Touched != 0 {
		t.Fatal("Reset through Shared should clear the grid")
	}
	if !shared.RevealDefault(Vec2{}) {
		t.Fatal("RevealDefault through Shared should change the grid")
	}
}
