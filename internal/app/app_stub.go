//go:build !ebiten

package app

import (
	"errors"

	"fog-explore/internal/explore"

	"github.com/sirupsen/logrus"
)

// ErrHeadless is returned by New when the binary was built without the
// ebiten tag.
var ErrHeadless = errors.New("app: GUI requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New always fails in the headless build.
func New(*explore.Session, logrus.FieldLogger) (*Game, error) {
	return nil, ErrHeadless
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrHeadless }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// WindowSize returns zeros in the headless build.
func (g *Game) WindowSize() (int, int) { return 0, 0 }
