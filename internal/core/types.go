package core

// Size describes the dimensions of a mask grid or view in cells.
type Size struct {
	W int
	H int
}

// Scene is the minimal contract the HUD and app need from whatever is being
// explored.
type Scene interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(dt float64)
}
