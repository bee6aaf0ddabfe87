package core

// Size describes the dimensions of a viewport in pixels.
type Size struct {
	W int
	H int
}

// Area returns the viewport area in square pixels.
func (s Size) Area() int { return s.W * s.H }
