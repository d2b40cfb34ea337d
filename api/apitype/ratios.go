package apitype

import "fmt"

// Ratios holds the integer magnification applied to image width (x)
// and height (y).
type Ratios struct {
	x uint32
	y uint32
}

func RatiosOf(x uint32, y uint32) Ratios {
	return Ratios{x, y}
}

func UniformRatios(ratio uint32) Ratios {
	return Ratios{ratio, ratio}
}

func (s Ratios) GetX() uint32 {
	return s.x
}

func (s Ratios) GetY() uint32 {
	return s.y
}

func (s Ratios) IsUniform() bool {
	return s.x == s.y
}

// Apply scales the given size by the ratios.
func (s Ratios) Apply(size Size) Size {
	return SizeOf(size.width*s.x, size.height*s.y)
}

func (s Ratios) String() string {
	return fmt.Sprintf("%dx%d", s.x, s.y)
}
