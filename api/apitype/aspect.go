package apitype

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidAspect = errors.New("invalid aspect ratio")

// AspectRatio is the target shape of the whole scaled image, x:y.
// Only the quotient matters so 4:3 and 8:6 are the same ratio.
type AspectRatio struct {
	x float64
	y float64
}

func AspectRatioOf(x float64, y float64) AspectRatio {
	return AspectRatio{x, y}
}

// AspectRatioOfSize returns the native aspect ratio of an image of the
// given size, i.e. the ratio at which its pixels are square.
func AspectRatioOfSize(size Size) AspectRatio {
	return AspectRatio{float64(size.width), float64(size.height)}
}

func (s AspectRatio) GetX() float64 {
	return s.x
}

func (s AspectRatio) GetY() float64 {
	return s.y
}

func (s AspectRatio) IsValid() bool {
	return isPositiveFinite(s.x) && isPositiveFinite(s.y)
}

func (s AspectRatio) String() string {
	return strconv.FormatFloat(s.x, 'g', -1, 64) + ":" + strconv.FormatFloat(s.y, 'g', -1, 64)
}

func isPositiveFinite(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}

// ParseAspectRatio parses ratios written as "<x>:<y>", e.g. "4:3" or "8.7:7".
func ParseAspectRatio(value string) (AspectRatio, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return AspectRatio{}, fmt.Errorf("%w: '%s'", ErrInvalidAspect, value)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("%w: x '%s': %s", ErrInvalidAspect, parts[0], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("%w: y '%s': %s", ErrInvalidAspect, parts[1], err)
	}

	aspect := AspectRatioOf(x, y)
	if !aspect.IsValid() {
		return AspectRatio{}, fmt.Errorf("%w: '%s' must have positive components", ErrInvalidAspect, value)
	}
	return aspect, nil
}
