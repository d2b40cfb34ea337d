package imagetools

import (
	"errors"
	"fmt"
	"math"
	"vincit.fi/integer-scaling/api/apitype"
)

var (
	ErrZeroImageSize      = errors.New("image width and height must be non-zero")
	ErrInvalidAspectRatio = errors.New("aspect ratio components must be positive and finite")
)

func checkImageSize(imageWidth uint32, imageHeight uint32) error {
	if imageWidth == 0 || imageHeight == 0 {
		return fmt.Errorf("%w: %s", ErrZeroImageSize, apitype.SizeOf(imageWidth, imageHeight))
	}
	return nil
}

func checkAspectRatio(aspectX float64, aspectY float64) error {
	if aspect := apitype.AspectRatioOf(aspectX, aspectY); !aspect.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidAspectRatio, aspect)
	}
	return nil
}

func atLeastOne(ratio uint32) uint32 {
	if ratio < 1 {
		return 1
	}
	return ratio
}

// toUint32 truncates value, saturating at the bounds of uint32. NaN maps to 0.
func toUint32(value float64) uint32 {
	if !(value > 0) {
		return 0
	}
	if value >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(value)
}
