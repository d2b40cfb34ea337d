package imagetools

import (
	"fmt"
	"math"
	"vincit.fi/integer-scaling/api/apitype"
)

// CalculateSize returns the size of the image scaled by CalculateRatio.
func CalculateSize(area apitype.Size, image apitype.Size) (apitype.Size, error) {
	ratio, err := CalculateRatio(area.GetWidth(), area.GetHeight(), image.GetWidth(), image.GetHeight())
	if err != nil {
		return apitype.Size{}, err
	}
	return apitype.UniformRatios(ratio).Apply(image), nil
}

// CalculateSizeCorrected returns the size of the image scaled by CalculateRatios.
func CalculateSizeCorrected(area apitype.Size, image apitype.Size, aspect apitype.AspectRatio) (apitype.Size, error) {
	ratios, err := CalculateRatios(area.GetWidth(), area.GetHeight(), image.GetWidth(), image.GetHeight(), aspect.GetX(), aspect.GetY())
	if err != nil {
		return apitype.Size{}, err
	}
	return ratios.Apply(image), nil
}

// CalculateSizeCorrectedPerfectY scales the height by an integer ratio and
// the width by whatever fractional ratio hits the aspect exactly. Keeps
// scanlines uniform while the aspect ratio stays precise.
func CalculateSizeCorrectedPerfectY(area apitype.Size, imageHeight uint32, aspect apitype.AspectRatio) (apitype.Size, error) {
	if imageHeight == 0 {
		return apitype.Size{}, fmt.Errorf("%w: image height is 0", ErrZeroImageSize)
	}
	if err := checkAspectRatio(aspect.GetX(), aspect.GetY()); err != nil {
		return apitype.Size{}, err
	}

	areaWidth := float64(area.GetWidth())
	areaHeight := float64(area.GetHeight())
	imageWidth := float64(imageHeight) * aspect.GetX() / aspect.GetY()

	areaSize, imageSize := areaWidth, imageWidth
	if areaHeight*imageWidth < areaWidth*float64(imageHeight) {
		areaSize, imageSize = areaHeight, float64(imageHeight)
	}

	ratio := atLeastOne(toUint32(math.Floor(areaSize / imageSize)))

	width := math.Round(imageWidth * float64(ratio))
	if width > areaWidth {
		width--
	}

	return apitype.SizeOf(toUint32(width), imageHeight*ratio), nil
}
