package imagetools

import (
	"math"
	"vincit.fi/integer-scaling/api/apitype"
	"vincit.fi/integer-scaling/common/logger"
)

// Aspect errors closer than this are considered equal.
const errorTieThreshold = 0.001

// CalculateRatios returns integer ratios for X and Y so that the scaled
// image fits the area and its aspect ratio is as close to aspectX:aspectY
// as whole numbers allow. The ratios differ only when the image's own
// aspect ratio differs from the target, i.e. its pixels are not square.
func CalculateRatios(areaWidth uint32, areaHeight uint32, imageWidth uint32, imageHeight uint32, aspectX float64, aspectY float64) (apitype.Ratios, error) {
	if err := checkImageSize(imageWidth, imageHeight); err != nil {
		return apitype.Ratios{}, err
	}
	if err := checkAspectRatio(aspectX, aspectY); err != nil {
		return apitype.Ratios{}, err
	}

	if float64(imageWidth)*aspectY == float64(imageHeight)*aspectX {
		ratio := uniformRatio(areaWidth, areaHeight, imageWidth, imageHeight)
		logger.Trace.Printf("Image %dx%d already has aspect %g:%g, uniform ratio %d",
			imageWidth, imageHeight, aspectX, aspectY, ratio)
		return apitype.UniformRatios(ratio), nil
	}

	maxRatioX := areaWidth / imageWidth
	maxRatioY := areaHeight / imageHeight
	maxWidth := imageWidth * maxRatioX
	maxHeight := imageHeight * maxRatioY
	maxWidthAspectY := float64(maxWidth) * aspectY
	maxHeightAspectX := float64(maxHeight) * aspectX

	if maxWidthAspectY == maxHeightAspectX {
		logger.Trace.Printf("Maximum ratios %dx%d match aspect %g:%g exactly", maxRatioX, maxRatioY, aspectX, aspectY)
		return apitype.RatiosOf(atLeastOne(maxRatioX), atLeastOne(maxRatioY)), nil
	}

	// Axis A keeps its maximum ratio and axis B is solved against it.
	// A is X when the maximised image is narrower than the target aspect.
	fixedX := maxWidthAspectY < maxHeightAspectX

	var ratioA, maxSizeA, imageSizeB uint32
	var aspectA, aspectB float64
	if fixedX {
		ratioA, maxSizeA, imageSizeB = maxRatioX, maxWidth, imageHeight
		aspectA, aspectB = aspectX, aspectY
	} else {
		ratioA, maxSizeA, imageSizeB = maxRatioY, maxHeight, imageWidth
		aspectA, aspectB = aspectY, aspectX
	}

	ratioBFract := float64(maxSizeA) * aspectB / aspectA / float64(imageSizeB)
	ratioBFloor := math.Floor(ratioBFract)
	ratioBCeil := math.Ceil(ratioBFract)

	commonFactor := float64(imageWidth) * aspectY / aspectX / float64(imageHeight)
	errorFloor := aspectError(ratioBFloor, ratioA, commonFactor, fixedX)
	errorCeil := aspectError(ratioBCeil, ratioA, commonFactor, fixedX)

	ratioB := toUint32(chooseCandidate(ratioA, ratioBFloor, ratioBCeil, errorFloor, errorCeil))

	logger.Trace.Printf("Fixed ratio %d on %s, candidates %g (error %g) and %g (error %g), chose %d",
		ratioA, axisName(fixedX), ratioBFloor, errorFloor, ratioBCeil, errorCeil, ratioB)

	if fixedX {
		return apitype.RatiosOf(atLeastOne(ratioA), atLeastOne(ratioB)), nil
	}
	return apitype.RatiosOf(atLeastOne(ratioB), atLeastOne(ratioA)), nil
}

// aspectError is the relative deviation from the target aspect when
// axis B is scaled by candidate and axis A by ratioA.
func aspectError(candidate float64, ratioA uint32, commonFactor float64, fixedX bool) float64 {
	par := candidate / float64(ratioA)
	if fixedX {
		par = 1 / par
	}
	// Explicit conversion prevents a fused multiply-add.
	return math.Abs(1 - float64(commonFactor*par))
}

// chooseCandidate picks the candidate with the smaller aspect error. Near
// ties go to the candidate closer to ratioA, i.e. closer to uniform scaling.
func chooseCandidate(ratioA uint32, floor float64, ceil float64, errorFloor float64, errorCeil float64) float64 {
	if math.Abs(errorFloor-errorCeil) < errorTieThreshold {
		if math.Abs(float64(ratioA)-floor) < math.Abs(float64(ratioA)-ceil) {
			return floor
		}
		return ceil
	}

	if errorFloor < errorCeil {
		return floor
	}
	return ceil
}

func axisName(x bool) string {
	if x {
		return "X"
	}
	return "Y"
}
