package imagetools

// CalculateRatio returns the largest integer ratio, common to both axes,
// at which the image still fits the area. Images larger than the area get 1.
func CalculateRatio(areaWidth uint32, areaHeight uint32, imageWidth uint32, imageHeight uint32) (uint32, error) {
	if err := checkImageSize(imageWidth, imageHeight); err != nil {
		return 0, err
	}
	return uniformRatio(areaWidth, areaHeight, imageWidth, imageHeight), nil
}

func uniformRatio(areaWidth uint32, areaHeight uint32, imageWidth uint32, imageHeight uint32) uint32 {
	areaSize, imageSize := areaWidth, imageWidth

	// Height binds when areaHeight/imageHeight < areaWidth/imageWidth. Width wins ties.
	if uint64(areaHeight)*uint64(imageWidth) < uint64(areaWidth)*uint64(imageHeight) {
		areaSize, imageSize = areaHeight, imageHeight
	}

	return atLeastOne(areaSize / imageSize)
}
