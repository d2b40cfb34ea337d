package main

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io"
	"os"
	"vincit.fi/integer-scaling/api/apitype"
	"vincit.fi/integer-scaling/common"
	"vincit.fi/integer-scaling/common/logger"
	"vincit.fi/integer-scaling/imagetools"
)

func main() {
	// Optional, flags and real environment variables still work without it
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	params, err := common.ParseParamsFrom(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, common.ErrUsage) {
			return 2
		}
		return 1
	}

	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))
	logger.Debug.Printf("Area %s, image %s", params.Area(), params.Image())

	ratioText, size, err := calculate(params)
	if err != nil {
		logger.Error.Printf("Could not calculate ratios: %s", err)
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "ratio %s size %s\n", ratioText, size)
	return 0
}

// calculate returns the ratios as text since the horizontal ratio of
// -perfectY is fractional.
func calculate(params *common.Params) (string, apitype.Size, error) {
	area, image := params.Area(), params.Image()
	aspect, hasAspect := params.Aspect()

	switch {
	case params.PerfectY():
		size, err := imagetools.CalculateSizeCorrectedPerfectY(area, image.GetHeight(), aspect)
		if err != nil {
			return "", apitype.Size{}, err
		}
		ratioY := size.GetHeight() / image.GetHeight()
		ratioX := float64(size.GetWidth()) * aspect.GetY() / aspect.GetX() / float64(image.GetHeight())
		return fmt.Sprintf("%.3fx%d", ratioX, ratioY), size, nil
	case hasAspect:
		logger.Debug.Printf("Correcting to aspect ratio %s", aspect)
		ratios, err := imagetools.CalculateRatios(area.GetWidth(), area.GetHeight(), image.GetWidth(), image.GetHeight(), aspect.GetX(), aspect.GetY())
		if err != nil {
			return "", apitype.Size{}, err
		}
		return ratios.String(), ratios.Apply(image), nil
	default:
		ratio, err := imagetools.CalculateRatio(area.GetWidth(), area.GetHeight(), image.GetWidth(), image.GetHeight())
		if err != nil {
			return "", apitype.Size{}, err
		}
		ratios := apitype.UniformRatios(ratio)
		return ratios.String(), ratios.Apply(image), nil
	}
}
