package common

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"vincit.fi/integer-scaling/api/apitype"
)

const (
	envArea     = "INTEGER_SCALING_AREA"
	envImage    = "INTEGER_SCALING_IMAGE"
	envAspect   = "INTEGER_SCALING_ASPECT"
	envLogLevel = "INTEGER_SCALING_LOG_LEVEL"
)

var (
	ErrUsage         = errors.New("usage")
	ErrInvalidParams = errors.New("invalid parameters")
)

type Params struct {
	area      apitype.Size
	image     apitype.Size
	aspect    apitype.AspectRatio
	hasAspect bool
	perfectY  bool
	logLevel  string
}

func NewEmptyParams() *Params {
	return &Params{
		area:      apitype.SizeOf(0, 0),
		image:     apitype.SizeOf(0, 0),
		aspect:    apitype.AspectRatioOf(1, 1),
		hasAspect: false,
		perfectY:  false,
		logLevel:  "WARN",
	}
}

// ParseParamsFrom parses command line arguments. Defaults are read from
// the environment so that a loaded .env file can provide them. Usage and
// flag errors are written to output.
func ParseParamsFrom(args []string, output io.Writer) (*Params, error) {
	flags := flag.NewFlagSet("integer-scaling", flag.ContinueOnError)
	flags.SetOutput(output)

	area := flags.String("area", os.Getenv(envArea), "Display area as <width>x<height>, e.g. 1920x1080")
	image := flags.String("image", os.Getenv(envImage), "Image size as <width>x<height>, e.g. 256x224")
	aspect := flags.String("aspect", os.Getenv(envAspect), "Target aspect ratio as <x>:<y>, e.g. 4:3. Empty means square pixels")
	perfectY := flags.Bool("perfectY", false, "Integer ratio only for height, width matches the aspect ratio exactly. Requires -aspect")
	logLevel := flags.String("logLevel", envOrDefault(envLogLevel, "WARN"), "Log level: ERROR, WARN, INFO, DEBUG, TRACE")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUsage, err)
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, flags.Args())
	}

	params := NewEmptyParams()
	params.perfectY = *perfectY
	params.logLevel = *logLevel

	var err error
	if *area == "" {
		return nil, fmt.Errorf("%w: -area is required", ErrInvalidParams)
	}
	if params.area, err = apitype.ParseSize(*area); err != nil {
		return nil, fmt.Errorf("%w: -area: %s", ErrInvalidParams, err)
	}

	if *image == "" {
		return nil, fmt.Errorf("%w: -image is required", ErrInvalidParams)
	}
	if params.image, err = apitype.ParseSize(*image); err != nil {
		return nil, fmt.Errorf("%w: -image: %s", ErrInvalidParams, err)
	}

	if *aspect != "" {
		if params.aspect, err = apitype.ParseAspectRatio(*aspect); err != nil {
			return nil, fmt.Errorf("%w: -aspect: %s", ErrInvalidParams, err)
		}
		params.hasAspect = true
	}

	if params.perfectY && !params.hasAspect {
		return nil, fmt.Errorf("%w: -perfectY requires -aspect", ErrInvalidParams)
	}

	return params, nil
}

func envOrDefault(key string, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func (s *Params) Area() apitype.Size {
	return s.area
}

func (s *Params) Image() apitype.Size {
	return s.image
}

// Aspect returns the target aspect ratio and whether one was given.
func (s *Params) Aspect() (apitype.AspectRatio, bool) {
	return s.aspect, s.hasAspect
}

func (s *Params) PerfectY() bool {
	return s.perfectY
}

func (s *Params) LogLevel() string {
	return s.logLevel
}
