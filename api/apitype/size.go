package apitype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSize = errors.New("invalid size")

type Size struct {
	width  uint32
	height uint32
}

func (s Size) GetHeight() uint32 {
	return s.height
}

func (s Size) GetWidth() uint32 {
	return s.width
}

func (s Size) IsZero() bool {
	return s.width == 0 || s.height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width uint32, height uint32) Size {
	return Size{width, height}
}

// ParseSize parses sizes written as "<width>x<height>", e.g. "1920x1080".
// A comma is accepted as the separator too.
func ParseSize(value string) (Size, error) {
	parts := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(value)), func(r rune) bool {
		return r == 'x' || r == ','
	})
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("%w: '%s'", ErrInvalidSize, value)
	}

	width, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("%w: width '%s': %s", ErrInvalidSize, parts[0], err)
	}
	height, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("%w: height '%s': %s", ErrInvalidSize, parts[1], err)
	}
	return SizeOf(uint32(width), uint32(height)), nil
}
