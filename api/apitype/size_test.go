package apitype

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSizeOf(t *testing.T) {
	a := assert.New(t)
	type args struct {
		width  uint32
		height uint32
	}
	tests := []struct {
		name          string
		args          args
		width, height uint32
		zero          bool
	}{
		{name: "Size", args: args{width: 200, height: 100}, width: 200, height: 100},
		{name: "Zero width", args: args{width: 0, height: 100}, width: 0, height: 100, zero: true},
		{name: "Zero height", args: args{width: 200, height: 0}, width: 200, height: 0, zero: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeOf(tt.args.width, tt.args.height)
			a.Equal(tt.width, got.GetWidth())
			a.Equal(tt.height, got.GetHeight())
			a.Equal(tt.zero, got.IsZero())
		})
	}
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "320x240", SizeOf(320, 240).String())
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		value string
		size  Size
	}{
		{value: "1920x1080", size: SizeOf(1920, 1080)},
		{value: "1920X1080", size: SizeOf(1920, 1080)},
		{value: " 320 , 240 ", size: SizeOf(320, 240)},
		{value: "0x0", size: SizeOf(0, 0)},
		{value: "4294967295x1", size: SizeOf(4294967295, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			size, err := ParseSize(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.size, size)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, value := range []string{"", "1920", "1920x", "x1080", "1920x1080x3", "-1x2", "axb", "4294967296x1"} {
			_, err := ParseSize(value)
			assert.ErrorIs(t, err, ErrInvalidSize, value)
		}
	})
}
