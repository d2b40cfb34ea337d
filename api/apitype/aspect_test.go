package apitype

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestAspectRatio_IsValid(t *testing.T) {
	a := assert.New(t)

	a.True(AspectRatioOf(4, 3).IsValid())
	a.True(AspectRatioOf(0.5, 1e-9).IsValid())
	a.False(AspectRatioOf(0, 3).IsValid())
	a.False(AspectRatioOf(4, 0).IsValid())
	a.False(AspectRatioOf(-4, 3).IsValid())
	a.False(AspectRatioOf(math.NaN(), 3).IsValid())
	a.False(AspectRatioOf(4, math.Inf(1)).IsValid())
}

func TestAspectRatioOfSize(t *testing.T) {
	aspect := AspectRatioOfSize(SizeOf(256, 224))

	assert.Equal(t, 256.0, aspect.GetX())
	assert.Equal(t, 224.0, aspect.GetY())
}

func TestAspectRatio_String(t *testing.T) {
	assert.Equal(t, "4:3", AspectRatioOf(4, 3).String())
	assert.Equal(t, "8.7:7", AspectRatioOf(8.7, 7).String())
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		value  string
		aspect AspectRatio
	}{
		{value: "4:3", aspect: AspectRatioOf(4, 3)},
		{value: " 16 : 9 ", aspect: AspectRatioOf(16, 9)},
		{value: "8.7:7", aspect: AspectRatioOf(8.7, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			aspect, err := ParseAspectRatio(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.aspect, aspect)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, value := range []string{"", "4", "4:3:2", "a:3", "4:b", "0:3", "4:-3", "NaN:1", "inf:1"} {
			_, err := ParseAspectRatio(value)
			assert.ErrorIs(t, err, ErrInvalidAspect, value)
		}
	})
}
