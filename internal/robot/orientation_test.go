package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationNext(t *testing.T) {
	tests := []struct {
		in, want Orientation
	}{
		{North, East},
		{East, South},
		{South, West},
		{West, North},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Next(), tt.in.String())
	}
}

func TestOrientationDelta(t *testing.T) {
	tests := []struct {
		o      Orientation
		dr, dc int
	}{
		{North, -1, 0},
		{South, 1, 0},
		{East, 0, 1},
		{West, 0, -1},
	}
	for _, tt := range tests {
		dr, dc := tt.o.Delta()
		assert.Equal(t, tt.dr, dr, tt.o.String())
		assert.Equal(t, tt.dc, dc, tt.o.String())
	}
}

func TestOrientationInvalid(t *testing.T) {
	bad := Orientation(7)
	assert.Equal(t, "Orientation(7)", bad.String())
	assert.Equal(t, byte('?'), bad.Glyph())
	assert.Panics(t, func() { bad.Next() })
	assert.Panics(t, func() { bad.Delta() })
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "NORTH", North.String())
	assert.Equal(t, "EAST", East.String())
	assert.Equal(t, "SOUTH", South.String())
	assert.Equal(t, "WEST", West.String())
}
