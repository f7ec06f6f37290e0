package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdenticalCoordinates(t *testing.T) {
	coords := [][2]float64{
		{0, 0},
		{37.7749, -122.4194},
		{-33.8688, 151.2093},
		{90, 0},
	}

	for _, c := range coords {
		assert.Equal(t, 0.0, Distance(c[0], c[1], c[0], c[1]))
	}
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(37.7749, -122.4194, 34.0522, -118.2437)
	d2 := Distance(34.0522, -118.2437, 37.7749, -122.4194)
	assert.Equal(t, d1, d2)
}

func TestDistanceKnownValue(t *testing.T) {
	// San Francisco to Los Angeles is roughly 347 statute miles
	d := Distance(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, 347, d, 5)
}

func TestDistanceNotNaNOnNearIdentical(t *testing.T) {
	// values close enough that floating-point error can push the
	// law-of-cosines argument above 1
	d := Distance(37.774900000000002, -122.4194, 37.7749, -122.41940000000001)
	assert.False(t, math.IsNaN(d))
	assert.True(t, d >= 0)
}

func TestDistancePositive(t *testing.T) {
	assert.True(t, Distance(0, 0, 0, 1) > 0)
}
