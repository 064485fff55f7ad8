package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	karachi := Point{Lat: 24.8607, Lon: 67.0011}

	testCases := []struct {
		name    string
		a, b    Point
		want    float64
		epsilon float64
	}{
		{name: "same point", a: karachi, b: karachi, want: 0, epsilon: 1e-9},
		{name: "nearby point", a: karachi, b: Point{Lat: 24.8700, Lon: 67.0100}, want: 1370, epsilon: 5},
		{name: "one degree of latitude", a: Point{Lat: 0, Lon: 0}, b: Point{Lat: 1, Lon: 0}, want: 111195, epsilon: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Distance(tc.a, tc.b), tc.epsilon)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Lat: 24.8607, Lon: 67.0011}
	b := Point{Lat: 31.5204, Lon: 74.3587}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6)
}

func TestWithinRange(t *testing.T) {
	rider := Point{Lat: 24.8607, Lon: 67.0011}

	t.Run("zero distance", func(t *testing.T) {
		assert.True(t, WithinRange(rider, rider, DefaultRadius))
	})

	t.Run("outside radius", func(t *testing.T) {
		pickup := Point{Lat: 24.8700, Lon: 67.0100}
		assert.False(t, WithinRange(rider, pickup, DefaultRadius))
		assert.False(t, WithinRange(pickup, rider, DefaultRadius))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		target := Point{Lat: 24.8650, Lon: 67.0011}
		d := Distance(rider, target)
		assert.True(t, WithinRange(rider, target, d))
		assert.True(t, WithinRange(target, rider, d))
		assert.False(t, WithinRange(rider, target, d-0.01))
	})
}
