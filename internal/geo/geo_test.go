package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedme/backend/internal/geo"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, geo.HaversineKm(48.8566, 2.3522, 48.8566, 2.3522))
}

// One degree of longitude at the equator is ~111.19 km with R=6371.
func TestHaversineKm_OneDegreeAtEquator(t *testing.T) {
	got := geo.HaversineKm(0, 0, 0, 1)
	assert.InDelta(t, 111.19, got, 0.01)
}

func TestHaversineKm_ParisToLondon(t *testing.T) {
	got := geo.HaversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343.5, got, 0.5)
}

// Distance is symmetric in its arguments.
func TestHaversineKm_Symmetric(t *testing.T) {
	a := geo.HaversineKm(48.8566, 2.3522, 45.764, 4.8357)
	b := geo.HaversineKm(45.764, 4.8357, 48.8566, 2.3522)
	assert.Equal(t, a, b)
}

func TestFormatDistanceLabel(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{0, "0m"},
		{0.15, "150m"},
		{0.1504, "150m"},
		{0.999, "999m"},
		{1, "1.0km"},
		{1.2, "1.2km"},
		{1.25, "1.2km"}, // %.1f rounds to even
		{12.34, "12.3km"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, geo.FormatDistanceLabel(tc.km), "km=%v", tc.km)
	}
}

// A meal ~0.009 degrees of longitude away on the equator sits just past one
// kilometer, so the label switches from meters to kilometers.
func TestFormatDistanceLabel_AroundOneKm(t *testing.T) {
	km := geo.HaversineKm(0, 0, 0, 0.009)
	assert.Greater(t, km, 1.0)
	assert.Equal(t, "1.0km", geo.FormatDistanceLabel(km))

	km = geo.HaversineKm(0, 0, 0, 0.00135)
	assert.Equal(t, "150m", geo.FormatDistanceLabel(km))
}
