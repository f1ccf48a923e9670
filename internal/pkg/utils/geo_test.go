package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/water-advisory-microservice/internal/pkg/utils"
)

func TestHaversineDistance_Symmetry(t *testing.T) {
	d1 := utils.HaversineDistance(21.25, 81.63, 20.95, 85.09)
	d2 := utils.HaversineDistance(20.95, 85.09, 21.25, 81.63)
	assert.Equal(t, d1, d2)
}

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := utils.HaversineDistance(23.25, 77.41, 23.25, 77.41)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestHaversineDistance_KnownDistances(t *testing.T) {
	// 0.09 degrees of latitude is ~10 km on a 6371 km sphere
	d := utils.HaversineDistance(0, 0, 0.09, 0)
	assert.InDelta(t, 10.0, d, 0.05)

	// 2 degrees of latitude is ~222.4 km
	d = utils.HaversineDistance(0, 0, 2, 0)
	assert.InDelta(t, 222.39, d, 0.05)
}

func TestCentroid_Polygon(t *testing.T) {
	poly := geom.NewPolygon(geom.XY)
	_, err := poly.SetCoords([][]geom.Coord{
		{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
	})
	require.NoError(t, err)

	lon, lat, ok := utils.Centroid(poly)
	require.True(t, ok)
	assert.InDelta(t, 1.0, lon, 1e-9)
	assert.InDelta(t, 1.0, lat, 1e-9)
}

func TestCentroid_MultiPolygon(t *testing.T) {
	mp := geom.NewMultiPolygon(geom.XY)
	_, err := mp.SetCoords([][][]geom.Coord{
		{{{0, 0}, {0, 2}, {2, 2}, {2, 0}}},
		{{{10, 10}, {10, 12}, {12, 12}, {12, 10}}},
	})
	require.NoError(t, err)

	// Vertex average across both parts combined
	lon, lat, ok := utils.Centroid(mp)
	require.True(t, ok)
	assert.InDelta(t, 6.0, lon, 1e-9)
	assert.InDelta(t, 6.0, lat, 1e-9)
}

func TestCentroid_EmptyPolygon(t *testing.T) {
	_, _, ok := utils.Centroid(geom.NewPolygon(geom.XY))
	assert.False(t, ok)
}

func TestCentroid_RejectsNonArealGeometry(t *testing.T) {
	pt := geom.NewPointFlat(geom.XY, []float64{1, 2})
	_, _, ok := utils.Centroid(pt)
	assert.False(t, ok)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(23.25, 77.41))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
}
