package geojson_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/config"
	"github.com/water-advisory-microservice/internal/domain"
	"github.com/water-advisory-microservice/internal/repository/geojson"
)

func testDataConfig() *config.DataConfig {
	return &config.DataConfig{
		Dir: "testdata",
		VillageFiles: []config.DataFile{
			{Name: "villages_a.geojson", State: "Madhya Pradesh"},
			{Name: "villages_b.geojson", State: "Odisha"},
		},
		WaterFiles: []config.DataFile{
			{Name: "waterbodies.geojson", State: "Madhya Pradesh"},
		},
	}
}

func TestLoader_Load(t *testing.T) {
	loader := geojson.NewLoader(testDataConfig(), zap.NewNop())
	ds := loader.Load()
	ctx := context.Background()

	stats, err := ds.GetStatistics(ctx)
	require.NoError(t, err)

	// 3 named villages; the unnamed feature is skipped, "Rampur" dedupes
	assert.Equal(t, 3, stats.TotalVillages)

	// Polygon + MultiPolygon loaded; broken nesting and LineString skipped
	assert.Equal(t, 2, stats.TotalWaterBodies)
}

func TestLoader_DuplicateVillageLastFileWins(t *testing.T) {
	loader := geojson.NewLoader(testDataConfig(), zap.NewNop())
	ds := loader.Load()

	v, ok := ds.ResolveVillage(context.Background(), "Rampur")
	require.True(t, ok)
	// villages_b.geojson is declared later, its record wins
	assert.Equal(t, "Odisha", v.State)
	assert.InDelta(t, 20.95, v.Location.Lat, 1e-9)
	assert.InDelta(t, 85.09, v.Location.Lon, 1e-9)
}

func TestLoader_WaterCentroids(t *testing.T) {
	loader := geojson.NewLoader(testDataConfig(), zap.NewNop())
	ds := loader.Load()

	// Nearest to the square [[0,0],[0,2],[2,2],[2,0]] is its vertex-average
	// centroid (1, 1)
	d := ds.NearestWaterDistance(context.Background(), domain.Point{Lat: 1, Lon: 1})
	assert.InDelta(t, 0, d, 1e-6)
}

func TestLoader_MissingFilesAreNonFatal(t *testing.T) {
	cfg := &config.DataConfig{
		Dir: "testdata",
		VillageFiles: []config.DataFile{
			{Name: "no_such_file.geojson", State: "Telangana"},
			{Name: "villages_a.geojson", State: "Madhya Pradesh"},
		},
		WaterFiles: []config.DataFile{
			{Name: "also_missing.geojson", State: "Telangana"},
		},
	}

	ds := geojson.NewLoader(cfg, zap.NewNop()).Load()

	stats, err := ds.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalVillages)
	assert.Equal(t, 0, stats.TotalWaterBodies)
}

func TestLoader_UnparseableFileIsSkipped(t *testing.T) {
	cfg := &config.DataConfig{
		Dir: "testdata",
		VillageFiles: []config.DataFile{
			{Name: "not_geojson.geojson", State: "Tripura"},
		},
	}

	ds := geojson.NewLoader(cfg, zap.NewNop()).Load()

	stats, err := ds.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalVillages)
}
