package geojson

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/twpayne/go-geom"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/config"
	"github.com/water-advisory-microservice/internal/domain"
	"github.com/water-advisory-microservice/internal/pkg/utils"
	"github.com/water-advisory-microservice/internal/repository/memory"
)

// Loader читает GeoJSON файлы деревень и водоёмов и строит memory.Dataset.
// Все ошибки загрузки нефатальны: отсутствующий файл сокращает покрытие,
// битый feature пропускается с предупреждением.
type Loader struct {
	cfg    *config.DataConfig
	logger *zap.Logger
}

func NewLoader(cfg *config.DataConfig, logger *zap.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logger,
	}
}

// rawFeatureCollection позволяет разбирать features по одному, чтобы битый
// feature не ронял разбор всего файла
type rawFeatureCollection struct {
	Features []json.RawMessage `json:"features"`
}

// Load загружает все объявленные файлы в порядке их перечисления.
// Дубликаты имён деревень разрешаются в пользу более позднего файла.
func (l *Loader) Load() *memory.Dataset {
	villages := make(map[string]*domain.Village)
	var waterPoints []domain.Point

	for _, file := range l.cfg.VillageFiles {
		l.loadVillageFile(file, villages)
	}
	for _, file := range l.cfg.WaterFiles {
		waterPoints = l.loadWaterFile(file, waterPoints)
	}

	l.logger.Info("Dataset loaded",
		zap.Int("villages", len(villages)),
		zap.Int("water_bodies", len(waterPoints)),
	)

	return memory.NewDataset(villages, waterPoints)
}

func (l *Loader) loadVillageFile(file config.DataFile, villages map[string]*domain.Village) {
	features, ok := l.readFeatures(file.Name)
	if !ok {
		return
	}

	loaded := 0
	for i, raw := range features {
		var feature geomjson.Feature
		if err := feature.UnmarshalJSON(raw); err != nil {
			l.logger.Warn("Skipping malformed village feature",
				zap.String("file", file.Name),
				zap.Int("feature_index", i),
				zap.Error(err),
			)
			continue
		}

		name, _ := feature.Properties["name"].(string)
		if name == "" {
			continue
		}

		point, ok := feature.Geometry.(*geom.Point)
		if !ok || point.Empty() {
			continue
		}

		villages[name] = &domain.Village{
			Name:  name,
			State: file.State,
			Location: domain.Point{
				Lat: point.Y(),
				Lon: point.X(),
			},
		}
		loaded++
	}

	l.logger.Info("Village file loaded",
		zap.String("file", file.Name),
		zap.String("state", file.State),
		zap.Int("villages", loaded),
	)
}

func (l *Loader) loadWaterFile(file config.DataFile, waterPoints []domain.Point) []domain.Point {
	features, ok := l.readFeatures(file.Name)
	if !ok {
		return waterPoints
	}

	loaded := 0
	for i, raw := range features {
		var feature geomjson.Feature
		if err := feature.UnmarshalJSON(raw); err != nil {
			l.logger.Warn("Skipping malformed water feature",
				zap.String("file", file.Name),
				zap.Int("feature_index", i),
				zap.Error(err),
			)
			continue
		}

		if feature.Geometry == nil {
			continue
		}

		// Водоём сводится к центроиду по вершинам - для оценки близости
		// этого достаточно
		lon, lat, ok := utils.Centroid(feature.Geometry)
		if !ok {
			l.logger.Warn("Skipping water feature without areal geometry",
				zap.String("file", file.Name),
				zap.Int("feature_index", i),
			)
			continue
		}

		waterPoints = append(waterPoints, domain.Point{Lat: lat, Lon: lon})
		loaded++
	}

	l.logger.Info("Water file loaded",
		zap.String("file", file.Name),
		zap.String("state", file.State),
		zap.Int("water_bodies", loaded),
	)

	return waterPoints
}

// readFeatures читает файл и возвращает сырые features.
// Отсутствующий или нечитаемый файл - предупреждение, не ошибка.
func (l *Loader) readFeatures(name string) ([]json.RawMessage, bool) {
	path := filepath.Join(l.cfg.Dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("Data file not found", zap.String("path", path))
		} else {
			l.logger.Warn("Failed to read data file", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}

	var fc rawFeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		l.logger.Warn("Failed to parse feature collection",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false
	}

	return fc.Features, true
}
