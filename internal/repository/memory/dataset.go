package memory

import (
	"context"
	"math"
	"time"

	"github.com/water-advisory-microservice/internal/domain"
	"github.com/water-advisory-microservice/internal/pkg/utils"
)

// Dataset - неизменяемый снимок загруженных данных. Строится один раз на
// старте и дальше только читается, поэтому синхронизация не нужна.
type Dataset struct {
	villages    map[string]*domain.Village
	waterPoints []domain.Point
	loadedAt    time.Time
}

// NewDataset создаёт снимок из уже загруженных коллекций.
// Переданные коллекции переходят во владение Dataset и не должны
// изменяться вызывающей стороной после создания.
func NewDataset(villages map[string]*domain.Village, waterPoints []domain.Point) *Dataset {
	if villages == nil {
		villages = make(map[string]*domain.Village)
	}
	return &Dataset{
		villages:    villages,
		waterPoints: waterPoints,
		loadedAt:    time.Now(),
	}
}

// ResolveVillage возвращает запись деревни по точному имени
func (d *Dataset) ResolveVillage(_ context.Context, name string) (*domain.Village, bool) {
	v, ok := d.villages[name]
	return v, ok
}

// NearestWaterDistance возвращает расстояние в километрах до ближайшего
// водоёма линейным перебором всех точек. Пустой набор - math.Inf(1).
func (d *Dataset) NearestWaterDistance(_ context.Context, p domain.Point) float64 {
	minDistance := math.Inf(1)
	for _, w := range d.waterPoints {
		dist := utils.HaversineDistance(p.Lat, p.Lon, w.Lat, w.Lon)
		if dist < minDistance {
			minDistance = dist
		}
	}
	return minDistance
}

// GetStatistics возвращает статистику по снимку
func (d *Dataset) GetStatistics(_ context.Context) (*domain.Statistics, error) {
	byState := make(map[string]int)
	for _, v := range d.villages {
		byState[v.State]++
	}

	return &domain.Statistics{
		TotalVillages:    len(d.villages),
		VillagesByState:  byState,
		TotalWaterBodies: len(d.waterPoints),
		LoadedAt:         d.loadedAt,
	}, nil
}
