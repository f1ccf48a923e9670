package repository

import (
	"context"

	"github.com/water-advisory-microservice/internal/domain"
)

// WaterRepository определяет методы для поиска ближайшего водоёма
type WaterRepository interface {
	// NearestWaterDistance возвращает расстояние в километрах до ближайшего
	// водоёма. Если водоёмов нет вообще - math.Inf(1).
	NearestWaterDistance(ctx context.Context, p domain.Point) float64
}
