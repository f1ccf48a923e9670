package repository

import (
	"context"

	"github.com/water-advisory-microservice/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой по датасету
type StatsRepository interface {
	// GetStatistics возвращает статистику по загруженным данным
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
