package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/domain"
	"github.com/water-advisory-microservice/internal/domain/repository"
)

// StatsUseCase - статистика по загруженному датасету
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

func NewStatsUseCase(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get statistics", zap.Error(err))
		return nil, err
	}

	return stats, nil
}
