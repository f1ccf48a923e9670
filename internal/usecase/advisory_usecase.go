package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/domain"
	"github.com/water-advisory-microservice/internal/domain/repository"
	"github.com/water-advisory-microservice/internal/pkg/errors"
	"github.com/water-advisory-microservice/internal/usecase/dto"
)

// AdvisoryUseCase - оценка доступа деревень к воде и подбор рекомендаций
type AdvisoryUseCase struct {
	villageRepo repository.VillageRepository
	waterRepo   repository.WaterRepository
	cacheRepo   repository.CacheRepository // nil когда кеш выключен
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewAdvisoryUseCase(
	villageRepo repository.VillageRepository,
	waterRepo repository.WaterRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *AdvisoryUseCase {
	return &AdvisoryUseCase{
		villageRepo: villageRepo,
		waterRepo:   waterRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Analyze обрабатывает пакет деревень. Каждая запись независима: неизвестная
// деревня получает рекомендацию "данных нет" и не влияет на остальные.
// Порядок результатов совпадает с порядком запроса.
func (uc *AdvisoryUseCase) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	results := make([]dto.VillageAssessment, 0, len(req.Villages))
	for _, q := range req.Villages {
		results = append(results, uc.AssessVillage(ctx, q.Name))
	}

	return &dto.AnalyzeResponse{Results: results}, nil
}

// AssessVillage оценивает одну деревню, с кешированием когда кеш включён.
// Датасет после загрузки не меняется, поэтому кешированная оценка
// действительна всё время жизни процесса.
func (uc *AdvisoryUseCase) AssessVillage(ctx context.Context, name string) dto.VillageAssessment {
	if cached, found := uc.fromCache(ctx, name); found {
		return cached
	}

	assessment := uc.assess(ctx, name)
	uc.toCache(ctx, name, assessment)

	return assessment
}

// GetVillage возвращает запись деревни для просмотра
func (uc *AdvisoryUseCase) GetVillage(ctx context.Context, name string) (*domain.Village, error) {
	village, ok := uc.villageRepo.ResolveVillage(ctx, name)
	if !ok {
		return nil, errors.ErrVillageNotFound
	}
	return village, nil
}

func (uc *AdvisoryUseCase) assess(ctx context.Context, name string) dto.VillageAssessment {
	village, ok := uc.villageRepo.ResolveVillage(ctx, name)
	if !ok {
		tier, msg := domain.ClassifyUnknown()
		return dto.VillageAssessment{
			Village:        name,
			Tier:           string(tier),
			Recommendation: msg,
			// Distance stays invalid and renders as "N/A"
		}
	}

	distance := uc.waterRepo.NearestWaterDistance(ctx, village.Location)
	tier, msg := domain.Classify(distance)

	return dto.VillageAssessment{
		Village:         village.Name,
		State:           village.State,
		Tier:            string(tier),
		Recommendation:  msg,
		DistanceToWater: dto.Distance{Km: distance, Valid: true},
	}
}

func cacheKey(name string) string {
	return fmt.Sprintf("advice:%s", name)
}

func (uc *AdvisoryUseCase) fromCache(ctx context.Context, name string) (dto.VillageAssessment, bool) {
	if uc.cacheRepo == nil {
		return dto.VillageAssessment{}, false
	}

	data, err := uc.cacheRepo.Get(ctx, cacheKey(name))
	if err != nil || data == nil {
		return dto.VillageAssessment{}, false
	}

	var assessment dto.VillageAssessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		uc.logger.Warn("Dropping undecodable cached assessment",
			zap.String("village", name),
			zap.Error(err),
		)
		_ = uc.cacheRepo.Delete(ctx, cacheKey(name))
		return dto.VillageAssessment{}, false
	}

	return assessment, true
}

func (uc *AdvisoryUseCase) toCache(ctx context.Context, name string, assessment dto.VillageAssessment) {
	if uc.cacheRepo == nil {
		return
	}

	data, err := json.Marshal(assessment)
	if err != nil {
		uc.logger.Warn("Failed to marshal assessment for cache",
			zap.String("village", name),
			zap.Error(err),
		)
		return
	}

	if err := uc.cacheRepo.Set(ctx, cacheKey(name), data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache assessment", zap.String("village", name), zap.Error(err))
	}
}
