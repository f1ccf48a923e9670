package repository

import (
	"context"

	"github.com/water-advisory-microservice/internal/domain"
)

// VillageRepository определяет методы для поиска деревень
type VillageRepository interface {
	// ResolveVillage возвращает запись деревни по точному имени.
	// Поиск чувствителен к регистру, без нормализации.
	ResolveVillage(ctx context.Context, name string) (*domain.Village, bool)
}
