package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/pkg/utils"
	"github.com/water-advisory-microservice/internal/usecase"
	"github.com/water-advisory-microservice/internal/usecase/dto"
)

// VillageHandler - обработчик запросов записей деревень
type VillageHandler struct {
	advisoryUC *usecase.AdvisoryUseCase
	logger     *zap.Logger
}

// NewVillageHandler - создание нового VillageHandler
func NewVillageHandler(advisoryUC *usecase.AdvisoryUseCase, logger *zap.Logger) *VillageHandler {
	return &VillageHandler{
		advisoryUC: advisoryUC,
		logger:     logger,
	}
}

// GetVillage - запись деревни по имени
func (h *VillageHandler) GetVillage(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid village name"})
	}

	village, err := h.advisoryUC.GetVillage(c.Context(), name)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.VillageResponse{Village: village}, nil)
}
