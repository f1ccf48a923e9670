package handler

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/pkg/errors"
	"github.com/water-advisory-microservice/internal/pkg/utils"
	"github.com/water-advisory-microservice/internal/pkg/validator"
	"github.com/water-advisory-microservice/internal/usecase"
	"github.com/water-advisory-microservice/internal/usecase/dto"
)

// AdvisoryHandler - обработчик запросов на оценку водоснабжения
type AdvisoryHandler struct {
	advisoryUC *usecase.AdvisoryUseCase
	logger     *zap.Logger
}

// NewAdvisoryHandler - создание нового AdvisoryHandler
func NewAdvisoryHandler(advisoryUC *usecase.AdvisoryUseCase, logger *zap.Logger) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryUC: advisoryUC,
		logger:     logger,
	}
}

// Analyze - пакетная оценка списка деревень
func (h *AdvisoryHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		// Копия, чтобы не мутировать общий sentinel деталями запроса
		appErr := *errors.ErrInvalidRequest
		return utils.SendError(c, appErr.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	start := time.Now()
	result, err := h.advisoryUC.Analyze(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.Results),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetVillageAdvice - оценка одной деревни (GET вариант для отладки и интеграций)
func (h *AdvisoryHandler) GetVillageAdvice(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid village name"})
	}

	result := h.advisoryUC.AssessVillage(c.Context(), name)

	return utils.SendSuccess(c, result, nil)
}
