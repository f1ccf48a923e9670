package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/delivery/http/handler"
	"github.com/water-advisory-microservice/internal/domain"
	pkgerrors "github.com/water-advisory-microservice/internal/pkg/errors"
	"github.com/water-advisory-microservice/internal/repository/memory"
	"github.com/water-advisory-microservice/internal/usecase"
	"github.com/water-advisory-microservice/internal/usecase/dto"
)

func newAnalyzeApp() *fiber.App {
	logger := zap.NewNop()
	ds := memory.NewDataset(map[string]*domain.Village{
		"Origin": {Name: "Origin", State: "Odisha", Location: domain.Point{Lat: 0, Lon: 0}},
	}, []domain.Point{{Lat: 0.089, Lon: 0}})

	uc := usecase.NewAdvisoryUseCase(ds, ds, nil, logger, time.Hour)
	h := handler.NewAdvisoryHandler(uc, logger)

	app := fiber.New()
	app.Post("/api/v1/analyze", h.Analyze)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, []byte) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBody
}

func TestAdvisoryHandler_Analyze(t *testing.T) {
	app := newAnalyzeApp()

	status, body := postJSON(t, app, "/api/v1/analyze", dto.AnalyzeRequest{
		Villages: []dto.VillageQuery{{Name: "Origin"}, {Name: "Ghost"}},
	})
	require.Equal(t, 200, status)

	var envelope struct {
		Data dto.AnalyzeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Len(t, envelope.Data.Results, 2)

	assert.Equal(t, string(domain.TierAdequate), envelope.Data.Results[0].Tier)
	assert.Equal(t, string(domain.TierNoData), envelope.Data.Results[1].Tier)
	assert.False(t, envelope.Data.Results[1].DistanceToWater.Valid)
}

func TestAdvisoryHandler_Analyze_ValidationError(t *testing.T) {
	app := newAnalyzeApp()

	status, body := postJSON(t, app, "/api/v1/analyze", dto.AnalyzeRequest{
		Villages: make([]dto.VillageQuery, 1001),
	})
	require.Equal(t, 400, status)

	var envelope struct {
		Error struct {
			Code    string                 `json:"code"`
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "INVALID_REQUEST", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "validation")

	// The shared sentinel must stay untouched by per-request details
	assert.Empty(t, pkgerrors.ErrInvalidRequest.Details)
}
