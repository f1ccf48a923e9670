package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/water-advisory-microservice/internal/domain"
)

func TestClassify_TierBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		wantTier   domain.Tier
	}{
		{"zero distance is adequate", 0, domain.TierAdequate},
		{"exactly 10 km is adequate", 10.00, domain.TierAdequate},
		{"just over 10 km is moderate", 10.01, domain.TierModerate},
		{"exactly 100 km is moderate", 100.00, domain.TierModerate},
		{"just over 100 km is severe", 100.01, domain.TierSevere},
		{"exactly 1000 km is severe", 1000.00, domain.TierSevere},
		{"just over 1000 km is critical", 1000.01, domain.TierCritical},
		{"infinite sentinel is critical", math.Inf(1), domain.TierCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, msg := domain.Classify(tt.distanceKm)
			assert.Equal(t, tt.wantTier, tier)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestClassify_MessageRendersTwoDecimals(t *testing.T) {
	_, msg := domain.Classify(222.389)
	assert.Contains(t, msg, "222.39 km")

	_, msg = domain.Classify(10.5)
	assert.Contains(t, msg, "10.50 km")

	_, msg = domain.Classify(3.2)
	assert.Contains(t, msg, "3.20 km")
}

func TestClassify_CriticalMessageHasNoDistance(t *testing.T) {
	tier, msg := domain.Classify(math.Inf(1))
	assert.Equal(t, domain.TierCritical, tier)
	assert.Contains(t, msg, "over 1000 km")
	assert.NotContains(t, msg, "Inf")
}

func TestClassifyUnknown(t *testing.T) {
	tier, msg := domain.ClassifyUnknown()
	assert.Equal(t, domain.TierNoData, tier)
	assert.Contains(t, msg, "field survey")
}
