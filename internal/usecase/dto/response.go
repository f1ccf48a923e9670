package dto

import "github.com/water-advisory-microservice/internal/domain"

// AnalyzeResponse - ответ на пакетную оценку, порядок совпадает с запросом
type AnalyzeResponse struct {
	Results []VillageAssessment `json:"results"`
}

// VillageAssessment - оценка водоснабжения одной деревни
type VillageAssessment struct {
	Village         string   `json:"village"`
	State           string   `json:"state,omitempty"`
	Tier            string   `json:"tier"`
	Recommendation  string   `json:"recommendation"`
	DistanceToWater Distance `json:"distance_to_water"`
}

// VillageResponse - ответ на запрос записи деревни
type VillageResponse struct {
	Village *domain.Village `json:"village"`
}
