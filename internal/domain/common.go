package domain

import "time"

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Statistics представляет статистику по загруженным данным
type Statistics struct {
	TotalVillages    int            `json:"total_villages"`
	VillagesByState  map[string]int `json:"villages_by_state"`
	TotalWaterBodies int            `json:"total_water_bodies"`
	LoadedAt         time.Time      `json:"loaded_at"`
}
