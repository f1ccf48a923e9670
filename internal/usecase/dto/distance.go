package dto

import (
	"encoding/json"
	"math"
)

const distanceNA = `"N/A"`

// Distance - расстояние до воды в километрах в JSON ответе.
// Сериализуется числом; при отсутствии данных или бесконечном sentinel
// (ни одного водоёма) - строкой "N/A", т.к. JSON не умеет Infinity.
type Distance struct {
	Km    float64
	Valid bool
}

func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.Valid || math.IsInf(d.Km, 1) {
		return []byte(distanceNA), nil
	}
	return json.Marshal(d.Km)
}

func (d *Distance) UnmarshalJSON(data []byte) error {
	if string(data) == distanceNA || string(data) == "null" {
		*d = Distance{}
		return nil
	}

	var km float64
	if err := json.Unmarshal(data, &km); err != nil {
		return err
	}
	*d = Distance{Km: km, Valid: true}
	return nil
}
