package utils

import (
	"math"

	"github.com/twpayne/go-geom"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Centroid вычисляет центроид полигона или мультиполигона как среднее
// арифметическое всех вершин всех колец (включая дырки, без взвешивания
// по площади - водоёмы используются только как цели для расчёта близости).
// Для пустой или неплощадной геометрии возвращает ok=false.
func Centroid(g geom.T) (lon, lat float64, ok bool) {
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
	default:
		return 0, 0, false
	}

	flat := g.FlatCoords()
	stride := g.Stride()
	if stride < 2 || len(flat) < stride {
		return 0, 0, false
	}

	var lonSum, latSum float64
	n := 0
	for i := 0; i+1 < len(flat); i += stride {
		lonSum += flat[i]
		latSum += flat[i+1]
		n++
	}

	return lonSum / float64(n), latSum / float64(n), true
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
