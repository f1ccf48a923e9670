package domain

import (
	"fmt"
	"math"
)

// Tier - уровень серьёзности рекомендации по доступу к воде
type Tier string

const (
	TierNoData   Tier = "no_data"
	TierCritical Tier = "critical"
	TierSevere   Tier = "severe"
	TierModerate Tier = "moderate"
	TierAdequate Tier = "adequate"
)

// Пороговые расстояния между уровнями, в километрах.
// Верхняя граница каждого диапазона не включается (строго больше).
const (
	adequateMaxKm = 10
	moderateMaxKm = 100
	severeMaxKm   = 1000
)

const (
	msgNoData = "Data not available for this village. Recommend field survey. 🌱"

	msgCritical = "No water source nearby. Nearest water body is over 1000 km away. ⚠️\n" +
		"Urgent intervention needed to establish sustainable water supply. " +
		"Recommend Jal Jeevan Mission priority for infrastructure development."

	msgSevereFmt = "No water source nearby. Nearest water body is %.2f km away. ⚠️\n" +
		"Consider water harvesting and supply schemes under Jal Jeevan Mission."

	msgModerateFmt = "Water source nearby but at %.2f km distance. 💧\n" +
		"Recommend improving water access infrastructure and monitoring water quality."

	msgAdequateFmt = "Water source very close at %.2f km. 💧\n" +
		"Focus on maintenance of existing water resources and community water management."
)

// Classify относит расстояние до ближайшего водоёма к одному из четырёх уровней
// и возвращает текст рекомендации. distanceKm может быть math.Inf(1) -
// sentinel "ни одного водоёма не зарегистрировано", он попадает в critical.
func Classify(distanceKm float64) (Tier, string) {
	switch {
	case math.IsInf(distanceKm, 1) || distanceKm > severeMaxKm:
		return TierCritical, msgCritical
	case distanceKm > moderateMaxKm:
		return TierSevere, fmt.Sprintf(msgSevereFmt, distanceKm)
	case distanceKm > adequateMaxKm:
		return TierModerate, fmt.Sprintf(msgModerateFmt, distanceKm)
	default:
		return TierAdequate, fmt.Sprintf(msgAdequateFmt, distanceKm)
	}
}

// ClassifyUnknown - рекомендация для деревни, отсутствующей в загруженных данных
func ClassifyUnknown() (Tier, string) {
	return TierNoData, msgNoData
}
