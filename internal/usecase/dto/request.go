package dto

// AnalyzeRequest - пакетный запрос на оценку водоснабжения деревень.
// Отсутствующее или пустое имя в записи не считается ошибкой валидации:
// такая запись классифицируется как "данных нет", не прерывая пакет.
type AnalyzeRequest struct {
	Villages []VillageQuery `json:"villages" validate:"omitempty,max=1000,dive"`
}

// VillageQuery - одна запрашиваемая деревня
type VillageQuery struct {
	Name string `json:"name" validate:"omitempty,max=256"`
}
