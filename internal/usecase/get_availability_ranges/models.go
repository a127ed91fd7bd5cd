package get_availability_ranges

import "time"

// Request модель запроса на получение диапазонов доступности
type Request struct {
	EstablishmentID int64     // ID заведения
	StartDate       time.Time // Начало периода (включительно)
	EndDate         time.Time // Конец периода (включительно)
}

// DayRanges почасовые диапазоны свободного времени на один день
type DayRanges struct {
	Date      string   // "2025-10-15"
	Ranges    []string // ["9h - 12h", "14h - 18h"]
	Formatted string   // "9h - 12h / 14h - 18h"
}

// Response модель ответа с диапазонами доступности по дням
// Дни без свободного времени (выходные, полностью занятые) опускаются
type Response struct {
	EstablishmentID int64       // ID заведения
	Days            []DayRanges // Дни со свободным временем, по возрастанию даты
}
