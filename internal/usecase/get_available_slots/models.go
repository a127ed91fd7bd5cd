package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	EstablishmentID int64     // ID заведения
	ServiceID       int64     // ID услуги
	Date            time.Time // Дата (без времени)
}

// Slot доступный для записи слот
type Slot struct {
	StartTime string // Время начала, "10:00"
	EndTime   string // Время окончания, "10:30"
}

// Response модель ответа со списком доступных слотов
type Response struct {
	EstablishmentID int64     // ID заведения
	ServiceID       int64     // ID услуги
	Date            time.Time // Дата
	DurationMinutes int       // Длительность услуги в минутах
	Slots           []Slot    // Доступные слоты, отсортированные по времени начала
}
