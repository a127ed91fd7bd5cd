package create_unavailability

import "time"

// Request модель запроса на создание периода недоступности
type Request struct {
	UserID          int64     // ID мастера, выполняющего операцию
	EstablishmentID int64     // ID заведения
	StartAt         time.Time // Начало периода
	EndAt           time.Time // Конец периода (не включается)
	Type            string    // Тип: vacation, illness, training, event, other
	Reason          *string   // Причина (опционально)
	Recurrence      *string   // Правило повторения: daily, weekly, monthly (опционально)
	Force           bool      // Создать несмотря на пересечение с записями
}

// Response модель ответа на создание периода недоступности
// Если период пересекается с существующими записями и Force не установлен,
// возвращается RequiresConfirmation=true с текстом предупреждения,
// недоступность при этом не создается
type Response struct {
	ID                   int64   // ID созданной недоступности (0, если требуется подтверждение)
	EstablishmentID      int64   // ID заведения
	StartAt              string  // Начало периода, ISO 8601
	EndAt                string  // Конец периода, ISO 8601
	Type                 string  // Тип недоступности
	Reason               *string // Причина
	Recurrence           *string // Правило повторения
	RequiresConfirmation bool    // Требуется подтверждение (Force=true)
	Warning              string  // Текст предупреждения о пересечении с записями
}
