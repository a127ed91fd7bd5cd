package create_appointment

import (
	"time"

	"github.com/t1mofey/SLN-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID        int64            // ID клиента
	EstablishmentID int64            // ID заведения
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	Notes           *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     // ID созданной записи
	ClientID        int64     // ID клиента
	EstablishmentID int64     // ID заведения
	ServiceID       int64     // ID услуги
	Date            string    // Дата записи, "2025-10-15"
	StartTime       string    // Время начала, "10:00"
	EndTime         string    // Время окончания, "10:30"
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	ClientName   *string // Имя клиента (nil при недоступности ClientService)
	Notes        *string // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
