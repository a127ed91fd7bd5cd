package establishmentservice

import "github.com/t1mofey/SLN-BookingService/internal/domain"

// Establishment модель заведения из EstablishmentService
type Establishment struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	City            string         `json:"city"`
	ProfessionalIDs []int64        `json:"professionalIds"` // Пользователи, управляющие заведением
	WorkingHours    WeeklySchedule `json:"workingHours"`
}

// WeeklySchedule недельное расписание заведения
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule расписание работы на один день недели
// Времена "HH:MM"; хранилище может отдавать "HH:MM:SS"
type DaySchedule struct {
	IsOpen     bool    `json:"isOpen"`
	OpenTime   *string `json:"openTime"`
	CloseTime  *string `json:"closeTime"`
	BreakStart *string `json:"breakStart"`
	BreakEnd   *string `json:"breakEnd"`
}

// Service модель услуги из EstablishmentService
type Service struct {
	ID              int64    `json:"id"`
	EstablishmentID int64    `json:"establishmentId"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price"`
	IsActive        bool     `json:"isActive"`
}

// ErrorResponse модель ошибки от EstablishmentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует расписание в доменную модель
func (w WeeklySchedule) ToDomain() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		Monday:    w.Monday.ToDomain(),
		Tuesday:   w.Tuesday.ToDomain(),
		Wednesday: w.Wednesday.ToDomain(),
		Thursday:  w.Thursday.ToDomain(),
		Friday:    w.Friday.ToDomain(),
		Saturday:  w.Saturday.ToDomain(),
		Sunday:    w.Sunday.ToDomain(),
	}
}

// ToDomain конвертирует дневное расписание в доменную модель
func (d DaySchedule) ToDomain() domain.DaySchedule {
	return domain.DaySchedule{
		IsOpen:     d.IsOpen,
		OpenTime:   d.OpenTime,
		CloseTime:  d.CloseTime,
		BreakStart: d.BreakStart,
		BreakEnd:   d.BreakEnd,
	}
}
