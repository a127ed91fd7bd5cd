package domain

import "time"

// BookingPolicy настройки бронирования заведения
// Одна запись на заведение; при отсутствии используются дефолтные значения.
type BookingPolicy struct {
	ID               int64
	EstablishmentID  int64
	SlotStepMinutes  int // Шаг сетки слотов (минуты)
	AdvanceDays      int // Горизонт бронирования в днях, 0 = без ограничения
	MinNoticeMinutes int // Минимальное время до начала слота при записи на сегодня

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAdvanceLimit returns true if there's a limit on how far in advance bookings can be made
func (p *BookingPolicy) HasAdvanceLimit() bool {
	return p.AdvanceDays > 0
}

// DefaultBookingPolicy возвращает политику с дефолтными значениями
func DefaultBookingPolicy(establishmentID int64) *BookingPolicy {
	return &BookingPolicy{
		EstablishmentID:  establishmentID,
		SlotStepMinutes:  DefaultSlotStepMinutes,
		AdvanceDays:      DefaultAdvanceDays,
		MinNoticeMinutes: DefaultMinNoticeMinutes,
	}
}
