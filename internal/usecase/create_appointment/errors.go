package create_appointment

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда заведение не найдено
	ErrEstablishmentNotFound = errors.New("create_appointment: establishment not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена заведением
	ErrServiceInactive = errors.New("create_appointment: service is inactive")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrEstablishmentClosed возвращается, когда заведение закрыто в указанную дату
	ErrEstablishmentClosed = errors.New("create_appointment: establishment is closed on this date")

	// ErrTooLateToBook возвращается, когда запись нарушает минимальное время до начала
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrTimeConflict возвращается, когда интервал записи пересекается с
	// существующей записью или периодом недоступности
	ErrTimeConflict = errors.New("create_appointment: time conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
