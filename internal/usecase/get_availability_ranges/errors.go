package get_availability_ranges

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда заведение не найдено
	ErrEstablishmentNotFound = errors.New("get_availability_ranges: establishment not found")

	// ErrInvalidPeriod возвращается при некорректном периоде
	ErrInvalidPeriod = errors.New("get_availability_ranges: invalid period")

	// ErrPeriodTooLong возвращается, когда период превышает максимальную длину
	ErrPeriodTooLong = errors.New("get_availability_ranges: period is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability_ranges: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability_ranges: internal error")
)
