package check_conflict

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда заведение не найдено
	ErrEstablishmentNotFound = errors.New("check_conflict: establishment not found")

	// ErrAccessDenied возвращается, когда пользователь не является мастером заведения
	ErrAccessDenied = errors.New("check_conflict: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflict: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflict: internal error")
)
