package create_unavailability

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда заведение не найдено
	ErrEstablishmentNotFound = errors.New("create_unavailability: establishment not found")

	// ErrAccessDenied возвращается, когда пользователь не является мастером заведения
	ErrAccessDenied = errors.New("create_unavailability: access denied")

	// ErrTimeConflict возвращается, когда период пересекается с другой недоступностью
	ErrTimeConflict = errors.New("create_unavailability: time conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_unavailability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_unavailability: internal error")
)
