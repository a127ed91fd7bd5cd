package clientservice

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrServiceDegraded возвращается при недоступности ClientService
	// Запись можно создать и без имени клиента
	ErrServiceDegraded = errors.New("clientservice client: service degraded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientservice client: invalid response")
)
