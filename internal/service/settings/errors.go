package settings

import "errors"

var (
	// ErrInvalidSettings возвращается, когда новые настройки не прошли проверку
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
