package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или отключена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при некорректной или повторяющейся дате
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateInPast возвращается, когда дата бронирования уже прошла
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateBlocked возвращается, когда владелец закрыл дату
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrDateUnavailable возвращается, когда на одну из дат нет мест.
	// Причину и дату можно достать через errors.As(err, **engine.Rejection)
	ErrDateUnavailable = errors.New("create_booking: date is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
