package engine

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("engine: invalid date")

	// ErrInvalidRange возвращается, когда конец диапазона раньше начала
	ErrInvalidRange = errors.New("engine: invalid date range")

	// ErrRangeTooLong возвращается, когда диапазон дат длиннее допустимого
	ErrRangeTooLong = errors.New("engine: date range too long")
)
