package engine

import (
	"fmt"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// ParseDate разбирает календарную дату YYYY-MM-DD в полдень локального времени.
// Полдень исключает сдвиг дня при переходе на летнее/зимнее время.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}

// FormatDate форматирует время как календарную дату YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// AddDays возвращает дату, смещённую на n дней (n может быть отрицательным)
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DatesBetween перечисляет даты от from до to включительно.
// Диапазон длиннее maxDays отклоняется до построения списка; maxDays <= 0 снимает ограничение.
func DatesBetween(from, to string, maxDays int) ([]string, error) {
	start, err := ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidRange, to, from)
	}
	if maxDays > 0 && end.After(start.AddDate(0, 0, maxDays-1)) {
		return nil, fmt.Errorf("%w: %s..%s is longer than %d days", ErrRangeTooLong, from, to, maxDays)
	}

	dates := make([]string, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates, nil
}

// IsBefore сравнивает две корректные даты YYYY-MM-DD.
// Формат позволяет сравнивать строки лексикографически.
func IsBefore(a, b string) bool {
	return a < b
}
