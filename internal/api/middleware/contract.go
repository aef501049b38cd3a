package middleware

import "context"

// PINChecker проверяет PIN администратора
type PINChecker interface {
	CheckPIN(ctx context.Context, pin string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
