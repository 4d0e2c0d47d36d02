package ports

import "context"

// Notifier — канал пользовательских уведомлений (аналог toast в UI).
// Реализация не должна блокировать вызывающего.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
