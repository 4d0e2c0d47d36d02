package notify

import (
	"context"

	"github.com/dkravtsov/shopfront/internal/ports"
)

// LogNotifier — доставка пользовательских уведомлений через журнал.
// В шлюзе нет канала push-уведомлений, поэтому тосты из веб-версии
// превращаются в структурированные записи лога.
type LogNotifier struct {
	log ports.Logger
}

// NewLogNotifier — конструктор.
func NewLogNotifier(log ports.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Success — уведомление об успешном действии.
func (n *LogNotifier) Success(ctx context.Context, msg string) {
	n.log.Infof(ctx, "notify success: %s", msg)
}

// Error — уведомление об ошибке, видимой пользователю.
func (n *LogNotifier) Error(ctx context.Context, msg string) {
	n.log.Warnf(ctx, "notify error: %s", msg)
}
