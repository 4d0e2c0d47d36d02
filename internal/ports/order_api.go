package ports

import (
	"context"

	"github.com/dkravtsov/shopfront/internal/domain"
)

// OrderAPI — клиент внешнего сервиса заказов/платежей.
// Ядро только вызывает его; жизненным циклом заказа владеет бэкенд.
type OrderAPI interface {
	// CreateOrder — создать заказ из черновика.
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error)

	// GetOrder — получить заказ по идентификатору (используется опросом PIX).
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders — список заказов пользователя (страница «мои заказы»).
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
