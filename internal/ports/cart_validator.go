package ports

import (
	"context"

	"github.com/dkravtsov/shopfront/internal/domain"
)

// CartValidator — проверка консистентности набора позиций корзины
// (дубликаты, границы количества/остатка, цены).
type CartValidator interface {
	Validate(ctx context.Context, items []domain.CartItem) error
}
