package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/internal/ports"
)

// Проверка, что CartValidator удовлетворяет интерфейсу CartValidator.
var _ ports.CartValidator = (*CartValidator)(nil)

// ErrInvalidCart — базовая (sentinel error) ошибка валидации.
var ErrInvalidCart = errors.New("cart validation failed")

// CartValidator — структура для валидации блоба корзины.
// Возвращает ErrInvalidCart (с обёрнутой причиной) при любой проблеме.
type CartValidator struct{}

// NewCartValidator — конструктор CartValidator.
func NewCartValidator() *CartValidator { return &CartValidator{} }

// Validate — проверяет инварианты позиций корзины: непустой product_id,
// 1 <= quantity <= stock, неотрицательная цена, отсутствие дублей.
func (v *CartValidator) Validate(_ context.Context, items []domain.CartItem) error {
	seen := make(map[string]struct{}, len(items))

	for i := range items {
		item := &items[i]

		if item.ProductID == "" {
			return fmt.Errorf("%w: items[%d].product_id обязателен", ErrInvalidCart, i)
		}
		if _, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("%w: items[%d].product_id=%q дублируется", ErrInvalidCart, i, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}

		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%d].quantity должен быть >= 1", ErrInvalidCart, i)
		}
		if item.Quantity > item.Stock {
			return fmt.Errorf("%w: items[%d].quantity превышает stock", ErrInvalidCart, i)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: items[%d].unit_price должен быть неотрицательным", ErrInvalidCart, i)
		}
	}
	return nil
}
