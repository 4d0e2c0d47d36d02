package domain

import "github.com/shopspring/decimal"

// CartItem — позиция корзины. Ключ уникальности в коллекции — ProductID.
// Stock — снимок доступного остатка на момент добавления товара;
// инвариант Quantity <= Stock поддерживается хранилищем корзины.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url,omitempty"`
	Stock     int             `json:"stock"`
}

// Subtotal — стоимость позиции: цена * количество.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MinorUnits — перевод десятичной суммы в минорные единицы валюты (центы/копейки).
// Округление банковское не используется: половина всегда вверх, как делает бэкенд.
func MinorUnits(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
