package ports

import (
	"context"

	"github.com/dkravtsov/shopfront/internal/domain"
)

// AddressDirectory — справочник адресов доставки (только чтение).
type AddressDirectory interface {
	ListAddresses(ctx context.Context) ([]domain.Address, error)

	// GetDefaultAddress — адрес по умолчанию; (nil, nil), если не задан.
	GetDefaultAddress(ctx context.Context) (*domain.Address, error)
}

// CardDirectory — справочник сохранённых карт (только чтение).
type CardDirectory interface {
	ListCards(ctx context.Context) ([]domain.Card, error)
}
