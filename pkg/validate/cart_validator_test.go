package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/pkg/validate"
	"github.com/shopspring/decimal"
)

func validItems() []domain.CartItem {
	return []domain.CartItem{
		{
			ProductID: "A",
			Name:      "Widget",
			UnitPrice: decimal.RequireFromString("10.50"),
			Quantity:  2,
			Stock:     5,
		},
		{
			ProductID: "B",
			Name:      "Gadget",
			UnitPrice: decimal.RequireFromString("3.30"),
			Quantity:  1,
			Stock:     1,
		},
	}
}

func TestCartValidator_Validate(t *testing.T) {
	v := validate.NewCartValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, validItems()); err != nil {
		t.Fatalf("valid cart rejected: %v", err)
	}

	// Пустая корзина — валидный блоб.
	if err := v.Validate(ctx, nil); err != nil {
		t.Fatalf("empty cart rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(items []domain.CartItem) []domain.CartItem
	}{
		{"empty product id", func(items []domain.CartItem) []domain.CartItem {
			items[0].ProductID = ""
			return items
		}},
		{"duplicate product id", func(items []domain.CartItem) []domain.CartItem {
			items[1].ProductID = items[0].ProductID
			return items
		}},
		{"zero quantity", func(items []domain.CartItem) []domain.CartItem {
			items[0].Quantity = 0
			return items
		}},
		{"quantity over stock", func(items []domain.CartItem) []domain.CartItem {
			items[0].Quantity = items[0].Stock + 1
			return items
		}},
		{"negative price", func(items []domain.CartItem) []domain.CartItem {
			items[0].UnitPrice = decimal.RequireFromString("-1")
			return items
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.mutate(validItems()))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, validate.ErrInvalidCart) {
				t.Fatalf("want ErrInvalidCart, got %v", err)
			}
		})
	}
}
