package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/internal/ports"
)

// ValidateCartFromJSON — валидация блоба корзины из JSON (массив позиций).
func ValidateCartFromJSON(ctx context.Context, validator ports.CartValidator, raw []byte) ([]domain.CartItem, error) {
	var items []domain.CartItem
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после массива
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}
