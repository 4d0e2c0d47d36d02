package cart

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/pkg/metrics"
)

// indexOf — индекс позиции по ProductID; -1, если её нет.
// Вызывается только под мьютексом.
func (s *Store) indexOf(productID string) int {
	for i, it := range s.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// persistLocked — сериализует коллекцию в хранилище.
// Ошибка записи не откатывает применённую мутацию: хранилище — best-effort
// слой живучести, а не источник истины; условие логируется.
func (s *Store) persistLocked(ctx context.Context) {
	blob, err := json.Marshal(s.items)
	if err != nil {
		s.log.Errorf(ctx, "cart marshal failed: %v", err)
		return
	}
	if err := s.storage.Set(ctx, StorageKey, blob); err != nil {
		s.log.Errorf(ctx, "cart persist failed: %v", err)
	}
	metrics.CartItems.Set(float64(len(s.items)))
}

// restore — однократная регидрация при старте. Повреждённый или чужой по
// форме блоб приводит к пустой корзине и предупреждению в лог, не к падению.
func (s *Store) restore(ctx context.Context) {
	blob, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warnf(ctx, "cart restore: storage read failed: %v", err)
		return
	}
	if !ok {
		return
	}

	var items []domain.CartItem
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&items); err != nil {
		s.log.Warnf(ctx, "cart restore: corrupt blob, starting empty: %v", err)
		return
	}

	// Отбрасываем позиции, нарушающие инварианты (блоб мог быть записан
	// до изменения остатков или вручную).
	kept := items[:0]
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 || it.Quantity > it.Stock || it.UnitPrice.IsNegative() {
			s.log.Warnf(ctx, "cart restore: dropping invalid item product_id=%q qty=%d stock=%d", it.ProductID, it.Quantity, it.Stock)
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	metrics.CartItems.Set(float64(len(s.items)))
}
