package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/dkravtsov/shopfront/internal/ports"
	"github.com/dkravtsov/shopfront/pkg/metrics"
	"github.com/shopspring/decimal"
)

// StorageKey — фиксированный ключ блоба корзины в локальном хранилище.
const StorageKey = "cart"

// ErrQuantityExceedsStock — запрошенное количество превышает остаток.
var ErrQuantityExceedsStock = errors.New("quantity exceeds available stock")

// Store — авторитетное локальное состояние корзины.
// Дисциплина одного писателя: любые мутации проходят через методы Store,
// который сам применяет изменение, поддерживает инвариант quantity <= stock
// и сериализует коллекцию в хранилище после каждой применённой мутации.
// Порядок позиций — порядок вставки.
type Store struct {
	storage ports.CartStorage
	notify  ports.Notifier
	log     ports.Logger

	mu    sync.Mutex
	items []domain.CartItem
}

// NewStore — конструктор. Однократно восстанавливает состояние из хранилища;
// нечитаемый блоб — не фатален: корзина начинает с пустого состояния.
func NewStore(ctx context.Context, storage ports.CartStorage, notify ports.Notifier, log ports.Logger) *Store {
	s := &Store{
		storage: storage,
		notify:  notify,
		log:     log,
	}
	s.restore(ctx)
	return s
}

// AddItem — добавить товар. Повторное добавление того же ProductID сливается
// с существующей позицией; выход за остаток отклоняет мутацию целиком.
// requested <= 0 трактуется как 1.
func (s *Store) AddItem(ctx context.Context, candidate domain.CartItem, requested int) error {
	if requested <= 0 {
		requested = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(candidate.ProductID); idx >= 0 {
		merged := s.items[idx].Quantity + requested
		if merged > candidate.Stock {
			metrics.CartOps.WithLabelValues("add", "rejected").Inc()
			s.notify.Error(ctx, "quantity exceeds available stock")
			return ErrQuantityExceedsStock
		}
		s.items[idx].Quantity = merged
		s.items[idx].Stock = candidate.Stock
		s.persistLocked(ctx)
		metrics.CartOps.WithLabelValues("add", "applied").Inc()
		s.notify.Success(ctx, "cart quantity updated")
		return nil
	}

	if requested > candidate.Stock {
		metrics.CartOps.WithLabelValues("add", "rejected").Inc()
		s.notify.Error(ctx, "quantity exceeds available stock")
		return ErrQuantityExceedsStock
	}

	candidate.Quantity = requested
	s.items = append(s.items, candidate)
	s.persistLocked(ctx)
	metrics.CartOps.WithLabelValues("add", "applied").Inc()
	s.notify.Success(ctx, "product added to cart")
	return nil
}

// RemoveItem — удалить позицию. Отсутствие ключа — не ошибка и не мутация.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		metrics.CartOps.WithLabelValues("remove", "noop").Inc()
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persistLocked(ctx)
	metrics.CartOps.WithLabelValues("remove", "applied").Inc()
	s.notify.Success(ctx, "product removed from cart")
}

// UpdateQuantity — установить количество позиции.
// quantity <= 0 эквивалентно RemoveItem; выход за остаток отклоняется,
// позиция остаётся без изменений.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		metrics.CartOps.WithLabelValues("update", "noop").Inc()
		return nil
	}
	if quantity > s.items[idx].Stock {
		metrics.CartOps.WithLabelValues("update", "rejected").Inc()
		s.notify.Error(ctx, "quantity exceeds available stock")
		return ErrQuantityExceedsStock
	}
	s.items[idx].Quantity = quantity
	s.persistLocked(ctx)
	metrics.CartOps.WithLabelValues("update", "applied").Inc()
	return nil
}

// Clear — опустошить корзину.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked(ctx)
	metrics.CartOps.WithLabelValues("clear", "applied").Inc()
	s.notify.Success(ctx, "cart cleared")
}

// Items — копия текущих позиций (внешние изменения не затрагивают Store).
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

// TotalItemCount — суммарное количество единиц товара.
// Производные значения пересчитываются при каждом чтении, не кэшируются.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice — суммарная стоимость корзины.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}
