package cart

import (
	"context"
	"testing"

	"github.com/dkravtsov/shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

type memStorage struct {
	m map[string][]byte
}

func newMemStorage() *memStorage { return &memStorage{m: make(map[string][]byte)} }

func (f *memStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, ok := f.m[key]
	return b, ok, nil
}

func (f *memStorage) Set(_ context.Context, key string, blob []byte) error {
	f.m[key] = append([]byte(nil), blob...)
	return nil
}

func (f *memStorage) Remove(_ context.Context, key string) error {
	delete(f.m, key)
	return nil
}

type recNotifier struct {
	successes []string
	errors    []string
}

func (n *recNotifier) Success(_ context.Context, msg string) { n.successes = append(n.successes, msg) }
func (n *recNotifier) Error(_ context.Context, msg string)   { n.errors = append(n.errors, msg) }

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func item(id string, price float64, stock int) domain.CartItem {
	return domain.CartItem{
		ProductID: id,
		Name:      "product " + id,
		UnitPrice: decimal.NewFromFloat(price),
		Stock:     stock,
	}
}

func newTestStore(t *testing.T) (*Store, *memStorage, *recNotifier) {
	t.Helper()
	st := newMemStorage()
	n := &recNotifier{}
	return NewStore(context.Background(), st, n, noopLogger{}), st, n
}

func TestAddItem_MergeAndClampToStock(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	if err := s.AddItem(ctx, item("A", 10, 5), 2); err != nil {
		t.Fatalf("add 2: %v", err)
	}
	// Слияние: 2 + 3 = 5 == stock — ещё допустимо.
	if err := s.AddItem(ctx, item("A", 10, 5), 3); err != nil {
		t.Fatalf("add 3 (merge to stock): %v", err)
	}
	if got := s.Items(); len(got) != 1 || got[0].Quantity != 5 {
		t.Fatalf("want single item qty=5, got %+v", got)
	}

	// 5 + 1 > stock — отказ без мутации.
	if err := s.AddItem(ctx, item("A", 10, 5), 1); err != ErrQuantityExceedsStock {
		t.Fatalf("want ErrQuantityExceedsStock, got %v", err)
	}
	if got := s.Items(); got[0].Quantity != 5 {
		t.Fatalf("rejected add must not mutate, qty=%d", got[0].Quantity)
	}
	if len(n.errors) != 1 {
		t.Fatalf("want one error notification, got %v", n.errors)
	}
}

func TestAddItem_NewItemOverStock_Rejected(t *testing.T) {
	s, _, _ := newTestStore(t)

	if err := s.AddItem(context.Background(), item("B", 3, 2), 3); err != ErrQuantityExceedsStock {
		t.Fatalf("want ErrQuantityExceedsStock, got %v", err)
	}
	if got := s.Items(); len(got) != 0 {
		t.Fatalf("cart must stay empty, got %+v", got)
	}
}

func TestAddItem_DefaultQuantityIsOne(t *testing.T) {
	s, _, _ := newTestStore(t)

	if err := s.AddItem(context.Background(), item("C", 1, 10), 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := s.Items(); got[0].Quantity != 1 {
		t.Fatalf("want qty=1, got %d", got[0].Quantity)
	}
}

func TestUpdateQuantity_ZeroEqualsRemove(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_ = s.AddItem(ctx, item("A", 10, 5), 2)
	if err := s.UpdateQuantity(ctx, "A", 0); err != nil {
		t.Fatalf("update to 0: %v", err)
	}
	if got := s.Items(); len(got) != 0 {
		t.Fatalf("want empty cart, got %+v", got)
	}

	// Для отсутствующего id — тот же no-op, что и RemoveItem.
	if err := s.UpdateQuantity(ctx, "missing", 0); err != nil {
		t.Fatalf("update absent to 0: %v", err)
	}
}

func TestUpdateQuantity_OverStock_Unchanged(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_ = s.AddItem(ctx, item("A", 10, 5), 2)
	if err := s.UpdateQuantity(ctx, "A", 6); err != ErrQuantityExceedsStock {
		t.Fatalf("want ErrQuantityExceedsStock, got %v", err)
	}
	if got := s.Items(); got[0].Quantity != 2 {
		t.Fatalf("rejected update must not mutate, qty=%d", got[0].Quantity)
	}

	if err := s.UpdateQuantity(ctx, "A", 4); err != nil {
		t.Fatalf("update to 4: %v", err)
	}
	if got := s.Items(); got[0].Quantity != 4 {
		t.Fatalf("want qty=4, got %d", got[0].Quantity)
	}
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	s, _, n := newTestStore(t)
	ctx := context.Background()

	_ = s.AddItem(ctx, item("A", 10, 5), 1)
	before := len(n.successes)
	s.RemoveItem(ctx, "missing")
	if got := s.Items(); len(got) != 1 {
		t.Fatalf("remove of absent id must not mutate")
	}
	if len(n.successes) != before {
		t.Fatalf("remove of absent id must not notify")
	}
}

func TestTotals_RecomputedAfterAnySequence(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_ = s.AddItem(ctx, item("A", 10.50, 10), 2)
	_ = s.AddItem(ctx, item("B", 3.30, 10), 3)
	_ = s.UpdateQuantity(ctx, "A", 4)
	s.RemoveItem(ctx, "B")
	_ = s.AddItem(ctx, item("B", 3.30, 10), 1)

	if got := s.TotalItemCount(); got != 5 {
		t.Fatalf("total count: want 5, got %d", got)
	}
	want := decimal.NewFromFloat(10.50).Mul(decimal.NewFromInt(4)).Add(decimal.NewFromFloat(3.30))
	if got := s.TotalPrice(); !got.Equal(want) {
		t.Fatalf("total price: want %s, got %s", want, got)
	}
}

func TestClear_EmptyReads(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_ = s.AddItem(ctx, item("A", 10, 5), 2)
	s.Clear(ctx)

	if got := s.Items(); len(got) != 0 {
		t.Fatalf("want empty, got %+v", got)
	}
	if got := s.TotalItemCount(); got != 0 {
		t.Fatalf("want count 0, got %d", got)
	}
	if got := s.TotalPrice(); !got.IsZero() {
		t.Fatalf("want zero total, got %s", got)
	}
}

func TestPersist_RoundTrip(t *testing.T) {
	st := newMemStorage()
	ctx := context.Background()

	first := NewStore(ctx, st, &recNotifier{}, noopLogger{})
	_ = first.AddItem(ctx, item("A", 10.50, 5), 2)
	_ = first.AddItem(ctx, item("B", 3, 7), 1)

	second := NewStore(ctx, st, &recNotifier{}, noopLogger{})
	got := second.Items()
	want := first.Items()
	if len(got) != len(want) {
		t.Fatalf("want %d items after reload, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ProductID != want[i].ProductID ||
			got[i].Quantity != want[i].Quantity ||
			got[i].Stock != want[i].Stock ||
			!got[i].UnitPrice.Equal(want[i].UnitPrice) {
			t.Fatalf("item %d mismatch: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestRestore_CorruptBlob_EmptyCart(t *testing.T) {
	st := newMemStorage()
	st.m[StorageKey] = []byte("{not json")

	s := NewStore(context.Background(), st, &recNotifier{}, noopLogger{})
	if got := s.Items(); len(got) != 0 {
		t.Fatalf("corrupt blob must yield empty cart, got %+v", got)
	}
}

func TestRestore_DropsInvalidItems(t *testing.T) {
	st := newMemStorage()
	// Вторая позиция нарушает quantity <= stock, третья — без product_id.
	st.m[StorageKey] = []byte(`[
		{"product_id":"A","name":"a","unit_price":"10.5","quantity":2,"stock":5},
		{"product_id":"B","name":"b","unit_price":"1","quantity":9,"stock":5},
		{"product_id":"","name":"c","unit_price":"1","quantity":1,"stock":5}
	]`)

	s := NewStore(context.Background(), st, &recNotifier{}, noopLogger{})
	got := s.Items()
	if len(got) != 1 || got[0].ProductID != "A" {
		t.Fatalf("want only item A restored, got %+v", got)
	}
}

func TestItems_InsertionOrderAndCopy(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_ = s.AddItem(ctx, item("C", 1, 9), 1)
	_ = s.AddItem(ctx, item("A", 1, 9), 1)
	_ = s.AddItem(ctx, item("B", 1, 9), 1)

	got := s.Items()
	if got[0].ProductID != "C" || got[1].ProductID != "A" || got[2].ProductID != "B" {
		t.Fatalf("insertion order broken: %+v", got)
	}

	got[0].Quantity = 100
	if s.Items()[0].Quantity != 1 {
		t.Fatalf("Items must return copies")
	}
}
