package file

import (
	"context"
	"testing"
)

func TestSetGetRemove_RoundTrip(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	ctx := context.Background()

	// Отсутствующий ключ — (nil, false, nil).
	if _, ok, err := s.Get(ctx, "cart"); err != nil || ok {
		t.Fatalf("want miss without error, got ok=%v err=%v", ok, err)
	}

	want := []byte(`[{"product_id":"A"}]`)
	if err := s.Set(ctx, "cart", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := s.Get(ctx, "cart")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(got) != string(want) {
		t.Fatalf("round trip mismatch: %q != %q", got, want)
	}

	if err := s.Remove(ctx, "cart"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "cart"); ok {
		t.Fatalf("want miss after Remove")
	}

	// Повторный Remove — no-op.
	if err := s.Remove(ctx, "cart"); err != nil {
		t.Fatalf("Remove of absent key: %v", err)
	}
}

func TestSet_Overwrite(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	ctx := context.Background()

	_ = s.Set(ctx, "cart", []byte("old"))
	if err := s.Set(ctx, "cart", []byte("new")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ := s.Get(ctx, "cart")
	if string(got) != "new" {
		t.Fatalf("want new, got %q", got)
	}
}
