package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/types"
)

var testProduct = ProductRef{ProductID: 7, Name: "Slim Tee", UnitPriceCents: 1999, ImageURL: "https://cdn.example.com/7.jpg"}

func newTestStore(t *testing.T, opts ...Option) (*Store, *memPersistence) {
	t.Helper()

	persist := &memPersistence{}
	store, err := NewStore(context.Background(), persist, nil, opts...)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store, persist
}

func TestAddItemMergesSameProductAndVariant(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()
	variant := types.Variant{Color: "Black", Size: "M"}

	first, err := store.AddItem(ctx, testProduct, 2, variant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.AddItem(ctx, testProduct, 3, variant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected the same line to be updated")
	}
	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddItemDifferentVariantCreatesNewLine(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := store.AddItem(ctx, testProduct, 1, types.Variant{Color: "Black", Size: "M"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.AddItem(ctx, testProduct, 1, types.Variant{Color: "Black", Size: "L"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(store.Items()); got != 2 {
		t.Fatalf("expected two lines for distinct variants, got %d", got)
	}
	if got := store.Count(); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	_, err := store.AddItem(context.Background(), testProduct, 0, types.Variant{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	line, err := store.AddItem(ctx, testProduct, 2, types.Variant{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.SetQuantity(ctx, line.ID, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.IsEmpty() {
		t.Fatalf("expected empty cart after zero quantity")
	}
}

func TestSetQuantityReplacesValue(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	line, _ := store.AddItem(ctx, testProduct, 2, types.Variant{})
	if err := store.SetQuantity(ctx, line.ID, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Items()[0].Quantity; got != 9 {
		t.Fatalf("expected quantity 9, got %d", got)
	}

	// Unknown line ids are ignored, matching RemoveItem semantics.
	if err := store.SetQuantity(ctx, uuid.New(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(store.Items()); got != 1 {
		t.Fatalf("unknown line must not add entries, got %d", got)
	}
}

func TestRemoveItemUnknownIsNoop(t *testing.T) {
	t.Parallel()

	store, persist := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct, 1, types.Variant{})
	saves := persist.saves

	if err := store.RemoveItem(ctx, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persist.saves != saves {
		t.Fatalf("no-op removal should not write a snapshot")
	}
}

func TestTotalsAndCount(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, ProductRef{ProductID: 1, Name: "A", UnitPriceCents: 1000}, 2, types.Variant{})
	store.AddItem(ctx, ProductRef{ProductID: 2, Name: "B", UnitPriceCents: 2500}, 1, types.Variant{})

	if got := store.TotalCents(); got != 4500 {
		t.Fatalf("expected total 4500, got %d", got)
	}
	if got := store.Count(); got != 3 {
		t.Fatalf("expected count 3, got %d", got)
	}
}

func TestClearEmptiesCartAndPersists(t *testing.T) {
	t.Parallel()

	store, persist := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct, 1, types.Variant{})
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.IsEmpty() {
		t.Fatalf("expected empty cart after Clear")
	}
	if len(persist.last) != 0 {
		t.Fatalf("expected empty snapshot persisted, got %d items", len(persist.last))
	}
}

func TestNotificationAutoClears(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	store, _ := newTestStore(t, WithClock(func() time.Time { return current }))

	if store.NotificationActive() {
		t.Fatalf("notification should start cleared")
	}
	store.AddItem(context.Background(), testProduct, 1, types.Variant{})
	if !store.NotificationActive() {
		t.Fatalf("notification should be raised after AddItem")
	}

	current = current.Add(4 * time.Second)
	if store.NotificationActive() {
		t.Fatalf("notification should auto-clear after its TTL")
	}
}

func TestNewStoreRestoresSnapshot(t *testing.T) {
	t.Parallel()

	persist := &memPersistence{last: []LineItem{{ID: uuid.New(), ProductID: 3, Quantity: 2, UnitPriceCents: 500}}}
	store, err := NewStore(context.Background(), persist, nil)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if store.TotalCents() != 1000 {
		t.Fatalf("expected restored total 1000, got %d", store.TotalCents())
	}
}

type memPersistence struct {
	last  []LineItem
	saves int
}

func (m *memPersistence) LoadCart(ctx context.Context) ([]LineItem, error) {
	return append([]LineItem(nil), m.last...), nil
}

func (m *memPersistence) SaveCart(ctx context.Context, items []LineItem) error {
	m.last = append([]LineItem(nil), items...)
	m.saves++
	return nil
}
