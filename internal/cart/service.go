package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
	"github.com/velora-shop/velora-backend/pkg/types"
)

const defaultNotificationTTL = 3 * time.Second

// Store owns the cart line items. All mutation goes through it; every
// successful mutation is snapshotted to the persistence collaborator.
type Store struct {
	mu              sync.Mutex
	items           []LineItem
	persist         Persistence
	logg            *logger.Logger
	notificationTTL time.Duration
	notifyUntil     time.Time
	now             func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithNotificationTTL overrides how long the "item added" notification stays raised.
func WithNotificationTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.notificationTTL = ttl
		}
	}
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore restores the snapshot from the persistence collaborator and builds
// the store around it.
func NewStore(ctx context.Context, persist Persistence, logg *logger.Logger, opts ...Option) (*Store, error) {
	if persist == nil {
		return nil, fmt.Errorf("cart persistence required")
	}

	items, err := persist.LoadCart(ctx)
	if err != nil {
		return nil, err
	}

	s := &Store{
		items:           items,
		persist:         persist,
		logg:            logg,
		notificationTTL: defaultNotificationTTL,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddItem merges the quantity into an existing line with the same product and
// variant, or appends a new line. Raises the transient "item added" notification.
func (s *Store) AddItem(ctx context.Context, product ProductRef, quantity int, variant types.Variant) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if product.ProductID == 0 {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if product.UnitPriceCents < 0 {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var line LineItem
	merged := false
	for i := range s.items {
		if s.items[i].matches(product.ProductID, variant) {
			s.items[i].Quantity += quantity
			line = s.items[i]
			merged = true
			break
		}
	}
	if !merged {
		line = LineItem{
			ID:             uuid.New(),
			ProductID:      product.ProductID,
			Name:           product.Name,
			UnitPriceCents: product.UnitPriceCents,
			ImageURL:       product.ImageURL,
			Quantity:       quantity,
			Variant:        variant,
		}
		s.items = append(s.items, line)
	}

	s.notifyUntil = s.now().Add(s.notificationTTL)
	s.saveLocked(ctx)
	return line, nil
}

// RemoveItem deletes the matching line. Removing an unknown line is a no-op.
func (s *Store) RemoveItem(ctx context.Context, lineID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, lineID)
}

// SetQuantity replaces the line's quantity. A quantity of zero or less behaves
// exactly like RemoveItem.
func (s *Store) SetQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, lineID)
	}

	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].Quantity = quantity
			s.saveLocked(ctx)
			return nil
		}
	}
	return nil
}

// Clear empties the cart. Called after a successful order submission.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return nil
	}
	s.items = nil
	s.saveLocked(ctx)
	return nil
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalCents sums unit price times quantity across all lines.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.items {
		total += item.LineTotalCents()
	}
	return total
}

// Count sums quantities across all lines, which differs from the line count.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// NotificationActive reports whether the "item added" banner is still raised.
// The notification clears itself once its TTL elapses.
func (s *Store) NotificationActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.notifyUntil)
}

func (s *Store) removeLocked(ctx context.Context, lineID uuid.UUID) error {
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.saveLocked(ctx)
			return nil
		}
	}
	return nil
}

// saveLocked snapshots the cart. The in-memory state stays authoritative when
// the write fails; the failure is surfaced in logs only.
func (s *Store) saveLocked(ctx context.Context) {
	if err := s.persist.SaveCart(ctx, s.items); err != nil && s.logg != nil {
		s.logg.Error(ctx, "cart.snapshot_failed", err)
	}
}
