package payments

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/velora-shop/velora-backend/internal/orders"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/redis"
)

// PendingOrder is a fully priced order parked while the customer completes
// a redirect payment. It is everything needed to submit the order once the
// gateway confirms, without touching the cart again.
type PendingOrder struct {
	OrderID       string         `json:"order_id"`
	TransactionID string         `json:"transaction_id"`
	Payload       orders.Payload `json:"payload"`
	CreatedAt     time.Time      `json:"created_at"`
}

// PendingStore parks and redeems pending redirect orders.
type PendingStore interface {
	Put(ctx context.Context, pending PendingOrder) error
	Get(ctx context.Context, orderID string) (PendingOrder, error)
	Delete(ctx context.Context, orderID string) error
}

// RedisPendingStore keeps pending orders as JSON blobs with a TTL, so an
// abandoned redirect expires on its own.
type RedisPendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPendingStore(client *redis.Client, ttl time.Duration) (*RedisPendingStore, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisPendingStore{client: client, ttl: ttl}, nil
}

func (s *RedisPendingStore) Put(ctx context.Context, pending PendingOrder) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode pending order")
	}
	key := s.client.PendingOrderKey(pending.OrderID)
	if err := s.client.Set(ctx, key, string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "park pending order")
	}
	return nil
}

func (s *RedisPendingStore) Get(ctx context.Context, orderID string) (PendingOrder, error) {
	raw, err := s.client.Get(ctx, s.client.PendingOrderKey(orderID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return PendingOrder{}, pkgerrors.New(pkgerrors.CodeNotFound, "pending order not found or expired")
		}
		return PendingOrder{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pending order")
	}

	var pending PendingOrder
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return PendingOrder{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode pending order")
	}
	return pending, nil
}

func (s *RedisPendingStore) Delete(ctx context.Context, orderID string) error {
	if err := s.client.Del(ctx, s.client.PendingOrderKey(orderID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete pending order")
	}
	return nil
}
