package cart

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/redis"
)

// Persistence is the key-value collaborator the store snapshots line items to.
type Persistence interface {
	LoadCart(ctx context.Context) ([]LineItem, error)
	SaveCart(ctx context.Context, items []LineItem) error
}

// DefaultCartID keys the single storefront cart snapshot.
const DefaultCartID = "default"

// RedisPersistence stores the cart snapshot as a JSON blob in Redis.
type RedisPersistence struct {
	client *redis.Client
	cartID string
}

func NewRedisPersistence(client *redis.Client, cartID string) (*RedisPersistence, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if cartID == "" {
		cartID = DefaultCartID
	}
	return &RedisPersistence{client: client, cartID: cartID}, nil
}

func (p *RedisPersistence) LoadCart(ctx context.Context) ([]LineItem, error) {
	raw, err := p.client.Get(ctx, p.client.CartKey(p.cartID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cart snapshot")
	}
	return items, nil
}

func (p *RedisPersistence) SaveCart(ctx context.Context, items []LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	if err := p.client.Set(ctx, p.client.CartKey(p.cartID), string(payload), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart snapshot")
	}
	return nil
}
