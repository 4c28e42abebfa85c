package orders

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
)

// Processor accepts finalized order submissions.
type Processor interface {
	SubmitOrder(ctx context.Context, payload Payload) (Receipt, error)
}

// MockProcessor simulates an upstream order management system. It assigns
// order and tracking identifiers and acknowledges after a configurable
// latency, which is how the storefront behaves without a real OMS.
type MockProcessor struct {
	logg    *logger.Logger
	latency time.Duration
	now     func() time.Time
}

// MockProcessorOption configures a MockProcessor.
type MockProcessorOption func(*MockProcessor)

// WithProcessorClock overrides the clock, for tests.
func WithProcessorClock(now func() time.Time) MockProcessorOption {
	return func(p *MockProcessor) { p.now = now }
}

// WithProcessorLatency overrides the simulated acknowledgement latency.
func WithProcessorLatency(d time.Duration) MockProcessorOption {
	return func(p *MockProcessor) { p.latency = d }
}

func NewMockProcessor(logg *logger.Logger, opts ...MockProcessorOption) *MockProcessor {
	p := &MockProcessor{
		logg:    logg,
		latency: time.Second,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SubmitOrder records the order and returns its receipt. The estimated
// delivery from the payload is carried through when set, otherwise the
// processor falls back to a week out.
func (p *MockProcessor) SubmitOrder(ctx context.Context, payload Payload) (Receipt, error) {
	if len(payload.Items) == 0 {
		return Receipt{}, pkgerrors.New(pkgerrors.CodeValidation, "order has no items")
	}

	select {
	case <-time.After(p.latency):
	case <-ctx.Done():
		return Receipt{}, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "order submission interrupted")
	}

	now := p.now()
	receipt := Receipt{
		OrderID:           fmt.Sprintf("ORD-%d", now.UnixMilli()),
		TrackingNumber:    fmt.Sprintf("TRK%d", now.UnixMilli()),
		EstimatedDelivery: payload.EstimatedDelivery,
	}
	if receipt.EstimatedDelivery.IsZero() {
		receipt.EstimatedDelivery = now.AddDate(0, 0, 7)
	}

	if p.logg != nil {
		ctx = p.logg.WithFields(ctx, map[string]any{
			"order_id":    receipt.OrderID,
			"total_cents": payload.TotalCents,
			"items":       len(payload.Items),
			"method":      payload.Payment.Method,
		})
		p.logg.Info(ctx, "orders.accepted")
	}
	return receipt, nil
}
