package orders

import (
	"context"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
)

// OrderStatus is the fulfillment state of a placed order.
type OrderStatus string

const (
	StatusProcessing     OrderStatus = "Processing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// statusProgress maps a fulfillment state to a percentage for progress bars.
var statusProgress = map[OrderStatus]int{
	StatusProcessing:     25,
	StatusShipped:        60,
	StatusOutForDelivery: 85,
	StatusDelivered:      100,
}

// Progress returns the completion percentage for the status, 0 if unknown.
func (s OrderStatus) Progress() int {
	return statusProgress[s]
}

// Order is a placed order as it appears in the customer's history.
type Order struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"`
	Status         OrderStatus `json:"status"`
	TotalCents     int64       `json:"total_cents"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	Items          []LineItem  `json:"items"`
}

// TimelineEntry is one milestone in a shipment's journey.
type TimelineEntry struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}

// TrackingInfo is the full tracking view for a shipment.
type TrackingInfo struct {
	OrderID  string          `json:"order_id"`
	Status   OrderStatus     `json:"status"`
	Progress int             `json:"progress"`
	Timeline []TimelineEntry `json:"timeline"`
}

// HistoryService serves placed orders and shipment tracking. Orders created
// through the processor in this deployment are not persisted, so history is
// backed by seeded records the same way the catalog is.
type HistoryService struct {
	orders []Order
}

func NewHistoryService() *HistoryService {
	return &HistoryService{orders: seedOrders()}
}

// ListOrders returns the customer's order history, newest first.
func (s *HistoryService) ListOrders(ctx context.Context) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order history lookup interrupted")
	}
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// Track resolves a tracking number to its shipment progress and timeline.
func (s *HistoryService) Track(ctx context.Context, trackingNumber string) (TrackingInfo, error) {
	if err := ctx.Err(); err != nil {
		return TrackingInfo{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "tracking lookup interrupted")
	}
	if trackingNumber == "" {
		return TrackingInfo{}, pkgerrors.New(pkgerrors.CodeValidation, "tracking number is required")
	}

	for _, order := range s.orders {
		if order.TrackingNumber != trackingNumber {
			continue
		}
		return TrackingInfo{
			OrderID:  order.ID,
			Status:   order.Status,
			Progress: order.Status.Progress(),
			Timeline: buildTimeline(order.Status),
		}, nil
	}
	return TrackingInfo{}, pkgerrors.New(pkgerrors.CodeNotFound, "tracking number not found")
}

// buildTimeline renders the five fixed shipment milestones, marking each as
// completed once the order has moved past it.
func buildTimeline(status OrderStatus) []TimelineEntry {
	shippedOrLater := status == StatusShipped || status == StatusOutForDelivery || status == StatusDelivered
	outOrLater := status == StatusOutForDelivery || status == StatusDelivered

	return []TimelineEntry{
		{Date: "2025-10-18", Status: "Order Placed", Completed: true},
		{Date: "2025-10-19", Status: "Processing", Completed: status != StatusProcessing},
		{Date: "2025-10-20", Status: "Shipped", Completed: shippedOrLater},
		{Date: "2025-10-22", Status: "Out for Delivery", Completed: outOrLater},
		{Date: "2025-10-23", Status: "Delivered", Completed: status == StatusDelivered},
	}
}

func seedOrders() []Order {
	return []Order{
		{
			ID:             "ORD-2025-001",
			Date:           "2025-10-18",
			Status:         StatusDelivered,
			TotalCents:     34998,
			TrackingNumber: "TRK123456789",
			Items: []LineItem{
				{ProductID: 1, Name: "Premium Wireless Headphones", Quantity: 1, UnitPriceCents: 29999},
				{ProductID: 5, Name: "Insulated Water Bottle", Quantity: 1, UnitPriceCents: 3499},
			},
		},
		{
			ID:             "ORD-2025-002",
			Date:           "2025-10-15",
			Status:         StatusShipped,
			TotalCents:     19999,
			TrackingNumber: "TRK987654321",
			Items: []LineItem{
				{ProductID: 2, Name: "Smart Fitness Watch", Quantity: 1, UnitPriceCents: 19999},
			},
		},
		{
			ID:         "ORD-2025-003",
			Date:       "2025-10-12",
			Status:     StatusProcessing,
			TotalCents: 12498,
			Items: []LineItem{
				{ProductID: 3, Name: "Minimalist Leather Wallet", Quantity: 1, UnitPriceCents: 4999},
				{ProductID: 6, Name: "Wireless Charging Pad", Quantity: 2, UnitPriceCents: 3999},
			},
		},
	}
}
