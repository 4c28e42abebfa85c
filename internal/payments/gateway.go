package payments

import (
	"context"
	"fmt"
	"sync"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/types"
)

// CreatePaymentRequest asks the wallet gateway to open a redirect payment.
type CreatePaymentRequest struct {
	AmountCents int64
	OrderID     string
	Phone       string
	Customer    types.ContactInfo
	RedirectURL string
}

// WalletPayment is the gateway's handle for an opened payment.
type WalletPayment struct {
	PaymentURL    string
	TransactionID string
}

// WalletStatus is the outcome of a status poll for a wallet transaction.
type WalletStatus struct {
	Succeeded   bool
	Code        string
	AmountCents int64
}

// WalletGateway is the redirect payment provider the dispatcher talks to.
type WalletGateway interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (WalletPayment, error)
	CheckStatus(ctx context.Context, transactionID string) (WalletStatus, error)
}

// SimulatedWalletGateway stands in for a real wallet provider. It hands out
// redirect URLs under a configured base and reports every opened transaction
// as paid, which is how the storefront runs without merchant credentials.
type SimulatedWalletGateway struct {
	mu      sync.Mutex
	baseURL string
	opened  map[string]int64
}

func NewSimulatedWalletGateway(baseURL string) *SimulatedWalletGateway {
	return &SimulatedWalletGateway{
		baseURL: baseURL,
		opened:  map[string]int64{},
	}
}

func (g *SimulatedWalletGateway) CreatePayment(ctx context.Context, req CreatePaymentRequest) (WalletPayment, error) {
	if err := ctx.Err(); err != nil {
		return WalletPayment{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "wallet gateway unreachable")
	}
	if req.AmountCents <= 0 {
		return WalletPayment{}, pkgerrors.New(pkgerrors.CodeValidation, "payment amount must be positive")
	}
	if req.OrderID == "" {
		return WalletPayment{}, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	g.mu.Lock()
	g.opened[req.OrderID] = req.AmountCents
	g.mu.Unlock()

	// The order id doubles as the merchant transaction id.
	return WalletPayment{
		PaymentURL:    fmt.Sprintf("%s/wallet/pay/%s", g.baseURL, req.OrderID),
		TransactionID: req.OrderID,
	}, nil
}

func (g *SimulatedWalletGateway) CheckStatus(ctx context.Context, transactionID string) (WalletStatus, error) {
	if err := ctx.Err(); err != nil {
		return WalletStatus{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "wallet gateway unreachable")
	}

	g.mu.Lock()
	amount, ok := g.opened[transactionID]
	g.mu.Unlock()
	if !ok {
		return WalletStatus{}, pkgerrors.New(pkgerrors.CodeNotFound, "unknown wallet transaction")
	}
	return WalletStatus{
		Succeeded:   true,
		Code:        "PAYMENT_SUCCESS",
		AmountCents: amount,
	}, nil
}
