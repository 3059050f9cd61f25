package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

var (
	// ErrDeclined means the gateway processed the charge and refused it.
	// The checkout keeps the cart and returns the wizard to the payment step.
	ErrDeclined = errors.New("payment declined")

	// ErrUnknownMethod fails a charge immediately, without gateway latency.
	ErrUnknownMethod = errors.New("unknown payment method")
)

type Receipt struct {
	Ref    string              `json:"ref"`
	Method model.PaymentMethod `json:"method"`
	Amount int64               `json:"amount"`
	PaidAt time.Time           `json:"paid_at"`
}

// Gateway is the payment collaborator: asynchronous, may incur latency,
// may decline. Implementations must be swappable without touching the
// checkout flow.
type Gateway interface {
	Charge(ctx context.Context, method model.PaymentMethod, amount int64) (*Receipt, error)
}
