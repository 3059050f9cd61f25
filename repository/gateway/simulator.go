package gateway

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

// Per-method gateway latency and success probability. COD never declines.
var (
	simDelay = map[model.PaymentMethod]time.Duration{
		model.PayTransfer: 2000 * time.Millisecond,
		model.PayEwallet:  1500 * time.Millisecond,
		model.PayCOD:      1000 * time.Millisecond,
	}
	simSuccessRate = map[model.PaymentMethod]float64{
		model.PayTransfer: 0.90,
		model.PayEwallet:  0.95,
		model.PayCOD:      1.0,
	}
)

// Simulator stands in for a real payment gateway. Sleep and Roll are
// overridable so tests run instantly and deterministically.
type Simulator struct {
	Sleep func(ctx context.Context, d time.Duration) error
	Roll  func() float64
}

func NewSimulator() *Simulator {
	return &Simulator{
		Sleep: sleep,
		Roll:  rand.Float64,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Simulator) Charge(ctx context.Context, method model.PaymentMethod, amount int64) (*Receipt, error) {
	delay, ok := simDelay[method]
	if !ok {
		return nil, ErrUnknownMethod
	}
	if err := s.Sleep(ctx, delay); err != nil {
		return nil, err
	}
	if s.Roll() >= simSuccessRate[method] {
		return nil, ErrDeclined
	}
	return &Receipt{
		Ref:    uuid.NewString(),
		Method: method,
		Amount: amount,
		PaidAt: time.Now().UTC(),
	}, nil
}
