package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

func instantSim(roll float64) (*Simulator, *[]time.Duration) {
	var slept []time.Duration
	s := NewSimulator()
	s.Sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	s.Roll = func() float64 { return roll }
	return s, &slept
}

func TestCharge_Success(t *testing.T) {
	ctx := context.Background()
	s, _ := instantSim(0.0)

	r, err := s.Charge(ctx, model.PayTransfer, 104500)
	require.NoError(t, err)
	require.NotEmpty(t, r.Ref)
	require.Equal(t, model.PayTransfer, r.Method)
	require.Equal(t, int64(104500), r.Amount)
}

func TestCharge_MethodDelays(t *testing.T) {
	ctx := context.Background()

	for method, want := range map[model.PaymentMethod]time.Duration{
		model.PayTransfer: 2000 * time.Millisecond,
		model.PayEwallet:  1500 * time.Millisecond,
		model.PayCOD:      1000 * time.Millisecond,
	} {
		s, slept := instantSim(0.0)
		_, err := s.Charge(ctx, method, 1000)
		require.NoError(t, err)
		require.Equal(t, []time.Duration{want}, *slept)
	}
}

func TestCharge_TransferDeclinesAtThreshold(t *testing.T) {
	ctx := context.Background()

	s, _ := instantSim(0.90)
	_, err := s.Charge(ctx, model.PayTransfer, 1000)
	require.ErrorIs(t, err, ErrDeclined)

	s, _ = instantSim(0.89)
	_, err = s.Charge(ctx, model.PayTransfer, 1000)
	require.NoError(t, err)
}

func TestCharge_CODNeverDeclines(t *testing.T) {
	ctx := context.Background()

	for _, roll := range []float64{0.0, 0.5, 0.999999} {
		s, _ := instantSim(roll)
		_, err := s.Charge(ctx, model.PayCOD, 1000)
		require.NoError(t, err)
	}
}

func TestCharge_UnknownMethodFailsImmediately(t *testing.T) {
	ctx := context.Background()
	s, slept := instantSim(0.0)

	_, err := s.Charge(ctx, model.PaymentMethod("pulsa"), 1000)
	require.ErrorIs(t, err, ErrUnknownMethod)
	require.Empty(t, *slept)
}

func TestCharge_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSimulator()
	s.Roll = func() float64 { return 0.0 }

	_, err := s.Charge(ctx, model.PayTransfer, 1000)
	require.ErrorIs(t, err, context.Canceled)
}
