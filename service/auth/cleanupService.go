package authsvc

import (
	"context"
)

// Cleaner drops a reset token that can never be redeemed again.
type Cleaner interface {
	PurgeStaleReset(ctx context.Context) (bool, error)
}

type cleaner struct {
	r     Repo
	clock Clock
}

func NewCleaner(r Repo, clock Clock) Cleaner { return &cleaner{r: r, clock: clock} }

func (c *cleaner) PurgeStaleReset(ctx context.Context) (bool, error) {
	t, err := c.r.ResetToken(ctx)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}
	if !t.Used && c.clock.Now().Before(t.ExpiresAt) {
		return false, nil
	}
	if err := c.r.RemoveResetToken(ctx); err != nil {
		return false, err
	}
	return true, nil
}
