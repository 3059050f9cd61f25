package authsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

func TestPurgeStaleReset_NoToken(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	c := NewCleaner(m, &fakeClock{t: now})

	purged, err := c.PurgeStaleReset(ctx)
	require.NoError(t, err)
	require.False(t, purged)
}

func TestPurgeStaleReset_LiveTokenSurvives(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	m.token = &model.ResetToken{Token: "t-1", ExpiresAt: now.Add(10 * time.Minute)}
	c := NewCleaner(m, &fakeClock{t: now})

	purged, err := c.PurgeStaleReset(ctx)
	require.NoError(t, err)
	require.False(t, purged)
	require.NotNil(t, m.token)
}

func TestPurgeStaleReset_ExpiredTokenDropped(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	m.token = &model.ResetToken{Token: "t-1", ExpiresAt: now.Add(-time.Minute)}
	c := NewCleaner(m, &fakeClock{t: now})

	purged, err := c.PurgeStaleReset(ctx)
	require.NoError(t, err)
	require.True(t, purged)
	require.Nil(t, m.token)
}

func TestPurgeStaleReset_UsedTokenDropped(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	m.token = &model.ResetToken{Token: "t-1", ExpiresAt: now.Add(10 * time.Minute), Used: true}
	c := NewCleaner(m, &fakeClock{t: now})

	purged, err := c.PurgeStaleReset(ctx)
	require.NoError(t, err)
	require.True(t, purged)
	require.Nil(t, m.token)
}
