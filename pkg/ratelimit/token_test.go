package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLimiter_Disabled(t *testing.T) {
	l := NewTokenLimiter(0)
	require.NoError(t, l.Wait(context.Background(), 500))
}

func TestTokenLimiter_ClampsLargeRequests(t *testing.T) {
	l := NewTokenLimiter(50)
	require.NoError(t, l.Wait(context.Background(), 101))
	assert.Equal(t, 0, l.GetRemaining())
}

func TestTokenLimiter_WaitsForRefill(t *testing.T) {
	now := time.Unix(0, 0)
	l := newTokenLimiter(10, time.Minute, func() time.Time { return now })

	require.NoError(t, l.Wait(context.Background(), 8))
	assert.Equal(t, 2, l.GetRemaining())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Wait(ctx, 5), context.DeadlineExceeded)

	now = now.Add(time.Minute)
	require.NoError(t, l.Wait(context.Background(), 5))
	assert.Equal(t, 5, l.GetRemaining())
}
