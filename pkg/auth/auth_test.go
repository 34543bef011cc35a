package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSecret_Verify(t *testing.T) {
	s := NewAdminSecret("hunter2")

	assert.True(t, s.Verify("hunter2"))
	assert.False(t, s.Verify("hunter3"))
	assert.False(t, s.Verify(""))

	s.Set("rotated")
	assert.False(t, s.Verify("hunter2"))
	assert.True(t, s.Verify("rotated"))
}

func TestAdminSecret_EmptySecretRejectsEverything(t *testing.T) {
	s := NewAdminSecret("")

	assert.False(t, s.Verify(""))
	assert.False(t, s.Verify("anything"))
}

func TestSlidingWindowLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewSlidingWindowLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "ip:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "ip:1.2.3.4")
	assert.False(t, ok, "third request inside the window is rejected")

	ok, _ = l.Allow(ctx, "ip:5.6.7.8")
	assert.True(t, ok, "other keys are independent")

	now = now.Add(61 * time.Second)
	ok, _ = l.Allow(ctx, "ip:1.2.3.4")
	assert.True(t, ok, "window slid past the earlier requests")
}

func TestSlidingWindowLimiter_DropsIdleKeys(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewSlidingWindowLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	for _, ip := range []string{"ip:1", "ip:2", "ip:3"} {
		ok, err := l.Allow(ctx, ip)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, 3, l.tracked())

	now = now.Add(2 * time.Minute)
	ok, err := l.Allow(ctx, "ip:4")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, l.tracked(), "idle clients are forgotten once their window expires")
}
