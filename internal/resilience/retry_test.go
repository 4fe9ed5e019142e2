package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() Policy {
	return Policy{Attempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := Do(context.Background(), fastPolicy(), "test", func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientThenSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := Do(context.Background(), fastPolicy(), "test", func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, MarkTransient(eris.New("apollo: status 503"), 503)
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentErrorStopsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := Do(context.Background(), fastPolicy(), "test", func(context.Context) (int, error) {
		calls++
		return 0, eris.New("apollo: status 401")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := Do(context.Background(), fastPolicy(), "test", func(context.Context) (int, error) {
		calls++
		return 0, MarkTransient(eris.New("still down"), 502)
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "still down")
}

func TestDo_ContextCancelStopsRetries(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Do(ctx, Policy{Attempts: 5, BaseDelay: 50 * time.Millisecond}, "test", func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, MarkTransient(eris.New("flaky"), 500)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_CustomShouldRetry(t *testing.T) {
	t.Parallel()

	p := fastPolicy()
	p.ShouldRetry = func(error) bool { return true }

	calls := 0
	_, err := Do(context.Background(), p, "test", func(context.Context) (int, error) {
		calls++
		return 0, eris.New("not marked transient")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(eris.New("bad request")))
	assert.True(t, IsTransient(MarkTransient(eris.New("overloaded"), 429)))
	assert.True(t, IsTransient(eris.Wrap(MarkTransient(eris.New("overloaded"), 429), "outer")))
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for _, code := range []int{408, 429, 500, 502, 503, 504} {
		assert.True(t, RetryableStatus(code), "status %d", code)
	}
	for _, code := range []int{200, 201, 400, 401, 403, 404, 422} {
		assert.False(t, RetryableStatus(code), "status %d", code)
	}
}

func TestDelay_CappedAndNonNegative(t *testing.T) {
	t.Parallel()

	p := Policy{
		Attempts:   5,
		BaseDelay:  time.Second,
		MaxDelay:   2 * time.Second,
		Multiplier: 10,
	}.withDefaults()

	for attempt := 0; attempt < 5; attempt++ {
		d := p.delay(attempt)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, 2*time.Second+2*time.Second/2)
	}
}
