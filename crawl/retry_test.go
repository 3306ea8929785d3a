package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/blogdoc/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns the first successful result", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html>ok</html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until a call succeeds", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "recovered", nil
		}

		delays := []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
		html, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, delays)

		require.NoError(t, err)
		assert.Equal(t, "recovered", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		lastErr := errors.New("still down")
		fetch := func(ctx context.Context, url string) (string, error) {
			return "", lastErr
		}

		delays := []time.Duration{time.Millisecond}
		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, delays)

		require.ErrorIs(t, err, lastErr)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("transient")
		}

		delays := []time.Duration{time.Hour}
		_, err := crawl.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, delays)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("down")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
