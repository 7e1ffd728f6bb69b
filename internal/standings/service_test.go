package standings

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bolao-backend/internal/cache"

	"github.com/stretchr/testify/require"
)

func newTestService(upstreamURL string, now *time.Time) *Service {
	return &Service{
		Client: NewClient(upstreamURL, "test-key", "test-host"),
		Cache:  cache.NewWithClock[[]byte](FreshnessWindow, func() time.Time { return *now }),
	}
}

func TestStandingsMissThenHit(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Write([]byte(`{"standings":[{"rows":[]}]}`))
	}))
	defer upstream.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(upstream.URL, &now)

	first, tag := svc.Standings("325", "87678")
	require.Equal(t, TagMiss, tag)
	require.Equal(t, int32(1), calls.Load())

	// dentro da janela: mesma resposta, sem nova chamada
	now = now.Add(4 * time.Minute)
	second, tag := svc.Standings("325", "87678")
	require.Equal(t, TagHit, tag)
	require.Equal(t, first, second)
	require.Equal(t, int32(1), calls.Load())
}

func TestStandingsExpiredWindowRefetches(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"fetch":"ok"}`))
	}))
	defer upstream.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(upstream.URL, &now)

	_, tag := svc.Standings("325", "87678")
	require.Equal(t, TagMiss, tag)

	now = now.Add(6 * time.Minute)
	_, tag = svc.Standings("325", "87678")
	require.Equal(t, TagMiss, tag)
	require.Equal(t, int32(2), calls.Load())
}

func TestStandingsStaleOnUpstreamFailure(t *testing.T) {
	var fail atomic.Bool
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"snapshot":"good"}`))
	}))
	defer upstream.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(upstream.URL, &now)

	good, tag := svc.Standings("325", "87678")
	require.Equal(t, TagMiss, tag)

	fail.Store(true)
	now = now.Add(10 * time.Minute)
	stale, tag := svc.Standings("325", "87678")
	require.Equal(t, TagStale, tag)
	require.Equal(t, good, stale)
}

func TestStandingsMockWhenNothingCached(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(upstream.URL, &now)

	payload, tag := svc.Standings("325", "87678")
	require.Equal(t, TagMock, tag)
	require.JSONEq(t, string(FallbackStandings()), string(payload))
}
