package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps JSON blobs in memory so values round-trip like they do in Redis.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string, value any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, value)
}

func (m *memStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recorder struct {
	mu       sync.Mutex
	outcomes []cache.Outcome
}

func (r *recorder) observe(_ string, o cache.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func setupQueryCache(t *testing.T) (*cache.QueryCache, *memStore, *clock, *recorder) {
	t.Helper()

	store := newMemStore()
	clk := &clock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	cfg := &config.CacheConfig{StaleTime: time.Minute, GCTime: 10 * time.Minute}

	qc := cache.NewQueryCache(store, cfg, cache.WithClock(clk.Now), cache.WithObserver(rec.observe))

	return qc, store, clk, rec
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Miss Then Fresh Hit", func(t *testing.T) {
		// Arrange
		qc, store, _, rec := setupQueryCache(t)
		var calls atomic.Int32
		fetch := func(context.Context) ([]string, error) {
			calls.Add(1)
			return []string{"Soups", "Grills"}, nil
		}

		// Act
		first, err1 := cache.Fetch(ctx, qc, "categories", "", fetch)
		second, err2 := cache.Fetch(ctx, qc, "categories", "", fetch)

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, []cache.Outcome{cache.OutcomeMiss, cache.OutcomeFresh}, rec.outcomes)
		assert.Equal(t, 10*time.Minute, store.ttls["query:categories:"])
	})

	t.Run("Success - Stale Entry Served And Refetched", func(t *testing.T) {
		// Arrange
		qc, _, clk, rec := setupQueryCache(t)
		version := "v1"
		fetch := func(context.Context) (string, error) { return version, nil }

		_, err := cache.Fetch(ctx, qc, "products", "page=1", fetch)
		require.NoError(t, err)

		clk.Advance(2 * time.Minute)
		version = "v2"

		// Act
		stale, err := cache.Fetch(ctx, qc, "products", "page=1", fetch)
		qc.Wait()
		refreshed, err2 := cache.Fetch(ctx, qc, "products", "page=1", fetch)

		// Assert
		require.NoError(t, err)
		require.NoError(t, err2)
		assert.Equal(t, "v1", stale)
		assert.Equal(t, "v2", refreshed)
		assert.Equal(t, []cache.Outcome{cache.OutcomeMiss, cache.OutcomeStale, cache.OutcomeFresh}, rec.outcomes)
	})

	t.Run("Success - Stale Entry Survives Upstream Failure", func(t *testing.T) {
		qc, _, clk, _ := setupQueryCache(t)
		_, err := cache.Fetch(ctx, qc, "businesses", "city=Lagos", func(context.Context) (int, error) { return 7, nil })
		require.NoError(t, err)

		clk.Advance(5 * time.Minute)
		failing := func(context.Context) (int, error) { return 0, errors.New("upstream down") }

		v1, err1 := cache.Fetch(ctx, qc, "businesses", "city=Lagos", failing)
		qc.Wait()
		v2, err2 := cache.Fetch(ctx, qc, "businesses", "city=Lagos", failing)
		qc.Wait()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, 7, v1)
		assert.Equal(t, 7, v2)
	})

	t.Run("Failure - Miss With Upstream Error", func(t *testing.T) {
		qc, store, _, _ := setupQueryCache(t)
		upstreamErr := errors.New("502")

		_, err := cache.Fetch(ctx, qc, "products", "page=9", func(context.Context) (string, error) { return "", upstreamErr })

		assert.ErrorIs(t, err, upstreamErr)
		assert.Empty(t, store.data)
	})

	t.Run("Success - Store Read Error Falls Through To Fetch", func(t *testing.T) {
		qc, store, _, rec := setupQueryCache(t)
		store.getErr = errors.New("redis down")

		v, err := cache.Fetch(ctx, qc, "categories", "", func(context.Context) (string, error) { return "ok", nil })

		require.NoError(t, err)
		assert.Equal(t, "ok", v)
		assert.Equal(t, []cache.Outcome{cache.OutcomeMiss}, rec.outcomes)
	})

	t.Run("Success - Concurrent Misses Share One Fetch", func(t *testing.T) {
		// Arrange
		qc, _, _, _ := setupQueryCache(t)
		var calls atomic.Int32
		release := make(chan struct{})
		fetch := func(context.Context) (string, error) {
			calls.Add(1)
			<-release
			return "menu", nil
		}

		// Act
		var wg sync.WaitGroup
		results := make([]string, 5)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = cache.Fetch(ctx, qc, "products", "page=1", fetch)
			}(i)
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		// Assert
		assert.LessOrEqual(t, calls.Load(), int32(5))
		assert.GreaterOrEqual(t, calls.Load(), int32(1))
		for _, r := range results {
			assert.Equal(t, "menu", r)
		}
	})

	t.Run("Success - Cancelled First Caller Does Not Fail The Others", func(t *testing.T) {
		// Arrange
		qc, store, _, _ := setupQueryCache(t)
		started := make(chan struct{})
		release := make(chan struct{})
		var calls atomic.Int32
		fetch := func(fetchCtx context.Context) (string, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			select {
			case <-release:
				return "menu", nil
			case <-fetchCtx.Done():
				return "", fetchCtx.Err()
			}
		}

		firstCtx, cancelFirst := context.WithCancel(ctx)
		firstErr := make(chan error, 1)
		go func() {
			_, err := cache.Fetch(firstCtx, qc, "products", "page=1", fetch)
			firstErr <- err
		}()
		<-started

		type result struct {
			value string
			err   error
		}
		second := make(chan result, 1)
		go func() {
			v, err := cache.Fetch(ctx, qc, "products", "page=1", fetch)
			second <- result{v, err}
		}()
		time.Sleep(50 * time.Millisecond)

		// Act
		cancelFirst()
		err1 := <-firstErr
		close(release)
		res := <-second
		qc.Wait()

		// Assert
		assert.ErrorIs(t, err1, context.Canceled)
		require.NoError(t, res.err)
		assert.Equal(t, "menu", res.value)
		assert.Equal(t, int32(1), calls.Load())
		assert.Contains(t, store.data, "query:products:page=1")
	})

	t.Run("Success - Invalidate Forces Refetch", func(t *testing.T) {
		qc, _, _, rec := setupQueryCache(t)
		fetch := func(context.Context) (string, error) { return "x", nil }

		_, _ = cache.Fetch(ctx, qc, "categories", "", fetch)
		require.NoError(t, qc.Invalidate(ctx, "categories", ""))
		_, _ = cache.Fetch(ctx, qc, "categories", "", fetch)

		assert.Equal(t, []cache.Outcome{cache.OutcomeMiss, cache.OutcomeMiss}, rec.outcomes)
	})
}
