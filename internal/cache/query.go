package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/config"
	"golang.org/x/sync/singleflight"
)

// Outcome says how a query was answered.
type Outcome string

const (
	OutcomeFresh Outcome = "fresh"
	OutcomeStale Outcome = "stale"
	OutcomeMiss  Outcome = "miss"
)

// fetchTimeout bounds upstream fetches that no longer belong to one request.
const fetchTimeout = 15 * time.Second

type entry[T any] struct {
	Value     T         `json:"value"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// QueryCache keeps upstream query results in a Cache. A result younger than
// the stale time is served as is. An older one is served while a refetch runs
// in the background, and disappears from the store after the gc time.
type QueryCache struct {
	store     Cache
	staleTime time.Duration
	gcTime    time.Duration
	group     singleflight.Group
	refreshes sync.WaitGroup
	now       func() time.Time
	observe   func(query string, outcome Outcome)
}

type QueryOption func(*QueryCache)

func WithObserver(fn func(query string, outcome Outcome)) QueryOption {
	return func(q *QueryCache) {
		q.observe = fn
	}
}

func WithClock(now func() time.Time) QueryOption {
	return func(q *QueryCache) {
		q.now = now
	}
}

func NewQueryCache(store Cache, cfg *config.CacheConfig, opts ...QueryOption) *QueryCache {
	q := &QueryCache{
		store:     store,
		staleTime: cfg.StaleTime,
		gcTime:    cfg.GCTime,
		now:       time.Now,
		observe:   func(string, Outcome) {},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Wait blocks until background refetches have finished.
func (q *QueryCache) Wait() {
	q.refreshes.Wait()
}

// Fetch answers the query named by query and params from the cache or by
// calling fetch. Concurrent misses for the same key share one fetch.
func Fetch[T any](ctx context.Context, q *QueryCache, query, params string, fetch func(context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)
	key := Key(QueryKeyPrefix, query, params)

	var cached entry[T]
	found, err := q.store.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("Query cache read failed, fetching upstream", slog.String("key", key), slog.Any("error", err))
		found = false
	}

	if found {
		if q.now().Sub(cached.FetchedAt) < q.staleTime {
			q.observe(query, OutcomeFresh)
			return cached.Value, nil
		}

		q.observe(query, OutcomeStale)
		q.revalidate(ctx, key, func(c context.Context) error {
			_, err := load(c, q, key, fetch)
			return err
		})
		return cached.Value, nil
	}

	q.observe(query, OutcomeMiss)
	return load(ctx, q, key, fetch)
}

// load shares one fetch per key between concurrent callers. The shared fetch
// runs detached from any single caller, so a caller that gives up only stops
// waiting for it.
func load[T any](ctx context.Context, q *QueryCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)
	detached := context.WithoutCancel(ctx)

	ch := q.group.DoChan(key, func() (any, error) {
		q.refreshes.Add(1)
		defer q.refreshes.Done()

		fetchCtx, cancel := context.WithTimeout(detached, fetchTimeout)
		defer cancel()

		value, err := fetch(fetchCtx)
		if err != nil {
			return value, err
		}

		if err := q.store.Set(fetchCtx, key, entry[T]{Value: value, FetchedAt: q.now()}, q.gcTime); err != nil {
			logger.Warn("Query cache write failed", slog.String("key", key), slog.Any("error", err))
		}

		return value, nil
	})

	select {
	case res := <-ch:
		value, _ := res.Val.(T)
		return value, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// revalidate refetches in the background, detached from the request.
// Failures leave the stale entry in place.
func (q *QueryCache) revalidate(ctx context.Context, key string, refresh func(context.Context) error) {
	logger := middleware.LoggerFromContext(ctx)
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)

	q.refreshes.Add(1)
	go func() {
		defer q.refreshes.Done()
		defer cancel()

		if err := refresh(bg); err != nil {
			logger.Warn("Background refetch failed, serving stale data", slog.String("key", key), slog.Any("error", err))
		}
	}()
}

func (q *QueryCache) Invalidate(ctx context.Context, query, params string) error {
	return q.store.Delete(ctx, Key(QueryKeyPrefix, query, params))
}
