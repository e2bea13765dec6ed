package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"tecno-eval-service/internal/quiz"
	"golang.org/x/sync/singleflight"
)

// CatalogRepository caches the question set with a TTL to avoid repeated
// store hits. Concurrent cache misses are collapsed with singleflight.
type CatalogRepository struct {
	loader quiz.CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    quiz.Catalog
	hasCache  bool
	expiresAt time.Time
}

func NewCatalogRepository(loader quiz.CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) Catalog(ctx context.Context) (quiz.Catalog, error) {
	now := r.clock()

	r.mu.RLock()
	if r.hasCache && r.expiresAt.After(now) {
		cached := r.cached
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.hasCache && r.expiresAt.After(now) {
			cached := r.cached
			r.mu.RUnlock()
			return cached, nil
		}
		r.mu.RUnlock()

		catalog, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return quiz.Catalog{}, err
		}

		r.mu.Lock()
		r.cached = catalog
		r.hasCache = true
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return quiz.Catalog{}, err
	}
	return result.(quiz.Catalog), nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader serves an in-process question set (the embedded
// default, or fixtures in tests).
type StaticCatalogLoader struct {
	catalog quiz.Catalog
}

func NewStaticCatalogLoader(catalog quiz.Catalog) *StaticCatalogLoader {
	return &StaticCatalogLoader{catalog: catalog}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context) (quiz.Catalog, error) {
	return l.catalog, nil
}
