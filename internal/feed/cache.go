package feed

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"faqflip/internal/domain"
)

// DefaultRevalidate is how long a fetched collection is served before the
// next Fetch goes back to the source
const DefaultRevalidate = 60 * time.Second

// CachedProvider serves the last fetched collection until it is older than
// the revalidation interval. If revalidation fails and an older copy
// exists, the older copy is served.
type CachedProvider struct {
	next  Provider
	cache *expirable.LRU[string, []domain.Entry]
	log   *zap.Logger

	mu    sync.Mutex
	stale []domain.Entry
}

// NewCachedProvider wraps next. ttl <= 0 uses DefaultRevalidate.
func NewCachedProvider(next Provider, ttl time.Duration, log *zap.Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultRevalidate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedProvider{
		next:  next,
		cache: expirable.NewLRU[string, []domain.Entry](1, nil, ttl),
		log:   log.Named("feed.cache"),
	}
}

func (p *CachedProvider) Source() string {
	return p.next.Source()
}

func (p *CachedProvider) Fetch(ctx context.Context) ([]domain.Entry, error) {
	key := p.next.Source()
	if entries, ok := p.cache.Get(key); ok {
		return entries, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// another caller may have refreshed while we waited
	if entries, ok := p.cache.Get(key); ok {
		return entries, nil
	}

	entries, err := p.next.Fetch(ctx)
	if err != nil {
		if p.stale != nil {
			p.log.Warn("revalidation failed, serving stale FAQ data", zap.String("source", key), zap.Error(err))
			return p.stale, nil
		}
		return nil, err
	}

	p.cache.Add(key, entries)
	p.stale = entries
	return entries, nil
}

// Invalidate forces the next Fetch to revalidate
func (p *CachedProvider) Invalidate() {
	p.cache.Purge()
}
