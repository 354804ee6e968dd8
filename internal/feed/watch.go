package feed

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"faqflip/internal/domain"
)

// Watch fetches from p every interval until ctx is done. The first result
// that differs from current is handed to changed and the watch ends. Fetch
// errors are logged and retried on the next tick.
func Watch(ctx context.Context, p Provider, current []domain.Entry, interval time.Duration, log *zap.Logger, changed func([]domain.Entry)) {
	if interval <= 0 {
		interval = DefaultRevalidate
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("feed.watch")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		entries, err := p.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("revalidation failed", zap.String("source", p.Source()), zap.Error(err))
			continue
		}
		if !SameEntries(current, entries) {
			log.Info("feed changed", zap.String("source", p.Source()), zap.Int("entries", len(entries)))
			changed(entries)
			return
		}
	}
}

// SameEntries reports whether two collections hold the same entries in the
// same order
func SameEntries(a, b []domain.Entry) bool {
	return slices.EqualFunc(a, b, func(x, y domain.Entry) bool {
		return x.ID == y.ID && x.Question == y.Question && x.Answer == y.Answer &&
			slices.Equal(x.ImageURLs, y.ImageURLs)
	})
}
