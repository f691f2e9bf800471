package reporting

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"strconv"
	"time"

	"github.com/shipdeskhq/shipdesk-backend/pkg/logger"
	"github.com/shipdeskhq/shipdesk-backend/pkg/metrics"
	"github.com/shipdeskhq/shipdesk-backend/pkg/redis"
)

// SnapshotCache is the subset of the redis client the cached service uses.
type SnapshotCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ReportKey(parts ...string) string
}

type cachedService struct {
	inner   Service
	cache   SnapshotCache
	logg    *logger.Logger
	metrics *metrics.ReportMetrics
	ttl     time.Duration
}

// NewCachedService wraps a report service with a short-lived snapshot
// cache. Cache failures never fail a request: reads degrade to a rebuild
// and writes are logged and dropped.
func NewCachedService(inner Service, cache SnapshotCache, logg *logger.Logger, m *metrics.ReportMetrics, ttl time.Duration) Service {
	if cache == nil || ttl <= 0 {
		return inner
	}
	return &cachedService{
		inner:   inner,
		cache:   cache,
		logg:    logg,
		metrics: m,
		ttl:     ttl,
	}
}

func (s *cachedService) Overview(ctx context.Context, sel PeriodSelection) (*ReportSnapshot, error) {
	key := s.cache.ReportKey(cacheKeyParts(sel)...)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var snapshot ReportSnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err == nil {
			s.metrics.IncCacheHit()
			return &snapshot, nil
		}
		s.logg.Warn(ctx, "discarding undecodable cached report")
	} else if !stdErrors.Is(err, redis.Nil) {
		s.logg.Warn(ctx, "report cache read failed")
	}
	s.metrics.IncCacheMiss()

	snapshot, err := s.inner.Overview(ctx, sel)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(snapshot); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
			s.logg.Warn(ctx, "report cache write failed")
		}
	}
	return snapshot, nil
}

func cacheKeyParts(sel PeriodSelection) []string {
	parts := []string{"overview", string(sel.Selector)}
	if sel.Month != nil {
		parts = append(parts, "m"+strconv.Itoa(*sel.Month))
	}
	if sel.Year != nil {
		parts = append(parts, "y"+strconv.Itoa(*sel.Year))
	}
	if sel.From != "" {
		parts = append(parts, sel.From)
	}
	if sel.To != "" {
		parts = append(parts, sel.To)
	}
	return parts
}
