package refdata

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
	"github.com/iesje/matricula_engine/internal/logger"
)

const (
	keyDiscountTypes = "refdata:tipos_desconto"
	keyTracks        = "refdata:trilhos"
	keyCepRanges     = "refdata:cep_ranges"
	keySeries        = "refdata:series"

	refreshTimeout = 10 * time.Second
)

// Resolver answers reference-data lookups dynamic-first with a static
// fallback. A cached snapshot of the dynamic tables is served as "dynamic";
// on a miss the static table is returned immediately and a background refresh
// repopulates the cache. Lookups never block on the database and never fail.
type Resolver struct {
	provider Provider
	cache    Cache
	log      *logger.Logger
	ttl      time.Duration

	mu       sync.Mutex
	inflight map[string]bool
}

// NewResolver builds a resolver. provider may be nil, in which case every
// lookup answers from the static tables.
func NewResolver(provider Provider, cache Cache, log *logger.Logger, ttl time.Duration) *Resolver {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if log == nil {
		log = &logger.Logger{MinLevel: logger.LevelWarn}
	}
	return &Resolver{
		provider: provider,
		cache:    cache,
		log:      log,
		ttl:      ttl,
		inflight: make(map[string]bool),
	}
}

// DiscountTypes returns the discount catalog and its provenance.
func (r *Resolver) DiscountTypes(ctx context.Context) ([]types.DiscountType, string) {
	return resolve(ctx, r, keyDiscountTypes, r.fetchDiscountTypes, StaticDiscountTypes)
}

// Tracks returns the track catalog and its provenance.
func (r *Resolver) Tracks(ctx context.Context) ([]types.TrackDefinition, string) {
	return resolve(ctx, r, keyTracks, r.fetchTracks, StaticTracks)
}

// CepRanges returns the CEP range table and its provenance.
func (r *Resolver) CepRanges(ctx context.Context) ([]types.CepRange, string) {
	return resolve(ctx, r, keyCepRanges, r.fetchCepRanges, StaticCepRanges)
}

// Series returns the series table and its provenance.
func (r *Resolver) Series(ctx context.Context) ([]types.Series, string) {
	return resolve(ctx, r, keySeries, r.fetchSeries, StaticSeries)
}

// PaymentMethods has no dynamic table; the channel list changes with the
// school's banking contracts, not with admin configuration.
func (r *Resolver) PaymentMethods() []types.PaymentMethod {
	return PaymentMethods()
}

func (r *Resolver) fetchDiscountTypes(ctx context.Context) ([]types.DiscountType, error) {
	return r.provider.ListDiscountTypes(ctx)
}

func (r *Resolver) fetchTracks(ctx context.Context) ([]types.TrackDefinition, error) {
	return r.provider.ListTracks(ctx)
}

func (r *Resolver) fetchCepRanges(ctx context.Context) ([]types.CepRange, error) {
	return r.provider.ListCepRanges(ctx)
}

func (r *Resolver) fetchSeries(ctx context.Context) ([]types.Series, error) {
	return r.provider.ListSeries(ctx)
}

func resolve[T any](ctx context.Context, r *Resolver, key string, fetch func(context.Context) ([]T, error), static func() []T) ([]T, string) {
	if raw, ok := r.cache.Get(ctx, key); ok {
		var values []T
		if err := json.Unmarshal([]byte(raw), &values); err == nil {
			return values, types.ProvenanceDynamic
		}
		r.log.Warn("refdata", "snapshot corrompido para %s, usando fallback estático", key)
	}

	if r.provider != nil {
		r.refreshAsync(key, func(ctx context.Context) (string, int, error) {
			values, err := fetch(ctx)
			if err != nil {
				return "", 0, err
			}
			if len(values) == 0 {
				return "", 0, nil
			}
			raw, err := json.Marshal(values)
			if err != nil {
				return "", 0, err
			}
			return string(raw), len(values), nil
		})
	}
	return static(), types.ProvenanceStatic
}

// refreshAsync repopulates one cache key without blocking the caller. At most
// one refresh per key runs at a time.
func (r *Resolver) refreshAsync(key string, load func(context.Context) (string, int, error)) {
	r.mu.Lock()
	if r.inflight[key] {
		r.mu.Unlock()
		return
	}
	r.inflight[key] = true
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.inflight, key)
			r.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		raw, count, err := load(ctx)
		if err != nil {
			r.log.Warn("refdata", "refresh de %s falhou: %v", key, err)
			return
		}
		if count == 0 {
			r.log.Debug("refdata", "refresh de %s retornou tabela vazia, snapshot não atualizado", key)
			return
		}
		if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
			r.log.Warn("refdata", "gravação do snapshot de %s falhou: %v", key, err)
			return
		}
		r.log.Debug("refdata", "snapshot de %s atualizado (%d entradas)", key, count)
	}()
}
