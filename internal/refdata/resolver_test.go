package refdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

type fakeProvider struct {
	discounts []types.DiscountType
	tracks    []types.TrackDefinition
	ranges    []types.CepRange
	series    []types.Series
	err       error
}

func (f *fakeProvider) ListDiscountTypes(ctx context.Context) ([]types.DiscountType, error) {
	return f.discounts, f.err
}

func (f *fakeProvider) ListTracks(ctx context.Context) ([]types.TrackDefinition, error) {
	return f.tracks, f.err
}

func (f *fakeProvider) ListCepRanges(ctx context.Context) ([]types.CepRange, error) {
	return f.ranges, f.err
}

func (f *fakeProvider) ListSeries(ctx context.Context) ([]types.Series, error) {
	return f.series, f.err
}

func TestResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("nil provider always answers from the static tables", func(t *testing.T) {
		resolver := NewResolver(nil, NewMemoryCache(), nil, time.Minute)

		discounts, provenance := resolver.DiscountTypes(ctx)
		assert.Equal(t, types.ProvenanceStatic, provenance)
		assert.NotEmpty(t, discounts)
	})

	t.Run("miss serves static and a background refresh turns it dynamic", func(t *testing.T) {
		provider := &fakeProvider{
			discounts: []types.DiscountType{
				{ID: "d1", Codigo: "IIR", Categoria: types.CategoriaRegular, PercentualFixo: 12, Ativo: true},
			},
		}
		cache := NewMemoryCache()
		resolver := NewResolver(provider, cache, nil, time.Minute)

		_, provenance := resolver.DiscountTypes(ctx)
		assert.Equal(t, types.ProvenanceStatic, provenance)

		require.Eventually(t, func() bool {
			_, ok := cache.Get(ctx, keyDiscountTypes)
			return ok
		}, time.Second, 5*time.Millisecond)

		discounts, provenance := resolver.DiscountTypes(ctx)
		assert.Equal(t, types.ProvenanceDynamic, provenance)
		require.Len(t, discounts, 1)
		assert.Equal(t, 12.0, discounts[0].PercentualFixo)
	})

	t.Run("provider failure keeps serving static silently", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("connection refused")}
		resolver := NewResolver(provider, NewMemoryCache(), nil, time.Minute)

		for i := 0; i < 3; i++ {
			discounts, provenance := resolver.DiscountTypes(ctx)
			assert.Equal(t, types.ProvenanceStatic, provenance)
			assert.NotEmpty(t, discounts)
		}
	})

	t.Run("empty dynamic table does not replace the static fallback", func(t *testing.T) {
		provider := &fakeProvider{}
		cache := NewMemoryCache()
		resolver := NewResolver(provider, cache, nil, time.Minute)

		resolver.Tracks(ctx)
		time.Sleep(50 * time.Millisecond)

		tracks, provenance := resolver.Tracks(ctx)
		assert.Equal(t, types.ProvenanceStatic, provenance)
		assert.NotEmpty(t, tracks)
	})

	t.Run("corrupted snapshot falls back to static", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, keySeries, "{not json", time.Minute))
		resolver := NewResolver(nil, cache, nil, time.Minute)

		series, provenance := resolver.Series(ctx)
		assert.Equal(t, types.ProvenanceStatic, provenance)
		assert.NotEmpty(t, series)
	})

	t.Run("payment methods are always available", func(t *testing.T) {
		resolver := NewResolver(nil, NewMemoryCache(), nil, time.Minute)
		assert.NotEmpty(t, resolver.PaymentMethods())
	})
}

func TestStaticTables(t *testing.T) {
	t.Run("geographic codes are present and mutually exclusive by category", func(t *testing.T) {
		byCode := make(map[string]types.DiscountType)
		for _, d := range StaticDiscountTypes() {
			byCode[d.Codigo] = d
		}

		require.Contains(t, byCode, types.CodigoCepBaixa)
		require.Contains(t, byCode, types.CodigoCepFora)
		assert.Equal(t, 5.0, byCode[types.CodigoCepBaixa].PercentualFixo)
		assert.Equal(t, 10.0, byCode[types.CodigoCepFora].PercentualFixo)
		assert.Equal(t, types.CategoriaNegociacao, byCode[types.CodigoCepBaixa].Categoria)
	})

	t.Run("tracks cover the three policies", func(t *testing.T) {
		ids := make(map[string]types.TrackDefinition)
		for _, track := range StaticTracks() {
			ids[track.ID] = track
		}

		require.Contains(t, ids, "especial")
		require.Contains(t, ids, "combinado")
		require.Contains(t, ids, "comercial")

		assert.Nil(t, ids["especial"].CapPercentual)
		assert.Equal(t, 25.0, *ids["combinado"].CapPercentual)
		assert.Equal(t, 40.0, *ids["combinado"].CapComSecundario)
		assert.Equal(t, 20.0, *ids["comercial"].CapPercentual)
	})

	t.Run("cep ranges never overlap across categories", func(t *testing.T) {
		ranges := StaticCepRanges()
		for i, a := range ranges {
			assert.LessOrEqual(t, a.Inicio, a.Fim)
			for _, b := range ranges[i+1:] {
				overlap := a.Inicio <= b.Fim && b.Inicio <= a.Fim
				assert.False(t, overlap, "%s overlaps %s", a.Descricao, b.Descricao)
			}
		}
	})
}
