package dedup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpalomo/diaria/pkg/dedup/mocks"
	"github.com/vpalomo/diaria/pkg/domain"
)

func storeWith(titles ...string) *mocks.TitleStoreMock {
	return &mocks.TitleStoreMock{
		RecentTitlesFunc: func(ctx context.Context, kind domain.ContentType, window time.Duration) ([]string, error) {
			return titles, nil
		},
	}
}

func TestGuard_IsDuplicate(t *testing.T) {
	tests := []struct {
		name      string
		published []string
		title     string
		want      bool
	}{
		{
			name:      "exact repeat",
			published: []string{"El Gobierno aprueba los presupuestos"},
			title:     "El Gobierno aprueba los presupuestos",
			want:      true,
		},
		{
			name:      "punctuation and case ignored",
			published: []string{"Episodio 42: La crisis, explicada"},
			title:     "episodio 42 la crisis explicada!",
			want:      true,
		},
		{
			name:      "one extra word is not enough difference",
			published: []string{"el gobierno aprueba los nuevos presupuestos generales del estado hoy mismo"},
			title:     "el gobierno aprueba los nuevos presupuestos generales del estado hoy",
			want:      true,
		},
		{
			name:      "suffix changes the story",
			published: []string{"Episodio 42: La crisis"},
			title:     "Episodio 42: La crisis económica",
			want:      false,
		},
		{
			name:      "different titles pass",
			published: []string{"El Gobierno aprueba los presupuestos"},
			title:     "La liga vuelve este fin de semana",
			want:      false,
		},
		{
			name:      "empty window passes everything",
			published: nil,
			title:     "cualquier título",
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := New(storeWith(tt.published...), 0.90, 7*24*time.Hour)
			got := guard.IsDuplicate(context.Background(), domain.TypeArticle, tt.title)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuard_FailsOpen(t *testing.T) {
	store := &mocks.TitleStoreMock{
		RecentTitlesFunc: func(ctx context.Context, kind domain.ContentType, window time.Duration) ([]string, error) {
			return nil, errors.New("store unreachable")
		},
	}
	guard := New(store, 0.90, 7*24*time.Hour)

	assert.False(t, guard.IsDuplicate(context.Background(), domain.TypeArticle, "El Gobierno aprueba los presupuestos"),
		"store failure must allow publication")
	assert.Len(t, store.RecentTitlesCalls(), 1)
}

func TestGuard_PassesKindAndWindow(t *testing.T) {
	store := storeWith()
	guard := New(store, 0.90, 48*time.Hour)

	guard.IsDuplicate(context.Background(), domain.TypePodcast, "Episodio 7")

	calls := store.RecentTitlesCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.TypePodcast, calls[0].Kind)
	assert.Equal(t, 48*time.Hour, calls[0].Window)
}

func TestJaccard(t *testing.T) {
	sim := func(a, b string) float64 { return jaccard(normalize(a), normalize(b)) }

	assert.InDelta(t, 1.0, sim("hola mundo", "Hola, mundo!"), 0.001)
	assert.InDelta(t, 0.8, sim("episodio 42 la crisis", "episodio 42 la crisis económica"), 0.001)
	assert.InDelta(t, 0.0, sim("uno dos tres", "cuatro cinco seis"), 0.001)
	assert.InDelta(t, 1.0, sim("", ""), 0.001, "empty titles are identical by convention")
	assert.InDelta(t, 0.0, sim("algo", ""), 0.001)
}

func TestNormalize(t *testing.T) {
	tokens := normalize("¡Episodio 42: La CRISIS, explicada!")
	want := map[string]struct{}{
		"episodio": {}, "42": {}, "la": {}, "crisis": {}, "explicada": {},
	}
	assert.Equal(t, want, tokens)

	t.Run("repeated words collapse", func(t *testing.T) {
		assert.Len(t, normalize("la la la tierra la"), 2)
	})
}
