package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpalomo/diaria/pkg/domain"
)

func testCatalog() *Catalog {
	articles := []domain.Source{
		{ID: "veinte-minutos", Kind: domain.TypeArticle, Rank: 0, FeedURL: "https://www.20minutos.es/rss/"},
		{ID: "elpais", Kind: domain.TypeArticle, Rank: 1, FeedURL: "https://feeds.elpais.com/portada"},
		{ID: "elmundo", Kind: domain.TypeArticle, Rank: 2, FeedURL: "https://elmundo.es/rss/portada.xml"},
	}
	podcasts := []domain.Source{
		{ID: "hoy-hablamos", Kind: domain.TypePodcast, Rank: 0, FeedURL: "https://www.hoyhablamos.com/feed/podcast/"},
		{ID: "radio-ambulante", Kind: domain.TypePodcast, Rank: 1, FeedURL: "https://feeds.npr.org/510311/podcast.xml"},
		{ID: "spanishpodcast", Kind: domain.TypePodcast, Rank: 2, FeedURL: "https://feeds.feedburner.com/SpanishPodcast"},
	}
	return New(articles, podcasts)
}

func TestCatalog_Sources(t *testing.T) {
	cat := testCatalog()

	articles := cat.Sources(domain.TypeArticle)
	require.Len(t, articles, 3)
	assert.Equal(t, "veinte-minutos", articles[0].ID)
	assert.Equal(t, "elpais", articles[1].ID)
	assert.Equal(t, "elmundo", articles[2].ID)

	// returned slice is a copy, mutation must not leak back
	articles[0].ID = "mutated"
	assert.Equal(t, "veinte-minutos", cat.Sources(domain.TypeArticle)[0].ID)
}

func TestCatalog_Alternatives(t *testing.T) {
	cat := testCatalog()

	t.Run("excludes current source, keeps order", func(t *testing.T) {
		alts := cat.Alternatives(domain.TypePodcast, "radio-ambulante")
		require.Len(t, alts, 2)
		assert.Equal(t, "hoy-hablamos", alts[0].ID)
		assert.Equal(t, "spanishpodcast", alts[1].ID)
	})

	t.Run("unknown exclude returns all", func(t *testing.T) {
		alts := cat.Alternatives(domain.TypePodcast, "nonexistent")
		assert.Len(t, alts, 3)
	})

	t.Run("first source excluded", func(t *testing.T) {
		alts := cat.Alternatives(domain.TypeArticle, "veinte-minutos")
		require.Len(t, alts, 2)
		assert.Equal(t, "elpais", alts[0].ID)
	})
}

func TestCatalog_Get(t *testing.T) {
	cat := testCatalog()

	src, err := cat.Get(domain.TypeArticle, "elpais")
	require.NoError(t, err)
	assert.Equal(t, 1, src.Rank)

	_, err = cat.Get(domain.TypePodcast, "elpais")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
