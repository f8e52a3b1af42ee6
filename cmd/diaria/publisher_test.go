package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpalomo/diaria/pkg/catalog"
	"github.com/vpalomo/diaria/pkg/domain"
)

type fakeStore struct {
	published []domain.ClassifiedItem
	url       string
}

func (f *fakeStore) Publish(_ context.Context, item domain.ClassifiedItem) (string, error) {
	f.published = append(f.published, item)
	return f.url, nil
}

type fakeItunes struct {
	gotShow     string
	gotFallback string
	link        string
}

func (f *fakeItunes) EpisodeLink(_ context.Context, showName, _, fallback string) string {
	f.gotShow = showName
	f.gotFallback = fallback
	if f.link != "" {
		return f.link
	}
	return fallback
}

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]domain.Source{{ID: "elpais", Kind: domain.TypeArticle}},
		[]domain.Source{{
			ID:           "hoy-hablamos",
			Name:         "Hoy Hablamos",
			Kind:         domain.TypePodcast,
			LinkTemplate: "https://podcasts.apple.com/show/hoy-hablamos",
		}},
	)
}

func TestPublisher_PodcastLinkEnrichment(t *testing.T) {
	store := &fakeStore{url: "https://notion.example/p1"}
	search := &fakeItunes{link: "https://podcasts.apple.com/ep42"}
	p := &publisher{store: store, itunes: search, catalog: testCatalog()}

	item := domain.ClassifiedItem{
		Candidate: domain.Candidate{
			SourceID: "hoy-hablamos",
			Kind:     domain.TypePodcast,
			Title:    "Ep. 42: La cocina",
			Link:     "https://hoyhablamos.com/ep42",
		},
	}

	url, err := p.Publish(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, "https://notion.example/p1", url)

	assert.Equal(t, "Hoy Hablamos", search.gotShow, "display name used for the lookup")
	require.Len(t, store.published, 1)
	assert.Equal(t, "https://podcasts.apple.com/ep42", store.published[0].Link)
}

func TestPublisher_LinkTemplateFallback(t *testing.T) {
	store := &fakeStore{url: "https://notion.example/p2"}
	search := &fakeItunes{}
	p := &publisher{store: store, itunes: search, catalog: testCatalog()}

	item := domain.ClassifiedItem{
		Candidate: domain.Candidate{
			SourceID: "hoy-hablamos",
			Kind:     domain.TypePodcast,
			Title:    "Ep. 43",
			Link:     "", // feed entry without a per-episode link
		},
	}

	_, err := p.Publish(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, "https://podcasts.apple.com/show/hoy-hablamos", search.gotFallback)
	require.Len(t, store.published, 1)
	assert.Equal(t, "https://podcasts.apple.com/show/hoy-hablamos", store.published[0].Link)
}

func TestPublisher_ArticleSkipsEnrichment(t *testing.T) {
	store := &fakeStore{url: "https://notion.example/p3"}
	search := &fakeItunes{link: "https://should-not-be-used"}
	p := &publisher{store: store, itunes: search, catalog: testCatalog()}

	item := domain.ClassifiedItem{
		Candidate: domain.Candidate{
			SourceID: "elpais",
			Kind:     domain.TypeArticle,
			Title:    "Las medidas",
			Link:     "https://elpais.com/x",
		},
	}

	_, err := p.Publish(context.Background(), item)
	require.NoError(t, err)
	assert.Empty(t, search.gotShow, "articles never hit the episode search")
	require.Len(t, store.published, 1)
	assert.Equal(t, "https://elpais.com/x", store.published[0].Link)
}

func TestPublisher_DryRun(t *testing.T) {
	store := &fakeStore{url: "https://notion.example/p4"}
	p := &publisher{store: store, itunes: &fakeItunes{}, catalog: testCatalog(), dryRun: true}

	url, err := p.Publish(context.Background(), domain.ClassifiedItem{
		Candidate: domain.Candidate{SourceID: "elpais", Kind: domain.TypeArticle, Title: "Noticia"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dry-run", url)
	assert.Empty(t, store.published, "dry run must not touch the store")
}

func TestRunKinds(t *testing.T) {
	kinds, err := runKinds("article")
	require.NoError(t, err)
	assert.Equal(t, []domain.ContentType{domain.TypeArticle}, kinds)

	kinds, err = runKinds("all")
	require.NoError(t, err)
	assert.Len(t, kinds, 2)

	_, err = runKinds("video")
	assert.Error(t, err)
}

func TestRunDay(t *testing.T) {
	day, err := runDay("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, 24, day.Day())

	_, err = runDay("24/08/2026")
	assert.Error(t, err)

	day, err = runDay("")
	require.NoError(t, err)
	assert.False(t, day.IsZero())
}
