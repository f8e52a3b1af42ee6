package main

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/vpalomo/diaria/pkg/catalog"
	"github.com/vpalomo/diaria/pkg/domain"
)

// pageCreator persists an item in the destination store
type pageCreator interface {
	Publish(ctx context.Context, item domain.ClassifiedItem) (string, error)
}

// linkResolver finds a direct episode page, falling back to the given link
type linkResolver interface {
	EpisodeLink(ctx context.Context, showName, episodeTitle, fallback string) string
}

// publisher wraps the destination store with podcast link enrichment and the
// dry-run switch. It is the resolver's Publisher.
type publisher struct {
	store   pageCreator
	itunes  linkResolver
	catalog *catalog.Catalog
	dryRun  bool
}

// Publish enriches podcast links and persists the item. On dry runs it logs
// what would have been published and reports success without touching the
// store, so the duplicate check stays consistent across real runs.
func (p *publisher) Publish(ctx context.Context, item domain.ClassifiedItem) (string, error) {
	if item.Kind == domain.TypePodcast {
		item.Link = p.episodeLink(ctx, item)
	}

	if p.dryRun {
		lgr.Printf("[INFO] dry run, would publish %q (%s, %s, %s)", item.Title, item.Kind, item.Difficulty, item.Topic)
		return "dry-run", nil
	}
	return p.store.Publish(ctx, item)
}

// episodeLink upgrades the feed link to a direct episode page when the
// search finds one. The source's link template is the fallback for feeds
// that publish entries without per-episode links.
func (p *publisher) episodeLink(ctx context.Context, item domain.ClassifiedItem) string {
	fallback := item.Link
	show := item.SourceID
	if src, err := p.catalog.Get(item.Kind, item.SourceID); err == nil {
		if src.Name != "" {
			show = src.Name
		}
		if fallback == "" {
			fallback = src.LinkTemplate
		}
	}
	return p.itunes.EpisodeLink(ctx, show, item.Title, fallback)
}
