// Package catalog exposes the static, ordered list of content sources and
// the day schedule that picks the primary source for a run. The catalog is
// built once from config and read-only afterwards; declaration order is the
// fallback traversal order.
package catalog

import (
	"fmt"

	"github.com/vpalomo/diaria/pkg/domain"
)

// Catalog holds the ordered sources per content type
type Catalog struct {
	sources map[domain.ContentType][]domain.Source
}

// New builds a catalog from the ordered source lists
func New(articles, podcasts []domain.Source) *Catalog {
	return &Catalog{sources: map[domain.ContentType][]domain.Source{
		domain.TypeArticle: articles,
		domain.TypePodcast: podcasts,
	}}
}

// Sources returns all sources of the given type in catalog order
func (c *Catalog) Sources(kind domain.ContentType) []domain.Source {
	res := make([]domain.Source, len(c.sources[kind]))
	copy(res, c.sources[kind])
	return res
}

// Alternatives returns all sources of the given type except excludeID,
// preserving catalog order. The excluded source is the one already tried
// before escalation; it never appears in its own fallback list.
func (c *Catalog) Alternatives(kind domain.ContentType, excludeID string) []domain.Source {
	res := make([]domain.Source, 0, len(c.sources[kind]))
	for _, s := range c.sources[kind] {
		if s.ID == excludeID {
			continue
		}
		res = append(res, s)
	}
	return res
}

// Get looks up a source by id
func (c *Catalog) Get(kind domain.ContentType, id string) (domain.Source, error) {
	for _, s := range c.sources[kind] {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Source{}, fmt.Errorf("source %q not found in %s catalog", id, kind)
}
