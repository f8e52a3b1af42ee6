package domain

// ContentType distinguishes the two kinds of daily material
type ContentType string

// supported content types
const (
	TypeArticle ContentType = "article"
	TypePodcast ContentType = "podcast"
)

// Valid reports whether the content type is one of the known kinds
func (t ContentType) Valid() bool {
	return t == TypeArticle || t == TypePodcast
}

// Source is a single catalog entry, a reading site or a podcast feed.
// Sources are defined in the config file and immutable for the duration
// of a run. Rank is the position in the catalog and doubles as the
// fallback traversal order.
type Source struct {
	ID           string
	Name         string // display name, e.g. the podcast show name
	Kind         ContentType
	Rank         int
	FeedURL      string
	Region       string
	LinkTemplate string // base link for the source, e.g. Apple Podcasts show page
}
