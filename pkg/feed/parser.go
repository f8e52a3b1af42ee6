// Package feed fetches syndication feeds and selects publication candidates
// from them: recency filtering, alternative-search offsets and the Spanish
// language gate for mixed-language podcast feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/vpalomo/diaria/pkg/domain"
)

// fetch failure kinds. Unreachable transport errors are returned as-is,
// wrapped; callers distinguish the rest with errors.Is.
var (
	ErrFeedEmpty     = errors.New("feed has no entries")
	ErrFeedMalformed = errors.New("feed is malformed")
)

// Entry is a feed entry converted to our own shape right after parsing,
// so nothing downstream depends on the parser library's types
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published time.Time
	Duration  string // raw itunes:duration value, podcasts only
}

// Result holds a parsed feed
type Result struct {
	SourceID string
	Title    string
	Entries  []Entry
}

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves and parses the source's feed
func (p *Parser) Fetch(ctx context.Context, source domain.Source) (*Result, error) {
	body, err := p.fetch(ctx, source.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", source.ID, err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", source.ID, ErrFeedMalformed)
	}

	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("feed %s: %w", source.ID, ErrFeedEmpty)
	}

	result := &Result{
		SourceID: source.ID,
		Title:    parsed.Title,
		Entries:  make([]Entry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		entry := Entry{
			Title:   item.Title,
			Link:    item.Link,
			Summary: item.Description,
		}
		if entry.Summary == "" {
			entry.Summary = item.Content
		}
		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}
		if item.ITunesExt != nil {
			entry.Duration = item.ITunesExt.Duration
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
