package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/vpalomo/diaria/pkg/config"
)

// minWordMatches is how many important title words must appear in a search
// result before it counts as the same episode
const minWordMatches = 2

// stopwords excluded from title matching; too common to discriminate
var stopwords = map[string]bool{
	"episodio": true, "episode": true, "podcast": true,
	"para": true, "como": true, "este": true, "esta": true,
	"sobre": true, "with": true, "that": true, "this": true,
}

// Client resolves direct episode links through the iTunes Search API.
// Resolution is best-effort by contract: any failure falls back to the link
// the feed provided, and nothing here ever propagates an error upstream.
type Client struct {
	http    *http.Client
	baseURL string
	enabled bool
}

// NewClient creates a search client
func NewClient(cfg config.ITunesConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		enabled: cfg.Enabled,
	}
}

// searchResponse mirrors the slice of the iTunes payload we use
type searchResponse struct {
	Results []struct {
		CollectionName string `json:"collectionName"`
		TrackName      string `json:"trackName"`
		TrackViewURL   string `json:"trackViewUrl"`
	} `json:"results"`
}

// EpisodeLink looks up a direct episode page for the show/episode pair and
// returns it, or fallback when disabled, unreachable or nothing matches
func (c *Client) EpisodeLink(ctx context.Context, showName, episodeTitle, fallback string) string {
	if !c.enabled {
		return fallback
	}

	resp, err := c.search(ctx, showName+" "+episodeTitle)
	if err != nil {
		lgr.Printf("[WARN] itunes lookup failed for %q, keeping feed link: %v", episodeTitle, err)
		return fallback
	}

	words := importantWords(episodeTitle)
	needed := minWordMatches
	if len(words) < needed {
		needed = len(words)
	}

	for _, result := range resp.Results {
		if !strings.Contains(strings.ToLower(result.CollectionName), strings.ToLower(showName)) {
			continue
		}
		if needed == 0 || countMatches(words, result.TrackName) >= needed {
			lgr.Printf("[DEBUG] itunes matched %q -> %s", episodeTitle, result.TrackViewURL)
			return result.TrackViewURL
		}
	}
	return fallback
}

// search queries the episode search endpoint
func (c *Client) search(ctx context.Context, term string) (*searchResponse, error) {
	params := url.Values{
		"term":   []string{term},
		"media":  []string{"podcast"},
		"entity": []string{"podcastEpisode"},
		"limit":  []string{"20"},
	}
	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("itunes request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("itunes status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// importantWords keeps title words long enough to discriminate episodes
func importantWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, ".,:;!?¡¿\"'()")
		if len([]rune(w)) >= 4 && !stopwords[w] {
			words = append(words, w)
		}
	}
	return words
}

// countMatches counts how many words occur in the candidate track name
func countMatches(words []string, trackName string) int {
	lower := strings.ToLower(trackName)
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}
