package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/vpalomo/diaria/pkg/config"
	"github.com/vpalomo/diaria/pkg/domain"
)

// notionVersion pins the API revision; property shapes change between versions
const notionVersion = "2022-06-28"

// errClientRejected marks 4xx responses, which retrying cannot fix
var errClientRejected = errors.New("request rejected")

// Client publishes classified items as pages in a Notion database and reads
// back recent titles for the duplicate check
type Client struct {
	http       *http.Client
	baseURL    string
	token      string
	databaseID string
}

// NewClient creates a Notion API client
func NewClient(cfg config.NotionConfig) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		databaseID: cfg.DatabaseID,
	}
}

// queryRequest is the database query payload
type queryRequest struct {
	Filter   map[string]any `json:"filter"`
	PageSize int            `json:"page_size"`
}

// queryResponse carries the slice of page results we care about
type queryResponse struct {
	Results []struct {
		Properties struct {
			Name struct {
				Title []richText `json:"title"`
			} `json:"Name"`
		} `json:"properties"`
	} `json:"results"`
}

type richText struct {
	PlainText string `json:"plain_text,omitempty"`
	Text      *struct {
		Content string `json:"content"`
	} `json:"text,omitempty"`
}

// RecentTitles returns titles of the given kind created within the window.
// One page of results is enough: the window covers at most a couple of weeks
// of daily material.
func (c *Client) RecentTitles(ctx context.Context, kind domain.ContentType, window time.Duration) ([]string, error) {
	req := queryRequest{
		Filter: map[string]any{
			"and": []map[string]any{
				{"property": "Type", "select": map[string]any{"equals": string(kind)}},
				{"timestamp": "created_time", "created_time": map[string]any{
					"on_or_after": time.Now().Add(-window).Format(time.RFC3339),
				}},
			},
		},
		PageSize: 100,
	}

	var resp queryResponse
	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, c.databaseID)
	if err := c.post(ctx, url, req, &resp); err != nil {
		return nil, fmt.Errorf("query database: %w", err)
	}

	titles := make([]string, 0, len(resp.Results))
	for _, page := range resp.Results {
		title := ""
		for _, part := range page.Properties.Name.Title {
			title += part.PlainText
		}
		if title != "" {
			titles = append(titles, title)
		}
	}
	return titles, nil
}

// createPageResponse is the slice of the page-creation reply we use
type createPageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Publish creates a page for the item and returns the page URL
func (c *Client) Publish(ctx context.Context, item domain.ClassifiedItem) (string, error) {
	payload := map[string]any{
		"parent":     map[string]any{"database_id": c.databaseID},
		"properties": pageProperties(item),
		"children":   memoBlocks(item),
	}

	var resp createPageResponse
	if err := c.post(ctx, c.baseURL+"/v1/pages", payload, &resp); err != nil {
		return "", fmt.Errorf("create page for %q: %w", item.Title, err)
	}
	return resp.URL, nil
}

// pageProperties maps the item onto the database schema
func pageProperties(item domain.ClassifiedItem) map[string]any {
	props := map[string]any{
		"Name": map[string]any{
			"title": []map[string]any{{"text": map[string]any{"content": item.Title}}},
		},
		"Type":       map[string]any{"select": map[string]any{"name": string(item.Kind)}},
		"Source":     map[string]any{"select": map[string]any{"name": item.SourceID}},
		"Difficulty": map[string]any{"select": map[string]any{"name": item.Difficulty}},
		"Topic":      map[string]any{"select": map[string]any{"name": item.Topic}},
		"Link":       map[string]any{"url": item.Link},
	}
	if item.Duration != "" {
		props["Duration"] = map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": item.Duration}}},
		}
	}
	if item.EpisodeNumber != "" {
		props["Episode"] = map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": item.EpisodeNumber}}},
		}
	}
	return props
}

// post sends a JSON request, retrying transient failures. 4xx responses are
// terminal: the payload will not get better on a retry.
func (c *Client) post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
	return retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", notionVersion)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("notion request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("notion status %d: %s: %w", resp.StatusCode, string(msg), errClientRejected)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("notion status %d", resp.StatusCode)
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	}, errClientRejected)
}
