package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// maxFetchBytes caps how much of a page is read into memory
const maxFetchBytes = 2 << 20

// minParaChars filters boilerplate when collecting paragraphs
const minParaChars = 50

// maxFallbackParas bounds the last-resort paragraph walk; Spanish news pages
// bury related-article teasers in <p> tags past the lede
const maxFallbackParas = 8

// siteSelectors holds per-publisher body selectors tried before the generic
// extractor. Keyed by host suffix. Selectors are ordered; publishers rotate
// their markup, so older class names stay as fallbacks.
var siteSelectors = map[string][]string{
	"20minutos.es": {"div.article-text", "div.content"},
	"elpais.com":   {`[data-dtm-region="articulo_cuerpo"]`, "div.a_c", "div.articulo-cuerpo"},
	"elmundo.es":   {"div.ue-c-article__body", "div.ue-l-article__body"},
}

// HTTPExtractor pulls article body text from a URL. Site-specific selectors
// run first, then trafilatura, then a plain paragraph walk as a last resort.
type HTTPExtractor struct {
	client       *http.Client
	userAgent    string
	maxBodyChars int
}

// NewHTTPExtractor creates a content extractor. maxBodyChars truncates the
// returned text; zero or negative disables truncation.
func NewHTTPExtractor(timeout time.Duration, userAgent string, maxBodyChars int) *HTTPExtractor {
	return &HTTPExtractor{
		client:       &http.Client{Timeout: timeout},
		userAgent:    userAgent,
		maxBodyChars: maxBodyChars,
	}
}

// Extract retrieves the page at urlStr and returns its readable body text
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	// the body is walked up to three times, so it has to live in memory
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", urlStr, err)
	}

	if text := e.extractBySite(parsedURL.Host, raw); text != "" {
		return e.truncate(text), nil
	}
	if text := e.extractGeneric(parsedURL, raw); text != "" {
		return e.truncate(text), nil
	}
	if text := e.extractParagraphs(raw); text != "" {
		return e.truncate(text), nil
	}
	return "", fmt.Errorf("no text content extracted from %s", urlStr)
}

// extractBySite applies publisher-specific selectors when the host is known
func (e *HTTPExtractor) extractBySite(host string, raw []byte) string {
	var selectors []string
	for suffix, sel := range siteSelectors {
		if strings.HasSuffix(host, suffix) {
			selectors = sel
			break
		}
	}
	if selectors == nil {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	for _, selector := range selectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		var parts []string
		container.Find("p").Each(func(_ int, p *goquery.Selection) {
			if text := strings.TrimSpace(p.Text()); len(text) >= minParaChars {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			return strings.Join(parts, "\n\n")
		}
	}
	return ""
}

// extractGeneric runs trafilatura over the page
func (e *HTTPExtractor) extractGeneric(pageURL *url.URL, raw []byte) string {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}
	result, err := trafilatura.Extract(bytes.NewReader(raw), opts)
	if err != nil || result == nil {
		return ""
	}
	return strings.TrimSpace(result.ContentText)
}

// extractParagraphs is the last-resort walk over every <p> in the document
func (e *HTTPExtractor) extractParagraphs(raw []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	var parts []string
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if text := strings.TrimSpace(p.Text()); len(text) >= minParaChars {
			parts = append(parts, text)
		}
		return len(parts) < maxFallbackParas
	})
	return strings.Join(parts, "\n\n")
}

// truncate cuts text to maxBodyChars at a word boundary
func (e *HTTPExtractor) truncate(text string) string {
	if e.maxBodyChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= e.maxBodyChars {
		return text
	}
	cut := string(runes[:e.maxBodyChars])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
