package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains browser Accept-Language values weighted toward
// Spanish, since every catalog feed serves Spanish-language content
var acceptLanguages = []string{
	"es-ES,es;q=0.9",
	"es-ES,es;q=0.9,en;q=0.8",
	"es-MX,es;q=0.9,en;q=0.8",
	"es,en-US;q=0.8,en;q=0.7",
	"en-US,en;q=0.9,es;q=0.8",
}

// addBrowserHeaders adds browser-like headers for feed fetching
// feeds are often fetched by browsers too, so we want to look legitimate
func addBrowserHeaders(req *http.Request) {
	// accept header for feeds - include both RSS and HTML
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5")
	// don't request compression for feeds - simpler to handle
	req.Header.Set("Cache-Control", "no-cache")

	// randomized language
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation

	// connection header
	req.Header.Set("Connection", "keep-alive")
}
