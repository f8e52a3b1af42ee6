package dedup

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/go-pkgz/lgr"

	"github.com/vpalomo/diaria/pkg/domain"
)

//go:generate moq -out mocks/title_store.go -pkg mocks -skip-ensure -fmt goimports . TitleStore

// TitleStore lists titles of the given kind published within the recent window
type TitleStore interface {
	RecentTitles(ctx context.Context, kind domain.ContentType, window time.Duration) ([]string, error)
}

// Guard rejects candidates whose titles near-duplicate something already
// published. It fails open: when the store is unreachable the candidate
// passes, because a missed day of material costs more than a rare repeat.
type Guard struct {
	store     TitleStore
	threshold float64
	window    time.Duration
}

// New creates a guard. threshold is the Jaccard similarity at or above which
// two titles count as the same item. Only titles newer than window are
// compared, bounding query cost; older duplicates go undetected.
func New(store TitleStore, threshold float64, window time.Duration) *Guard {
	return &Guard{store: store, threshold: threshold, window: window}
}

// IsDuplicate reports whether the title matches a recently published one of
// the same kind
func (g *Guard) IsDuplicate(ctx context.Context, kind domain.ContentType, title string) bool {
	recent, err := g.store.RecentTitles(ctx, kind, g.window)
	if err != nil {
		lgr.Printf("[WARN] duplicate check unavailable, allowing %q: %v", title, err)
		return false
	}

	tokens := normalize(title)
	for _, published := range recent {
		if sim := jaccard(tokens, normalize(published)); sim >= g.threshold {
			lgr.Printf("[INFO] duplicate: %q matches %q (similarity %.2f)", title, published, sim)
			return true
		}
	}
	return false
}

// normalize lowercases the title, strips punctuation and splits it into a
// token set. Accented letters are kept as-is so "económica" and "economica"
// stay distinct; feeds from the same publisher are consistent about accents.
func normalize(title string) map[string]struct{} {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(sb.String()) {
		tokens[tok] = struct{}{}
	}
	return tokens
}

// jaccard computes set similarity between two token sets. Two empty sets are
// identical by convention, which makes repeated empty titles duplicates.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
