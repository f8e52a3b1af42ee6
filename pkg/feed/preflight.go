package feed

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vpalomo/diaria/pkg/domain"
)

// preflight statuses
const (
	StatusOK          = "ok"
	StatusEmpty       = "empty"
	StatusMalformed   = "malformed"
	StatusUnreachable = "unreachable"
)

// Health describes the state of one catalog feed after a preflight check
type Health struct {
	SourceID string
	Status   string
	Entries  int
	Err      error
}

// CheckAll probes every source concurrently and reports per-source health.
// This is a preflight utility for the --verify mode; the resolution run
// itself never fans out.
func CheckAll(ctx context.Context, parser *Parser, sources []domain.Source, maxConcurrent int) []Health {
	if maxConcurrent < 1 {
		maxConcurrent = 4
	}

	var mu sync.Mutex
	results := make([]Health, 0, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for _, src := range sources {
		g.Go(func() error {
			h := Health{SourceID: src.ID, Status: StatusOK}
			res, err := parser.Fetch(ctx, src)
			switch {
			case err == nil:
				h.Entries = len(res.Entries)
			case errors.Is(err, ErrFeedEmpty):
				h.Status = StatusEmpty
				h.Err = err
			case errors.Is(err, ErrFeedMalformed):
				h.Status = StatusMalformed
				h.Err = err
			default:
				h.Status = StatusUnreachable
				h.Err = err
			}
			mu.Lock()
			results = append(results, h)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // probes never return errors, failures land in Health

	sort.Slice(results, func(i, j int) bool { return results[i].SourceID < results[j].SourceID })
	return results
}
