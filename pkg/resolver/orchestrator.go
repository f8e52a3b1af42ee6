package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/vpalomo/diaria/pkg/catalog"
	"github.com/vpalomo/diaria/pkg/domain"
	"github.com/vpalomo/diaria/pkg/feed"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher
//go:generate moq -out mocks/selector.go -pkg mocks -skip-ensure -fmt goimports . Selector
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier
//go:generate moq -out mocks/guard.go -pkg mocks -skip-ensure -fmt goimports . Guard
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// FeedFetcher retrieves and parses a source's feed
type FeedFetcher interface {
	Fetch(ctx context.Context, source domain.Source) (*feed.Result, error)
}

// Selector turns a parsed feed into publication candidates
type Selector interface {
	Candidates(res *feed.Result, source domain.Source, mode feed.SelectMode) []domain.Candidate
}

// Classifier enriches a candidate with difficulty, topic and annotations
type Classifier interface {
	Classify(ctx context.Context, cand domain.Candidate) (domain.ClassifiedItem, error)
}

// Guard decides whether a title duplicates recently published material
type Guard interface {
	IsDuplicate(ctx context.Context, kind domain.ContentType, title string) bool
}

// Publisher persists an accepted item and returns its destination URL
type Publisher interface {
	Publish(ctx context.Context, item domain.ClassifiedItem) (string, error)
}

// Orchestrator drives the fallback cascade for one daily run: per content
// type, the scheduled primary source first, then the remaining catalog in
// declaration order. Passes are shared across content types, so a run gets
// at most maxPasses sweeps in total no matter how many kinds it resolves.
// One Orchestrator serves exactly one run and is not reused.
//
// Execution is deliberately sequential. The run happens once a day as a
// batch job; sources and candidates are inspected in a fixed order so two
// runs over the same feed snapshots pick the same item.
type Orchestrator struct {
	catalog    *catalog.Catalog
	schedule   *catalog.Schedule
	fetcher    FeedFetcher
	selector   Selector
	classifier Classifier
	guard      Guard
	publisher  Publisher

	maxPasses int
	passPause time.Duration
	sleep     func(time.Duration) // injectable for tests

	passesUsed int
	tried      map[attemptKey]bool
	attempts   []domain.Attempt
}

// attemptKey identifies one (source, entry) pair within the run
type attemptKey struct {
	sourceID   string
	entryIndex int
}

// Params collects the orchestrator dependencies
type Params struct {
	Catalog    *catalog.Catalog
	Schedule   *catalog.Schedule
	Fetcher    FeedFetcher
	Selector   Selector
	Classifier Classifier
	Guard      Guard
	Publisher  Publisher
	MaxPasses  int
	PassPause  time.Duration
}

// New creates an orchestrator for one run
func New(p Params) *Orchestrator {
	if p.MaxPasses < 1 {
		p.MaxPasses = 3
	}
	return &Orchestrator{
		catalog:    p.Catalog,
		schedule:   p.Schedule,
		fetcher:    p.Fetcher,
		selector:   p.Selector,
		classifier: p.Classifier,
		guard:      p.Guard,
		publisher:  p.Publisher,
		maxPasses:  p.MaxPasses,
		passPause:  p.PassPause,
		sleep:      time.Sleep,
		tried:      make(map[attemptKey]bool),
	}
}

// Run resolves every requested content type and returns one outcome per
// kind. Each pass sweeps all still-unresolved kinds before the next pass
// starts, so a stubborn kind cannot starve the others of the shared budget.
// The first pass walks feeds from the top; later passes revisit sources at
// an alternative offset, and no (source, entry) pair is tried twice within
// the run.
func (o *Orchestrator) Run(ctx context.Context, day time.Time, kinds []domain.ContentType) map[domain.ContentType]Outcome {
	results := make(map[domain.ContentType]Outcome, len(kinds))

	for o.passesUsed < o.maxPasses && len(results) < len(kinds) {
		if ctx.Err() != nil {
			for _, kind := range kinds {
				if _, done := results[kind]; !done {
					results[kind] = Failed(ctx.Err())
				}
			}
			return results
		}
		o.passesUsed++
		mode := feed.ModeDefault
		if o.passesUsed > 1 {
			mode = feed.ModeAlternative
		}
		lgr.Printf("[DEBUG] pass %d/%d", o.passesUsed, o.maxPasses)

		for _, kind := range kinds {
			if _, done := results[kind]; done {
				continue
			}
			if outcome, done := o.resolveKind(ctx, kind, day, mode); done {
				results[kind] = outcome
			}
		}

		if o.passesUsed < o.maxPasses && len(results) < len(kinds) && o.passPause > 0 {
			lgr.Printf("[DEBUG] pass %d left work unresolved, pausing %s", o.passesUsed, o.passPause)
			o.sleep(o.passPause)
		}
	}

	for _, kind := range kinds {
		if _, done := results[kind]; !done {
			lgr.Printf("[WARN] no %s material found after %d passes", kind, o.passesUsed)
			results[kind] = Exhausted()
		}
	}
	return results
}

// Resolve runs the cascade for a single content type
func (o *Orchestrator) Resolve(ctx context.Context, kind domain.ContentType, day time.Time) Outcome {
	return o.Run(ctx, day, []domain.ContentType{kind})[kind]
}

// Attempts returns the attempt log for run reporting
func (o *Orchestrator) Attempts() []domain.Attempt {
	out := make([]domain.Attempt, len(o.attempts))
	copy(out, o.attempts)
	return out
}

// resolveKind sweeps the full cascade for one kind within the current pass:
// the day's primary source, then every alternative in catalog order. done is
// false only when the whole sweep produced nothing and the kind should get
// another pass.
func (o *Orchestrator) resolveKind(ctx context.Context, kind domain.ContentType, day time.Time, mode feed.SelectMode) (outcome Outcome, done bool) {
	primary := o.schedule.Primary(kind, day)
	lgr.Printf("[INFO] resolving %s, primary source %s", kind, primary.ID)

	sources := append([]domain.Source{primary}, o.catalog.Alternatives(kind, primary.ID)...)
	for _, source := range sources {
		if outcome, done := o.trySource(ctx, source, mode); done {
			return outcome, true
		}
	}
	return Outcome{}, false
}

// trySource inspects one source's candidates in feed order and publishes the
// first acceptable one. done is true when the run must stop for this kind,
// either with a publication or a hard failure.
func (o *Orchestrator) trySource(ctx context.Context, source domain.Source, mode feed.SelectMode) (outcome Outcome, done bool) {
	res, err := o.fetcher.Fetch(ctx, source)
	if err != nil {
		lgr.Printf("[WARN] fetch %s failed, moving on: %v", source.ID, err)
		o.record(source.ID, -1, domain.AttemptNoCandidate)
		return Outcome{}, false
	}

	candidates := o.selector.Candidates(res, source, mode)
	if len(candidates) == 0 {
		lgr.Printf("[DEBUG] source %s yielded no candidates", source.ID)
		o.record(source.ID, -1, domain.AttemptNoCandidate)
		return Outcome{}, false
	}

	for _, cand := range candidates {
		key := attemptKey{sourceID: cand.SourceID, entryIndex: cand.EntryIndex}
		if o.tried[key] {
			continue
		}
		o.tried[key] = true

		item, err := o.classifier.Classify(ctx, cand)
		if err != nil {
			// classification is degradable by contract; an error here means
			// a programming bug, not a bad candidate
			return Failed(fmt.Errorf("classify %q: %w", cand.Title, err)), true
		}

		if o.guard.IsDuplicate(ctx, item.Kind, item.Title) {
			o.record(cand.SourceID, cand.EntryIndex, domain.AttemptDuplicate)
			continue
		}

		url, err := o.publisher.Publish(ctx, item)
		if err != nil {
			// no automatic re-publish: a partial failure must not risk a
			// duplicate page
			return Failed(fmt.Errorf("publish %q: %w", item.Title, err)), true
		}

		o.record(cand.SourceID, cand.EntryIndex, domain.AttemptAccepted)
		lgr.Printf("[INFO] published %q from %s -> %s", item.Title, source.ID, url)
		return Published(item, url), true
	}

	return Outcome{}, false
}

func (o *Orchestrator) record(sourceID string, entryIndex int, outcome domain.AttemptOutcome) {
	o.attempts = append(o.attempts, domain.Attempt{SourceID: sourceID, EntryIndex: entryIndex, Outcome: outcome})
}
