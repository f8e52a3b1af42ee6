package domain

import "time"

// Candidate is an unclassified feed entry eligible for publication.
// It is built from a parsed feed entry right after parsing so downstream
// code never sees the parser library's native types.
type Candidate struct {
	SourceID   string
	Kind       ContentType
	Title      string
	Link       string
	Summary    string
	Published  time.Time // zero when the feed carries no usable date
	EntryIndex int       // position in the feed at selection time

	// FeedDuration is the raw itunes:duration value, podcasts only;
	// normalized later during classification
	FeedDuration string
}

// Analysis holds analyzer-produced annotations. Empty slices are a valid
// outcome, not an error: plenty of source texts contain no teachable
// colloquialisms.
type Analysis struct {
	GrammarPoints  []string
	Colloquialisms []string
	LearningGoals  []string
}

// ClassifiedItem is a candidate enriched by the classifier and ready for
// the duplicate check and, if fresh, publication.
type ClassifiedItem struct {
	Candidate
	Difficulty    string // CEFR tier, e.g. B2
	Topic         string
	Duration      string // podcasts only, e.g. "23:41" or "15-25 min"
	EpisodeNumber string // podcasts only, empty when the title has none
	BodyText      string // extracted and truncated body used for analysis
	Analysis      Analysis
}

// AttemptOutcome records what happened to a single (source, entry) attempt
type AttemptOutcome string

// attempt outcomes, kept for run reporting
const (
	AttemptNoCandidate AttemptOutcome = "no-candidate"
	AttemptDuplicate   AttemptOutcome = "duplicate"
	AttemptAccepted    AttemptOutcome = "accepted"
)

// Attempt is an ephemeral record of one try within a resolution run.
// It exists only in memory and guarantees the orchestrator never retries
// the exact same (source, entry) pair twice within the same run.
type Attempt struct {
	SourceID   string
	EntryIndex int
	Outcome    AttemptOutcome
}
