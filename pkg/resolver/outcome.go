package resolver

import "github.com/vpalomo/diaria/pkg/domain"

// outcomeKind discriminates the terminal states of a resolution run
type outcomeKind int

const (
	outcomePublished outcomeKind = iota
	outcomeExhausted
	outcomeFailed
)

// Outcome is the tagged result of resolving one content type. Exactly one of
// the constructors produces it; callers branch on the predicates instead of
// comparing sentinel strings or URLs.
type Outcome struct {
	kind outcomeKind
	item domain.ClassifiedItem
	url  string
	err  error
}

// Published means an item was accepted and persisted at url
func Published(item domain.ClassifiedItem, url string) Outcome {
	return Outcome{kind: outcomePublished, item: item, url: url}
}

// Exhausted means every pass ran out without an acceptable item. It is a
// reportable condition, not an error: the next scheduled run tries again.
func Exhausted() Outcome {
	return Outcome{kind: outcomeExhausted}
}

// Failed means the run hit an internal error it could not route around
func Failed(err error) Outcome {
	return Outcome{kind: outcomeFailed, err: err}
}

// IsPublished reports success and yields the published item and its URL
func (o Outcome) IsPublished() (domain.ClassifiedItem, string, bool) {
	return o.item, o.url, o.kind == outcomePublished
}

// IsExhausted reports whether the run ended with no material found
func (o Outcome) IsExhausted() bool {
	return o.kind == outcomeExhausted
}

// Err returns the internal error, nil unless the outcome is a failure
func (o Outcome) Err() error {
	return o.err
}
