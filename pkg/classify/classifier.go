package classify

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/vpalomo/diaria/pkg/content"
	"github.com/vpalomo/diaria/pkg/domain"
	"github.com/vpalomo/diaria/pkg/feed"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer

// Extractor pulls readable body text from an article URL
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (string, error)
}

// Analyzer produces language annotations for a text
type Analyzer interface {
	Difficulty(ctx context.Context, title, body string) (string, error)
	GrammarPoints(ctx context.Context, title, body string) ([]string, error)
	Colloquialisms(ctx context.Context, title, body string) ([]string, error)
	LearningGoals(ctx context.Context, title, body string) ([]string, error)
}

// DefaultDifficulty is assumed whenever the difficulty analysis fails.
// The pipeline targets intermediate learners, so B2 is the safe middle.
const DefaultDifficulty = "B2"

// Classifier enriches candidates with body text, topic, difficulty and
// analyzer annotations. Every enrichment degrades independently: a dead
// analyzer or an unextractable page never blocks publication, it just
// produces a plainer item.
type Classifier struct {
	extractor Extractor
	analyzer  Analyzer
}

// New creates a classifier
func New(extractor Extractor, analyzer Analyzer) *Classifier {
	return &Classifier{extractor: extractor, analyzer: analyzer}
}

// Classify enriches the candidate. The returned error is always nil today;
// the signature leaves room for future hard failures without an API break.
func (c *Classifier) Classify(ctx context.Context, cand domain.Candidate) (domain.ClassifiedItem, error) {
	item := domain.ClassifiedItem{Candidate: cand}
	item.Summary = content.CleanSummary(cand.Summary)
	item.BodyText = c.bodyText(ctx, cand, item.Summary)
	item.Topic = Topic(cand.Kind, cand.Title, item.BodyText)

	if cand.Kind == domain.TypePodcast {
		item.EpisodeNumber = feed.EpisodeNumber(cand.Title)
		item.Duration = feed.Duration(cand.FeedDuration, cand.Summary)
	}

	item.Difficulty = c.difficulty(ctx, cand.Title, item.BodyText)
	item.Analysis = c.analysis(ctx, cand.Title, item.BodyText)

	return item, nil
}

// bodyText resolves the text used for analysis: extracted article body for
// articles, falling back to the cleaned summary when extraction fails or the
// item is a podcast
func (c *Classifier) bodyText(ctx context.Context, cand domain.Candidate, summary string) string {
	if cand.Kind != domain.TypeArticle || cand.Link == "" {
		return summary
	}
	body, err := c.extractor.Extract(ctx, cand.Link)
	if err != nil {
		lgr.Printf("[WARN] content extraction failed for %s, using summary: %v", cand.Link, err)
		return summary
	}
	return body
}

// difficulty asks the analyzer for a CEFR level, degrading to the default
func (c *Classifier) difficulty(ctx context.Context, title, body string) string {
	level, err := c.analyzer.Difficulty(ctx, title, body)
	if err != nil {
		lgr.Printf("[WARN] difficulty analysis failed for %q, assuming %s: %v", title, DefaultDifficulty, err)
		return DefaultDifficulty
	}
	return level
}

// analysis collects the annotation sets, dropping whichever ones fail.
// Empty results from a healthy analyzer are kept as-is: a text with no
// colloquialisms is an answer, not a failure.
func (c *Classifier) analysis(ctx context.Context, title, body string) domain.Analysis {
	var res domain.Analysis
	var err error

	if res.GrammarPoints, err = c.analyzer.GrammarPoints(ctx, title, body); err != nil {
		lgr.Printf("[WARN] grammar analysis failed for %q: %v", title, err)
		res.GrammarPoints = nil
	}
	if res.Colloquialisms, err = c.analyzer.Colloquialisms(ctx, title, body); err != nil {
		lgr.Printf("[WARN] colloquialism analysis failed for %q: %v", title, err)
		res.Colloquialisms = nil
	}
	if res.LearningGoals, err = c.analyzer.LearningGoals(ctx, title, body); err != nil {
		lgr.Printf("[WARN] learning-goal analysis failed for %q: %v", title, err)
		res.LearningGoals = nil
	}
	return res
}
