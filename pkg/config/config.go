package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vpalomo/diaria/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Catalog struct {
		Articles []Source `yaml:"articles" json:"articles" jsonschema:"description=Ordered reading sources, declaration order is fallback order"`
		Podcasts []Source `yaml:"podcasts" json:"podcasts" jsonschema:"description=Ordered podcast sources, declaration order is fallback order"`
	} `yaml:"catalog" json:"catalog" jsonschema:"description=Static source catalog"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Day schedule selecting the primary source"`

	Resolver ResolverConfig `yaml:"resolver" json:"resolver" jsonschema:"description=Fallback cascade settings"`

	Dedup DedupConfig `yaml:"dedup" json:"dedup" jsonschema:"description=Near-duplicate detection policy"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=Analyzer configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article body extraction configuration"`

	Notion NotionConfig `yaml:"notion" json:"notion" jsonschema:"description=Publishing store configuration"`

	ITunes ITunesConfig `yaml:"itunes" json:"itunes" jsonschema:"description=iTunes episode link enrichment"`
}

// Source describes one catalog entry
type Source struct {
	ID           string `yaml:"id" json:"id" jsonschema:"required,description=Stable source identity"`
	Name         string `yaml:"name" json:"name" jsonschema:"description=Display name, e.g. the podcast show name"`
	Feed         string `yaml:"feed" json:"feed" jsonschema:"required,description=RSS/Atom feed URL"`
	Region       string `yaml:"region" json:"region" jsonschema:"description=Region label (Spain or Latin America)"`
	LinkTemplate string `yaml:"link_template" json:"link_template" jsonschema:"description=Base link for the source, e.g. Apple Podcasts show page"`
}

// ScheduleConfig maps calendar days to primary sources
type ScheduleConfig struct {
	CourseStart     string            `yaml:"course_start" json:"course_start" jsonschema:"description=Course start date (YYYY-MM-DD) for week numbering"`
	WeekdayPodcasts map[string]string `yaml:"weekday_podcasts" json:"weekday_podcasts" jsonschema:"description=Weekday name to podcast source id"`
	ReadingPhases   []ReadingPhase    `yaml:"reading_phases" json:"reading_phases" jsonschema:"description=Week-numbered reading source progression"`
}

// ReadingPhase assigns a reading source up to a course week (inclusive).
// A phase with until_week 0 is the open-ended tail.
type ReadingPhase struct {
	UntilWeek int    `yaml:"until_week" json:"until_week" jsonschema:"description=Last course week this phase applies to, 0 for open-ended"`
	SourceID  string `yaml:"source" json:"source" jsonschema:"required,description=Reading source id"`
}

// ResolverConfig holds fallback cascade settings
type ResolverConfig struct {
	MaxPasses        int           `yaml:"max_passes" json:"max_passes" jsonschema:"default=3,description=Whole-pipeline passes shared across content types"`
	EntriesPerSource int           `yaml:"entries_per_source" json:"entries_per_source" jsonschema:"default=3,description=Feed entries inspected per alternative source"`
	PassPause        time.Duration `yaml:"pass_pause" json:"pass_pause" jsonschema:"default=3s,description=Pause between passes to avoid hammering feeds"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=15s,description=Per-feed fetch timeout"`
}

// DedupConfig holds near-duplicate detection policy.
// The threshold and window are tunable policy, not load-bearing constants.
type DedupConfig struct {
	SimilarityThreshold float64       `yaml:"similarity_threshold" json:"similarity_threshold" jsonschema:"default=0.9,minimum=0,maximum=1,description=Token Jaccard similarity treated as duplicate"`
	RecentWindow        time.Duration `yaml:"recent_window" json:"recent_window" jsonschema:"default=168h,description=Only titles published within this window are checked"`
}

// LLMConfig holds analyzer configuration
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=800,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ExtractionConfig holds article body extraction settings
type ExtractionConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Extraction timeout per page"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Diaria/1.0,description=User agent for HTTP requests"`
	MaxBodyChars int           `yaml:"max_body_chars" json:"max_body_chars" jsonschema:"default=2000,description=Body truncation bound, limits analyzer cost"`
	MinParaChars int           `yaml:"min_para_chars" json:"min_para_chars" jsonschema:"default=50,description=Minimum paragraph length for the generic fallback"`
}

// NotionConfig holds publishing store configuration
type NotionConfig struct {
	BaseURL    string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://api.notion.com,description=API base URL, overridable for tests"`
	Token      string        `yaml:"token" json:"token" jsonschema:"description=Integration token (can use environment variable)"`
	DatabaseID string        `yaml:"database_id" json:"database_id" jsonschema:"description=Target page database id"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
}

// ITunesConfig holds iTunes Search enrichment settings
type ITunesConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enrich podcast links via iTunes Search"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://itunes.apple.com,description=Search API base URL, overridable for tests"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Resolver.MaxPasses == 0 {
		c.Resolver.MaxPasses = 3
	}
	if c.Resolver.EntriesPerSource == 0 {
		c.Resolver.EntriesPerSource = 3
	}
	if c.Resolver.PassPause == 0 {
		c.Resolver.PassPause = 3 * time.Second
	}
	if c.Resolver.FetchTimeout == 0 {
		c.Resolver.FetchTimeout = 15 * time.Second
	}

	if c.Dedup.SimilarityThreshold == 0 {
		c.Dedup.SimilarityThreshold = 0.9
	}
	if c.Dedup.RecentWindow == 0 {
		c.Dedup.RecentWindow = 7 * 24 * time.Hour
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 800
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 10 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Diaria/1.0"
	}
	if c.Extraction.MaxBodyChars == 0 {
		c.Extraction.MaxBodyChars = 2000
	}
	if c.Extraction.MinParaChars == 0 {
		c.Extraction.MinParaChars = 50
	}

	if c.Notion.BaseURL == "" {
		c.Notion.BaseURL = "https://api.notion.com"
	}
	if c.Notion.Timeout == 0 {
		c.Notion.Timeout = 15 * time.Second
	}

	if c.ITunes.BaseURL == "" {
		c.ITunes.BaseURL = "https://itunes.apple.com"
	}
	if c.ITunes.Timeout == 0 {
		c.ITunes.Timeout = 10 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if len(cfg.Catalog.Articles) == 0 {
		return fmt.Errorf("catalog.articles must have at least one source")
	}
	if len(cfg.Catalog.Podcasts) == 0 {
		return fmt.Errorf("catalog.podcasts must have at least one source")
	}

	seen := map[string]bool{}
	for _, s := range append(append([]Source{}, cfg.Catalog.Articles...), cfg.Catalog.Podcasts...) {
		if s.ID == "" {
			return fmt.Errorf("catalog source without id")
		}
		if s.Feed == "" {
			return fmt.Errorf("catalog source %q has no feed URL", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate catalog source id %q", s.ID)
		}
		seen[s.ID] = true
	}

	for day, id := range cfg.Schedule.WeekdayPodcasts {
		if !seen[id] {
			return fmt.Errorf("schedule.weekday_podcasts[%s] references unknown source %q", day, id)
		}
	}
	for _, phase := range cfg.Schedule.ReadingPhases {
		if !seen[phase.SourceID] {
			return fmt.Errorf("schedule.reading_phases references unknown source %q", phase.SourceID)
		}
	}
	if cfg.Schedule.CourseStart != "" {
		if _, err := time.Parse("2006-01-02", cfg.Schedule.CourseStart); err != nil {
			return fmt.Errorf("schedule.course_start must be YYYY-MM-DD: %w", err)
		}
	}

	if cfg.Dedup.SimilarityThreshold < 0 || cfg.Dedup.SimilarityThreshold > 1 {
		return fmt.Errorf("dedup.similarity_threshold must be between 0 and 1")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.Resolver.MaxPasses < 1 {
		return fmt.Errorf("resolver.max_passes must be at least 1")
	}
	if cfg.Resolver.EntriesPerSource < 1 {
		return fmt.Errorf("resolver.entries_per_source must be at least 1")
	}

	return nil
}

// Sources converts catalog entries of the given kind to domain sources,
// preserving declaration order as the priority rank
func (c *Config) Sources(kind domain.ContentType) []domain.Source {
	var raw []Source
	switch kind {
	case domain.TypeArticle:
		raw = c.Catalog.Articles
	case domain.TypePodcast:
		raw = c.Catalog.Podcasts
	}

	sources := make([]domain.Source, 0, len(raw))
	for i, s := range raw {
		sources = append(sources, domain.Source{
			ID:           s.ID,
			Name:         s.Name,
			Kind:         kind,
			Rank:         i,
			FeedURL:      s.Feed,
			Region:       s.Region,
			LinkTemplate: s.LinkTemplate,
		})
	}
	return sources
}
