package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/vpalomo/diaria/pkg/catalog"
	"github.com/vpalomo/diaria/pkg/classify"
	"github.com/vpalomo/diaria/pkg/config"
	"github.com/vpalomo/diaria/pkg/content"
	"github.com/vpalomo/diaria/pkg/dedup"
	"github.com/vpalomo/diaria/pkg/domain"
	"github.com/vpalomo/diaria/pkg/feed"
	"github.com/vpalomo/diaria/pkg/itunes"
	"github.com/vpalomo/diaria/pkg/llm"
	"github.com/vpalomo/diaria/pkg/notion"
	"github.com/vpalomo/diaria/pkg/resolver"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"DIARIA_CONFIG" default:"config.yml" description:"config file path"`
	Type   string `short:"t" long:"type" choice:"article" choice:"podcast" choice:"all" default:"all" description:"content type to resolve"`
	Date   string `long:"date" description:"run date override (YYYY-MM-DD), defaults to today"`
	Seed   int64  `long:"seed" description:"alternative-offset seed, 0 uses the current time"`
	DryRun bool   `long:"dry" description:"resolve and classify but skip publishing"`
	Verify bool   `long:"verify" description:"check every catalog feed and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// exit codes understood by the wrapping scheduler
const (
	exitPublished = 0
	exitError     = 1
	exitExhausted = 2
)

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(exitError)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(exitError)
	}

	setupLog(opts.Debug, cfg.LLM.APIKey, cfg.Notion.Token)
	log.Printf("[INFO] starting diaria version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	os.Exit(run(ctx, cfg, opts))
}

// run wires the pipeline and executes the requested operation, returning the
// process exit code
func run(ctx context.Context, cfg *config.Config, opts Opts) int {
	cat := catalog.New(cfg.Sources(domain.TypeArticle), cfg.Sources(domain.TypePodcast))
	feedParser := feed.NewParser(cfg.Resolver.FetchTimeout, cfg.Extraction.UserAgent)

	if opts.Verify {
		return verifyFeeds(ctx, feedParser, cat)
	}

	day, err := runDay(opts.Date)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return exitError
	}

	kinds, err := runKinds(opts.Type)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return exitError
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	extractor := content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent, cfg.Extraction.MaxBodyChars)
	analyzer := llm.NewAnalyzer(cfg.LLM)
	notionClient := notion.NewClient(cfg.Notion)

	orch := resolver.New(resolver.Params{
		Catalog:    cat,
		Schedule:   catalog.NewSchedule(cat, cfg.Schedule),
		Fetcher:    feedParser,
		Selector:   feed.NewSelector(cfg.Resolver.EntriesPerSource, seed),
		Classifier: classify.New(extractor, analyzer),
		Guard:      dedup.New(notionClient, cfg.Dedup.SimilarityThreshold, cfg.Dedup.RecentWindow),
		Publisher: &publisher{
			store:   notionClient,
			itunes:  itunes.NewClient(cfg.ITunes),
			catalog: cat,
			dryRun:  opts.DryRun,
		},
		MaxPasses: cfg.Resolver.MaxPasses,
		PassPause: cfg.Resolver.PassPause,
	})

	log.Printf("[INFO] resolving %s for %s", opts.Type, day.Format("2006-01-02"))
	results := orch.Run(ctx, day, kinds)

	return reportResults(results, kinds)
}

// reportResults logs per-kind outcomes and folds them into one exit code:
// any internal error wins, then exhaustion, then success
func reportResults(results map[domain.ContentType]resolver.Outcome, kinds []domain.ContentType) int {
	code := exitPublished
	for _, kind := range kinds {
		outcome := results[kind]
		switch {
		case outcome.Err() != nil:
			log.Printf("[ERROR] %s run failed: %v", kind, outcome.Err())
			code = exitError
		case outcome.IsExhausted():
			log.Printf("[WARN] no %s material found today", kind)
			if code == exitPublished {
				code = exitExhausted
			}
		default:
			item, url, _ := outcome.IsPublished()
			log.Printf("[INFO] %s published: %q (%s, %s) -> %s", kind, item.Title, item.Difficulty, item.Topic, url)
		}
	}
	return code
}

// verifyFeeds checks every catalog feed and prints a per-source report
func verifyFeeds(ctx context.Context, feedParser *feed.Parser, cat *catalog.Catalog) int {
	sources := append(cat.Sources(domain.TypeArticle), cat.Sources(domain.TypePodcast)...)
	report := feed.CheckAll(ctx, feedParser, sources, 4)

	failed := 0
	for _, health := range report {
		if health.Status == feed.StatusOK {
			log.Printf("[INFO] %-20s ok, %d entries", health.SourceID, health.Entries)
			continue
		}
		failed++
		log.Printf("[WARN] %-20s %s: %v", health.SourceID, health.Status, health.Err)
	}

	if failed > 0 {
		log.Printf("[ERROR] %d of %d feeds unhealthy", failed, len(report))
		return exitError
	}
	log.Printf("[INFO] all %d feeds healthy", len(report))
	return exitPublished
}

// runDay parses the date override, defaulting to today
func runDay(override string) (time.Time, error) {
	if override == "" {
		return time.Now(), nil
	}
	day, err := time.Parse("2006-01-02", override)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", override, err)
	}
	return day, nil
}

// runKinds maps the type flag to content types
func runKinds(typ string) ([]domain.ContentType, error) {
	switch typ {
	case "article":
		return []domain.ContentType{domain.TypeArticle}, nil
	case "podcast":
		return []domain.ContentType{domain.TypePodcast}, nil
	case "all":
		return []domain.ContentType{domain.TypeArticle, domain.TypePodcast}, nil
	}
	return nil, fmt.Errorf("unknown content type %q", typ)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
