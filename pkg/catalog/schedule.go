package catalog

import (
	"strings"
	"time"

	"github.com/vpalomo/diaria/pkg/config"
	"github.com/vpalomo/diaria/pkg/domain"
)

// Schedule selects the day's primary source per content type.
// Podcasts rotate by weekday; the reading source progresses by course week
// so that early weeks get easier material.
type Schedule struct {
	catalog         *Catalog
	courseStart     time.Time
	weekdayPodcasts map[time.Weekday]string
	readingPhases   []config.ReadingPhase
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// NewSchedule builds a schedule from config. The config is already
// validated, so unknown weekday names are simply skipped.
func NewSchedule(cat *Catalog, cfg config.ScheduleConfig) *Schedule {
	s := &Schedule{
		catalog:         cat,
		weekdayPodcasts: make(map[time.Weekday]string),
		readingPhases:   cfg.ReadingPhases,
	}
	if cfg.CourseStart != "" {
		s.courseStart, _ = time.Parse("2006-01-02", cfg.CourseStart)
	}
	for name, id := range cfg.WeekdayPodcasts {
		if wd, ok := weekdayNames[strings.ToLower(name)]; ok {
			s.weekdayPodcasts[wd] = id
		}
	}
	return s
}

// Primary returns the day's primary source for the given content type.
// Days without an explicit assignment fall back to the first catalog source.
func (s *Schedule) Primary(kind domain.ContentType, day time.Time) domain.Source {
	switch kind {
	case domain.TypePodcast:
		if id, ok := s.weekdayPodcasts[day.Weekday()]; ok {
			if src, err := s.catalog.Get(kind, id); err == nil {
				return src
			}
		}
	case domain.TypeArticle:
		week := s.courseWeek(day)
		for _, phase := range s.readingPhases {
			if phase.UntilWeek == 0 || week <= phase.UntilWeek {
				if src, err := s.catalog.Get(kind, phase.SourceID); err == nil {
					return src
				}
			}
		}
	}
	return s.catalog.Sources(kind)[0]
}

// courseWeek returns the 1-based week number since the course start.
// Without a configured start every day is week 1.
func (s *Schedule) courseWeek(day time.Time) int {
	if s.courseStart.IsZero() || day.Before(s.courseStart) {
		return 1
	}
	return int(day.Sub(s.courseStart).Hours()/(24*7)) + 1
}
