package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vpalomo/diaria/pkg/config"
	"github.com/vpalomo/diaria/pkg/domain"
)

func TestSchedule_PrimaryPodcast(t *testing.T) {
	cat := testCatalog()
	sched := NewSchedule(cat, config.ScheduleConfig{
		WeekdayPodcasts: map[string]string{
			"monday":  "hoy-hablamos",
			"tuesday": "radio-ambulante",
			"friday":  "spanishpodcast",
		},
	})

	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "hoy-hablamos", sched.Primary(domain.TypePodcast, monday).ID)

	tuesday := monday.AddDate(0, 0, 1)
	assert.Equal(t, "radio-ambulante", sched.Primary(domain.TypePodcast, tuesday).ID)

	// no assignment for wednesday, falls back to first catalog source
	wednesday := monday.AddDate(0, 0, 2)
	assert.Equal(t, "hoy-hablamos", sched.Primary(domain.TypePodcast, wednesday).ID)

	// weekends fall back too
	saturday := monday.AddDate(0, 0, 5)
	assert.Equal(t, "hoy-hablamos", sched.Primary(domain.TypePodcast, saturday).ID)
}

func TestSchedule_PrimaryReading(t *testing.T) {
	cat := testCatalog()
	sched := NewSchedule(cat, config.ScheduleConfig{
		CourseStart: "2026-07-01",
		ReadingPhases: []config.ReadingPhase{
			{UntilWeek: 2, SourceID: "veinte-minutos"},
			{UntilWeek: 4, SourceID: "elpais"},
			{SourceID: "elmundo"},
		},
	})

	// week 1
	day := time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "veinte-minutos", sched.Primary(domain.TypeArticle, day).ID)

	// week 3
	day = time.Date(2026, 7, 16, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "elpais", sched.Primary(domain.TypeArticle, day).ID)

	// week 9, open-ended tail phase
	day = time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "elmundo", sched.Primary(domain.TypeArticle, day).ID)

	// before the course start counts as week 1
	day = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "veinte-minutos", sched.Primary(domain.TypeArticle, day).ID)
}

func TestSchedule_NoConfig(t *testing.T) {
	cat := testCatalog()
	sched := NewSchedule(cat, config.ScheduleConfig{})

	day := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "veinte-minutos", sched.Primary(domain.TypeArticle, day).ID)
	assert.Equal(t, "hoy-hablamos", sched.Primary(domain.TypePodcast, day).ID)
}
