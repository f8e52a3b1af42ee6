package feed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var episodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Ep\.?\s*(\d+)`),
	regexp.MustCompile(`(?i)Episode\s*(\d+)`),
	regexp.MustCompile(`#(\d+)`),
	regexp.MustCompile(`(\d{3,4})`),
}

// EpisodeNumber extracts an episode number from a podcast title.
// Returns an empty string when the title carries none.
func EpisodeNumber(title string) string {
	for _, re := range episodePatterns {
		if m := re.FindStringSubmatch(title); m != nil {
			return m[1]
		}
	}
	return ""
}

var (
	durationMinRe   = regexp.MustCompile(`(\d+)\s*min`)
	durationClockRe = regexp.MustCompile(`(\d+):(\d+)`)

	// shown when neither the feed nor the summary carries a duration
	defaultDuration = "15-25 min"
)

// Duration normalizes a podcast episode duration. The itunes:duration value
// is preferred: plain seconds become m:ss, anything already clock-shaped is
// kept. Otherwise the summary is scanned for common duration patterns.
func Duration(itunesDuration, summary string) string {
	if itunesDuration != "" {
		if secs, err := strconv.Atoi(strings.TrimSpace(itunesDuration)); err == nil {
			return fmt.Sprintf("%d:%02d", secs/60, secs%60)
		}
		return itunesDuration
	}

	if m := durationClockRe.FindStringSubmatch(summary); m != nil {
		return fmt.Sprintf("%s:%s", m[1], m[2])
	}
	if m := durationMinRe.FindStringSubmatch(summary); m != nil {
		return m[1] + " min"
	}

	return defaultDuration
}
