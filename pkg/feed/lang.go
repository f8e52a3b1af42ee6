package feed

import "strings"

// function-word patterns used by the lexical language gate. Substring
// matching with trailing spaces is crude but has held up well on feed
// titles and summaries, where full language detection is overkill.
var (
	spanishPatterns = []string{"el ", "la ", "es ", "que ", "con ", "de ", "en ", "por ", "para "}
	englishPatterns = []string{"the ", "and ", "is ", "are ", "was ", "were ", "this ", "that "}

	// explicit markers settle the call before any counting; syndicated
	// feeds occasionally swap in a different show entirely. Spanish ones
	// win, so "ñ" shields words like "mañana" from the English substrings
	// ("president" in "presidente")
	spanishIndicators = []string{"radio ambulante", "español", "española", "spanishpodcast", "hoy hablamos", "dele", "notes in spanish", "ñ", "españolistos"}
	englishIndicators = []string{"the daily", "journalism", "nytimes", "npr", "america", "president", "congress", "election", "english"}
)

// IsSpanish judges whether the text is Spanish. Explicit Spanish markers
// accept, then explicit English markers reject, then function-word counts
// decide. Entries the counts cannot separate are accepted: the catalog only
// carries verified Spanish feeds, so the gate exists to catch the odd
// syndicated English episode, not to prove Spanish-ness. Used on podcast
// candidates; entries failing it are skipped, not deprioritized.
func IsSpanish(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)

	for _, ind := range spanishIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	for _, ind := range englishIndicators {
		if strings.Contains(lower, ind) {
			return false
		}
	}

	spanish := 0
	for _, p := range spanishPatterns {
		if strings.Contains(lower, p) {
			spanish++
		}
	}
	english := 0
	for _, p := range englishPatterns {
		if strings.Contains(lower, p) {
			english++
		}
	}
	return spanish >= english
}
