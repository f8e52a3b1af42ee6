package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/vpalomo/diaria/pkg/config"
)

// NoColloquialMarker is the sentinel the model returns when a text carries no
// colloquial expressions. Its presence means "analyzed, nothing found", which
// is a valid result and must not be confused with an analysis failure.
const NoColloquialMarker = "NO_COLLOQUIAL_EXPRESSIONS_FOUND"

// limits on list-valued analyses
const (
	maxGrammarPoints   = 4
	maxColloquialisms  = 5
	maxLearningGoals   = 4
	promptContentChars = 1500
)

// validLevels are the CEFR levels the difficulty analysis may return.
// The half-step levels show up in language-school curricula and the model
// uses them for texts straddling a boundary.
var validLevels = map[string]bool{
	"A1": true, "A2": true,
	"B1": true, "B1+": true,
	"B2": true, "B2+": true,
	"C1": true, "C2": true,
}

const systemPrompt = `You are a Spanish language teacher preparing daily study material for an intermediate (B2) learner.
Answer in the exact format each task requests, with no preamble and no commentary.`

// Analyzer runs per-item language analyses against an OpenAI-compatible API
type Analyzer struct {
	client *openai.Client
	config config.LLMConfig
}

// NewAnalyzer creates an analyzer from the LLM configuration
func NewAnalyzer(cfg config.LLMConfig) *Analyzer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Analyzer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Difficulty estimates the CEFR level of the text. An unrecognized level in
// the response is an error; callers decide the fallback.
func (a *Analyzer) Difficulty(ctx context.Context, title, body string) (string, error) {
	prompt := fmt.Sprintf(`Estimate the CEFR difficulty level of this Spanish text for a learner.
Respond with ONLY the level: A1, A2, B1, B1+, B2, B2+, C1 or C2.

Title: %s
Text: %s`, title, clip(body, promptContentChars))

	content, err := a.complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	level := strings.ToUpper(strings.TrimSpace(content))
	level = strings.Trim(level, ".")
	if !validLevels[level] {
		return "", fmt.Errorf("unrecognized difficulty level %q", content)
	}
	return level, nil
}

// GrammarPoints lists notable grammar structures found in the text
func (a *Analyzer) GrammarPoints(ctx context.Context, title, body string) ([]string, error) {
	prompt := fmt.Sprintf(`List the most instructive Spanish grammar structures a B2 learner should notice in this text (at most %d).
One per line, each a short name plus an example phrase from the text, e.g.:
Subjuntivo presente - "cuando llegue el momento"

Title: %s
Text: %s`, maxGrammarPoints, title, clip(body, promptContentChars))

	content, err := a.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseList(content, maxGrammarPoints), nil
}

// Colloquialisms lists informal expressions in the text. An empty slice with
// a nil error means the text was analyzed and carries none.
func (a *Analyzer) Colloquialisms(ctx context.Context, title, body string) ([]string, error) {
	prompt := fmt.Sprintf(`List colloquial or idiomatic Spanish expressions in this text with a brief English gloss (at most %d), one per line.
If there are none, respond with exactly %s.

Title: %s
Text: %s`, maxColloquialisms, NoColloquialMarker, title, clip(body, promptContentChars))

	content, err := a.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.Contains(content, NoColloquialMarker) {
		return []string{}, nil
	}
	return parseList(content, maxColloquialisms), nil
}

// LearningGoals suggests what a learner should take away from the item
func (a *Analyzer) LearningGoals(ctx context.Context, title, body string) ([]string, error) {
	prompt := fmt.Sprintf(`Suggest concrete learning goals a B2 Spanish learner should pursue with this material (at most %d).
One per line, each starting with a verb, e.g. "Practicar el pretérito imperfecto describiendo la situación".

Title: %s
Text: %s`, maxLearningGoals, title, clip(body, promptContentChars))

	content, err := a.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseList(content, maxLearningGoals), nil
}

// complete sends a single-turn chat completion and returns the raw content
func (a *Analyzer) complete(ctx context.Context, prompt string) (string, error) {
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseList splits a line-per-entry response, stripping bullets and numbering
func parseList(content string, limit int) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•")
		for i := 1; i <= limit; i++ {
			line = strings.TrimPrefix(line, fmt.Sprintf("%d.", i))
			line = strings.TrimPrefix(line, fmt.Sprintf("%d)", i))
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}

// clip bounds the body text included in a prompt
func clip(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
