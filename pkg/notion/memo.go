package notion

import (
	"fmt"

	"github.com/vpalomo/diaria/pkg/domain"
)

// memoBlocks renders the study memo as page content. The layout follows the
// daily-review habit: what it is, what to listen/read for, then the language
// notes with the hardest material last.
func memoBlocks(item domain.ClassifiedItem) []map[string]any {
	var blocks []map[string]any

	blocks = append(blocks, heading("Material de hoy"))

	intro := fmt.Sprintf("%s · nivel %s · tema: %s", kindLabel(item.Kind), item.Difficulty, item.Topic)
	if item.Duration != "" {
		intro += " · " + item.Duration
	}
	blocks = append(blocks, paragraph(intro))

	if item.Summary != "" {
		blocks = append(blocks, paragraph(item.Summary))
	}

	if len(item.Analysis.LearningGoals) > 0 {
		blocks = append(blocks, heading("Objetivos"))
		for _, goal := range item.Analysis.LearningGoals {
			blocks = append(blocks, bullet(goal))
		}
	}

	if len(item.Analysis.GrammarPoints) > 0 {
		blocks = append(blocks, heading("Gramática"))
		for _, point := range item.Analysis.GrammarPoints {
			blocks = append(blocks, bullet(point))
		}
	}

	if len(item.Analysis.Colloquialisms) > 0 {
		blocks = append(blocks, heading("Expresiones"))
		for _, expr := range item.Analysis.Colloquialisms {
			blocks = append(blocks, bullet(expr))
		}
	}

	blocks = append(blocks, paragraph("Enlace: "+item.Link))
	return blocks
}

func kindLabel(kind domain.ContentType) string {
	if kind == domain.TypePodcast {
		return "Podcast"
	}
	return "Artículo"
}

func heading(text string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   "heading_2",
		"heading_2": map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": text}}},
		},
	}
}

func paragraph(text string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   "paragraph",
		"paragraph": map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": text}}},
		},
	}
}

func bullet(text string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   "bulleted_list_item",
		"bulleted_list_item": map[string]any{
			"rich_text": []map[string]any{{"text": map[string]any{"content": text}}},
		},
	}
}
