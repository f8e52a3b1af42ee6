package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpalomo/diaria/pkg/classify/mocks"
	"github.com/vpalomo/diaria/pkg/domain"
)

func healthyAnalyzer() *mocks.AnalyzerMock {
	return &mocks.AnalyzerMock{
		DifficultyFunc: func(ctx context.Context, title, body string) (string, error) {
			return "B1+", nil
		},
		GrammarPointsFunc: func(ctx context.Context, title, body string) ([]string, error) {
			return []string{`Subjuntivo presente - "cuando llegue"`}, nil
		},
		ColloquialismsFunc: func(ctx context.Context, title, body string) ([]string, error) {
			return []string{"echar una mano (to lend a hand)"}, nil
		},
		LearningGoalsFunc: func(ctx context.Context, title, body string) ([]string, error) {
			return []string{"Practicar el vocabulario económico"}, nil
		},
	}
}

func TestClassifier_Article(t *testing.T) {
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
			return "El Gobierno ha aprobado un paquete de medidas sobre impuestos y empleo.", nil
		},
	}
	classifier := New(extractor, healthyAnalyzer())

	cand := domain.Candidate{
		SourceID: "elpais",
		Kind:     domain.TypeArticle,
		Title:    "El Gobierno aprueba nuevas medidas",
		Link:     "https://elpais.com/economia/medidas.html",
		Summary:  "<p>Resumen con <b>etiquetas</b></p>",
	}

	item, err := classifier.Classify(context.Background(), cand)
	require.NoError(t, err)

	assert.Equal(t, "Resumen con etiquetas", item.Summary)
	assert.Contains(t, item.BodyText, "paquete de medidas")
	assert.Equal(t, "economy", item.Topic)
	assert.Equal(t, "B1+", item.Difficulty)
	assert.Equal(t, []string{`Subjuntivo presente - "cuando llegue"`}, item.Analysis.GrammarPoints)
	assert.Empty(t, item.EpisodeNumber, "articles carry no episode metadata")
	assert.Empty(t, item.Duration)

	require.Len(t, extractor.ExtractCalls(), 1)
	assert.Equal(t, cand.Link, extractor.ExtractCalls()[0].URLStr)
}

func TestClassifier_Podcast(t *testing.T) {
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
			t.Fatal("extractor must not be called for podcasts")
			return "", nil
		},
	}
	classifier := New(extractor, healthyAnalyzer())

	cand := domain.Candidate{
		SourceID:     "hoy-hablamos",
		Kind:         domain.TypePodcast,
		Title:        "Ep. 42: La cocina española",
		Link:         "https://hoyhablamos.com/ep42",
		Summary:      "Hoy hablamos de la comida y las recetas tradicionales.",
		FeedDuration: "1421",
	}

	item, err := classifier.Classify(context.Background(), cand)
	require.NoError(t, err)

	assert.Equal(t, "42", item.EpisodeNumber)
	assert.Equal(t, "23:41", item.Duration)
	assert.Equal(t, "food", item.Topic)
	assert.Equal(t, cand.Summary, item.BodyText, "podcast body falls back to summary")
	assert.Empty(t, extractor.ExtractCalls())
}

func TestClassifier_ExtractionFailureDegrades(t *testing.T) {
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
			return "", errors.New("status 403")
		},
	}
	classifier := New(extractor, healthyAnalyzer())

	cand := domain.Candidate{
		Kind:    domain.TypeArticle,
		Title:   "Elecciones en el congreso",
		Link:    "https://elpais.com/x",
		Summary: "El congreso celebra elecciones esta semana.",
	}

	item, err := classifier.Classify(context.Background(), cand)
	require.NoError(t, err, "extraction failure must not block classification")
	assert.Equal(t, "El congreso celebra elecciones esta semana.", item.BodyText)
	assert.Equal(t, "politics", item.Topic)
}

func TestClassifier_AnalyzerFailureDegrades(t *testing.T) {
	boom := errors.New("llm request failed")
	analyzer := &mocks.AnalyzerMock{
		DifficultyFunc: func(ctx context.Context, title, body string) (string, error) {
			return "", boom
		},
		GrammarPointsFunc: func(ctx context.Context, title, body string) ([]string, error) {
			return nil, boom
		},
		ColloquialismsFunc: func(ctx context.Context, title, body string) ([]string, error) {
			return nil, boom
		},
		LearningGoalsFunc: func(ctx context.Context, title, body string) ([]string, error) {
			return nil, boom
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
			return "texto del artículo con contenido suficiente", nil
		},
	}
	classifier := New(extractor, analyzer)

	cand := domain.Candidate{Kind: domain.TypeArticle, Title: "Título", Link: "https://x.es/a", Summary: "resumen"}
	item, err := classifier.Classify(context.Background(), cand)
	require.NoError(t, err, "analyzer failure must not block publication")

	assert.Equal(t, DefaultDifficulty, item.Difficulty)
	assert.Empty(t, item.Analysis.GrammarPoints)
	assert.Empty(t, item.Analysis.Colloquialisms)
	assert.Empty(t, item.Analysis.LearningGoals)
}

func TestClassifier_EmptyColloquialismsAreValid(t *testing.T) {
	analyzer := healthyAnalyzer()
	analyzer.ColloquialismsFunc = func(ctx context.Context, title, body string) ([]string, error) {
		return []string{}, nil
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
			return "texto formal sin expresiones coloquiales", nil
		},
	}
	classifier := New(extractor, analyzer)

	item, err := classifier.Classify(context.Background(), domain.Candidate{
		Kind: domain.TypeArticle, Title: "Informe anual", Link: "https://x.es/b",
	})
	require.NoError(t, err)
	assert.NotNil(t, item.Analysis.Colloquialisms)
	assert.Empty(t, item.Analysis.Colloquialisms)
	assert.Equal(t, "B1+", item.Difficulty, "other analyses unaffected")
}

func TestTopic(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.ContentType
		title string
		body  string
		want  string
	}{
		{"politics article", domain.TypeArticle, "El Congreso vota la ley", "El gobierno defiende la votación", "politics"},
		{"economy article", domain.TypeArticle, "Sube la inflación", "Los precios y el empleo preocupan al banco central", "economy"},
		{"food podcast", domain.TypePodcast, "La cocina de mi abuela", "Recetas y platos de la gastronomía tradicional", "food"},
		{"grammar podcast", domain.TypePodcast, "El subjuntivo", "Hoy repasamos los verbos y pronombres", "grammar"},
		{"learner topics not applied to articles", domain.TypeArticle, "La cocina de mi abuela", "Recetas y platos tradicionales", "general"},
		{"no match", domain.TypeArticle, "Miscelánea", "texto sin palabras clave", "general"},
		{"tie goes to earlier rule", domain.TypeArticle, "gobierno e inflación", "", "politics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Topic(tt.kind, tt.title, tt.body))
		})
	}
}
