package classify

import (
	"strings"

	"github.com/vpalomo/diaria/pkg/domain"
)

// topicGeneral is assigned when no keyword list matches
const topicGeneral = "general"

// topicRule pairs a topic label with the Spanish keywords that vote for it.
// Rules are ordered; a tie goes to the earlier rule.
type topicRule struct {
	topic    string
	keywords []string
}

// articleTopics cover the news taxonomy. Keyword lists are deliberately
// short: titles and ledes are the matching surface, not full bodies.
var articleTopics = []topicRule{
	{"politics", []string{"gobierno", "congreso", "elecciones", "política", "ministro", "presidente", "partido", "ley", "senado", "votación"}},
	{"economy", []string{"economía", "inflación", "empleo", "banco", "euros", "mercado", "impuestos", "precio", "salario", "pib"}},
	{"society", []string{"sociedad", "educación", "sanidad", "vivienda", "familia", "jóvenes", "igualdad", "inmigración"}},
	{"sports", []string{"fútbol", "liga", "partido de", "deporte", "jugador", "selección", "baloncesto", "tenis", "mundial"}},
	{"technology", []string{"tecnología", "inteligencia artificial", "internet", "digital", "aplicación", "ciberseguridad", "startup"}},
	{"culture", []string{"cultura", "cine", "música", "libro", "arte", "teatro", "festival", "museo", "literatura"}},
	{"international", []string{"internacional", "guerra", "unión europea", "estados unidos", "frontera", "acuerdo", "onu", "cumbre"}},
}

// podcastTopics extend the news taxonomy with learner-oriented themes common
// in Spanish-teaching shows
var podcastTopics = append([]topicRule{
	{"grammar", []string{"gramática", "subjuntivo", "verbos", "pronombres", "pretérito", "condicional", "expresiones"}},
	{"food", []string{"comida", "cocina", "receta", "gastronomía", "restaurante", "tapas", "plato"}},
	{"travel", []string{"viaje", "viajar", "turismo", "ciudad", "vacaciones", "destino"}},
	{"work", []string{"trabajo", "oficina", "entrevista", "empresa", "profesión", "jefe"}},
	{"family", []string{"familia", "padres", "hijos", "abuelos", "amigos", "pareja"}},
	{"health", []string{"salud", "médico", "ejercicio", "enfermedad", "hospital", "bienestar"}},
	{"education", []string{"educación", "escuela", "universidad", "estudiar", "aprender", "examen"}},
}, articleTopics...)

// Topic assigns a topic label by counting keyword hits over the title and
// body. Earlier rules win ties, unmatched text gets "general".
func Topic(kind domain.ContentType, title, body string) string {
	rules := articleTopics
	if kind == domain.TypePodcast {
		rules = podcastTopics
	}

	text := strings.ToLower(title + " " + body)

	best, bestHits := topicGeneral, 0
	for _, rule := range rules {
		hits := 0
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = rule.topic, hits
		}
	}
	return best
}
