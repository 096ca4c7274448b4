// Package coach answers supplement and training questions from a fixed
// table of researched answers. It is a lookup, not a generative model.
package coach

import (
	"strings"
)

// Disclaimer prefixes every answer.
const Disclaimer = "Essas são informações baseadas em pesquisa e não constituem uma recomendação. A IA não é médica e não está te receitando ou recomendando nada.\n\n"

// Fallback is returned when no topic matches.
const Fallback = "Como pesquisador fitness atuando para fins ilustrativos, vou fornecer informações baseadas em estudos e literatura disponível sobre sua pergunta. Atuo como fonte de conhecimento geral para ajudá-lo a entender melhor o tema. Cada situação é única e sempre recomendo consultar profissionais qualificados (médicos, nutricionistas, educadores físicos) para orientações personalizadas e adequadas ao seu caso específico. Para uma resposta mais útil, tente perguntar sobre um suplemento, treino ou hábito específico."

// Topic is one entry of the answer table.
type Topic struct {
	Name     string
	Keywords []string
	Answer   string
}

// Matches reports whether the lowercased question contains any keyword.
func (t Topic) Matches(question string) bool {
	for _, k := range t.Keywords {
		if strings.Contains(question, k) {
			return true
		}
	}
	return false
}

// Answer is the outcome of a lookup.
type Answer struct {
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

// Selector walks its topics in order; the first match wins.
type Selector struct {
	topics []Topic
}

// NewSelector builds a selector over the primary and compound tables.
func NewSelector() *Selector {
	topics := make([]Topic, 0, len(primaryTopics)+len(compoundTopics))
	topics = append(topics, primaryTopics...)
	topics = append(topics, compoundTopics...)
	return &Selector{topics: topics}
}

// Topics lists the topic names in evaluation order.
func (s *Selector) Topics() []string {
	names := make([]string, len(s.topics))
	for i, t := range s.topics {
		names[i] = t.Name
	}
	return names
}

// Answer returns the disclaimer followed by the first matching paragraph.
func (s *Selector) Answer(question string) Answer {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, t := range s.topics {
		if t.Matches(q) {
			return Answer{Topic: t.Name, Text: Disclaimer + t.Answer}
		}
	}
	return Answer{Topic: "fallback", Text: Disclaimer + Fallback}
}
