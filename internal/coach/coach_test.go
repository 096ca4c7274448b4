package coach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerAlwaysStartsWithDisclaimer(t *testing.T) {
	s := NewSelector()
	for _, q := range []string{"", "whey?", "qual a capital da França", "CREATINA faz mal?"} {
		assert.True(t, strings.HasPrefix(s.Answer(q).Text, Disclaimer), q)
	}
}

func TestAnswerTopicSelection(t *testing.T) {
	tests := []struct {
		question string
		topic    string
	}{
		{"Quanto de WHEY eu tomo?", "whey"},
		{"creatina causa queda de cabelo?", "creatina"},
		{"como aumentar testosterona", "hormonios"},
		{"BCAA vale a pena?", "bcaa"},
		{"pré-treino à noite atrapalha?", "pre-treino"},
		{"termogênico funciona?", "termogenicos"},
		{"preciso de multivitamínico?", "vitaminas"},
		{"quantas vezes por semana de musculação?", "treino"},
		{"melhor dieta para emagrecimento", "alimentacao"},
		{"quantas horas de sono", "sono"},
		{"quanta água beber", "hidratacao"},
		{"oxandrolona é segura?", "anabolizantes"},
		{"como fazer tpc", "ciclos"},
		{"gh natural", "gh"},
		{"glutamina serve pra que", "glutamina"},
		{"ômega 3 todo dia?", "omega-3"},
		{"ashwagandha reduz cortisol?", "ashwagandha"},
		{"clembuterol seca?", "clembuterol"},
		{"o que são sarms", "sarms"},
		{"qual a capital da França", "fallback"},
	}
	s := NewSelector()
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.topic, s.Answer(tt.question).Topic)
		})
	}
}

func TestAnswerFirstMatchWins(t *testing.T) {
	s := NewSelector()
	// whey comes before creatina in the table
	assert.Equal(t, "whey", s.Answer("posso misturar creatina com whey?").Topic)
	// the compound table is only reached when no primary topic matches
	assert.Equal(t, "vitaminas", s.Answer("ômega 3 ou vitamina D?").Topic)
}

func TestFallbackText(t *testing.T) {
	a := NewSelector().Answer("me conta uma piada")
	require.Equal(t, "fallback", a.Topic)
	assert.Equal(t, Disclaimer+Fallback, a.Text)
}

func TestTopicsOrder(t *testing.T) {
	names := NewSelector().Topics()
	require.NotEmpty(t, names)
	assert.Equal(t, "whey", names[0])
	assert.Equal(t, "gh", names[len(primaryTopics)-1])
}
