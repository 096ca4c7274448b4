package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

// SimulatedBodyAnalyzer returns a fixed assessment.
type SimulatedBodyAnalyzer struct {
	Delay time.Duration
}

func (a SimulatedBodyAnalyzer) Analyze(ctx context.Context, photos models.PhotoSet) (*models.AnalysisResult, error) {
	if photos.Empty() {
		return nil, ErrNoPhotos
	}
	if err := wait(ctx, a.Delay); err != nil {
		return nil, err
	}
	return &models.AnalysisResult{
		Proportions: "Proporções corporais equilibradas, com leve predominância do tronco superior em relação aos membros inferiores.",
		Strengths: []string{
			"Boa definição de ombros",
			"Postura adequada",
			"Simetria entre os lados direito e esquerdo",
		},
		ImprovementAreas: []string{
			"Desenvolvimento de membros inferiores",
			"Redução de gordura abdominal",
			"Fortalecimento do core",
		},
		Recommendations: []string{
			"Incluir agachamento e leg press duas vezes por semana",
			"Manter déficit calórico moderado para reduzir gordura abdominal",
			"Adicionar pranchas e exercícios de estabilidade ao final dos treinos",
		},
	}, nil
}

// SimulatedDietExtractor returns the same three meals for any valid file.
type SimulatedDietExtractor struct {
	Delay time.Duration
}

func (e SimulatedDietExtractor) Extract(ctx context.Context, file File) ([]models.MealEntry, error) {
	if err := ValidateDietFile(file); err != nil {
		return nil, err
	}
	if err := wait(ctx, e.Delay); err != nil {
		return nil, err
	}
	return []models.MealEntry{
		{
			Name: "Café da manhã",
			Time: "07:00",
			Foods: []models.FoodEntry{
				{Food: "Leite semidesnatado", Quantity: "250", Measurement: models.MeasureML},
				{Food: "Torrada integral", Quantity: "2", Measurement: models.MeasureUnit},
				{Food: "Whey protein", Quantity: "30", Measurement: models.MeasureGrams},
			},
		},
		{
			Name: "Lanche da manhã",
			Time: "10:00",
			Foods: []models.FoodEntry{
				{Food: "Banana", Quantity: "1", Measurement: models.MeasureUnit},
				{Food: "Castanha do Pará", Quantity: "5", Measurement: models.MeasureUnit},
			},
		},
		{
			Name: "Almoço",
			Time: "12:30",
			Foods: []models.FoodEntry{
				{Food: "Peito de frango grelhado", Quantity: "150", Measurement: models.MeasureGrams},
				{Food: "Arroz integral", Quantity: "100", Measurement: models.MeasureGrams},
				{Food: "Brócolis refogado", Quantity: "100", Measurement: models.MeasureGrams},
				{Food: "Azeite extra virgem", Quantity: "1", Measurement: models.MeasureTablespoon},
			},
		},
	}, nil
}

// StaticVideoFinder returns one demo URL for every exercise.
type StaticVideoFinder struct {
	URL string
}

func (f StaticVideoFinder) FindVideo(ctx context.Context, exercise string) (string, error) {
	if strings.TrimSpace(exercise) == "" {
		return "", ErrVideoNotFound
	}
	if f.URL == "" {
		return DemoVideoURL, nil
	}
	return f.URL, nil
}
