package subscription

import (
	"github.com/fitcoach-io/fitcoach/internal/models"
)

var zeroLimits = models.PlanLimits{}

var catalog = []models.SubscriptionPlan{
	{
		ID:          models.PlanStarter,
		Name:        "Starter",
		Price:       19.97,
		Description: "Para quem está começando",
		Features: []string{
			"1 dieta nova por mês",
			"1 treino por mês",
			"Análise corporal básica",
			"Suporte por email",
		},
		Limits: models.PlanLimits{
			DietsPerMonth:    1,
			WorkoutsPerMonth: 1,
		},
	},
	{
		ID:          models.PlanStandard,
		Name:        "Standard",
		Price:       29.97,
		Description: "Mais flexibilidade para ajustar sua dieta",
		Features: []string{
			"Pode mudar dieta no meio do mês",
			"2 treinos por mês",
			"Análise corporal avançada",
			"Suporte prioritário",
			"Relatórios de progresso",
		},
		Limits: models.PlanLimits{
			DietsPerMonth:    2,
			WorkoutsPerMonth: 2,
			CanChangeDiet:    true,
		},
		Popular: true,
	},
	{
		ID:          models.PlanPremium,
		Name:        "Premium",
		Price:       49.97,
		Description: "Acompanhamento completo com consultoria de suplementação",
		Features: []string{
			"Dietas ilimitadas (quando quiser)",
			"4 treinos por mês",
			"Consultoria de suplementação",
			"Dúvidas sobre manipulados",
			"Suporte 24/7",
			"Análise corporal premium",
			"Acompanhamento personalizado",
		},
		Limits: models.PlanLimits{
			DietsPerMonth:          models.Unlimited,
			WorkoutsPerMonth:       4,
			CanChangeDiet:          true,
			SupplementConsultation: true,
		},
		MinimumMonths: 4,
	},
}

// Catalog returns a copy of the static plan catalog, cheapest first.
func Catalog() []models.SubscriptionPlan {
	out := make([]models.SubscriptionPlan, len(catalog))
	for i, p := range catalog {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Plan looks up a catalog entry by id.
func Plan(id models.PlanID) (models.SubscriptionPlan, bool) {
	for _, p := range catalog {
		if p.ID == id {
			p.Features = append([]string(nil), p.Features...)
			return p, true
		}
	}
	return models.SubscriptionPlan{}, false
}

func limitsFor(id models.PlanID) (models.PlanLimits, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p.Limits, true
		}
	}
	return zeroLimits, false
}
