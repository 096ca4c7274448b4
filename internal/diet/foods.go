package diet

import (
	"strings"

	"github.com/fitcoach-io/fitcoach/internal/models"
)

var (
	wheyProtein   = models.PlannedFood{Food: "Whey Protein", Quantity: "30g", Calories: 120, Protein: 25, Carbs: 2, Fat: 1}
	hipercalorico = models.PlannedFood{Food: "Hipercalórico", Quantity: "40g", Calories: 150, Protein: 8, Carbs: 25, Fat: 2}
	banana        = models.PlannedFood{Food: "Banana", Quantity: "1 unidade", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3}
	aveia         = models.PlannedFood{Food: "Aveia", Quantity: "50g", Calories: 190, Protein: 7, Carbs: 32, Fat: 3.5}
)

// Goal-based defaults used when a change request names no known food.
var (
	gainDefaults = []models.PlannedFood{
		wheyProtein,
		{Food: "Aveia", Quantity: "40g", Calories: 152, Protein: 5.6, Carbs: 25.6, Fat: 2.8},
		banana,
	}
	cutDefaults = []models.PlannedFood{
		{Food: "Claras de ovo", Quantity: "4 unidades", Calories: 68, Protein: 14.4, Carbs: 0.8, Fat: 0.2},
		{Food: "Aveia", Quantity: "30g", Calories: 114, Protein: 4.2, Carbs: 19.2, Fat: 2.1},
	}
	maintainDefaults = []models.PlannedFood{
		{Food: "Iogurte natural", Quantity: "170g", Calories: 104, Protein: 5.9, Carbs: 7.9, Fat: 5.5},
		{Food: "Granola", Quantity: "40g", Calories: 180, Protein: 4, Carbs: 28, Fat: 6},
	}
)

type goalBranch int

const (
	branchMaintain goalBranch = iota
	branchGain
	branchCut
)

// branchFor classifies a goal by substring, so "manter-peso-perder-gordura"
// follows the cutting branch.
func branchFor(goal models.Goal) goalBranch {
	g := strings.ToLower(string(goal))
	switch {
	case strings.Contains(g, "ganhar"):
		return branchGain
	case strings.Contains(g, "perder"):
		return branchCut
	}
	return branchMaintain
}

func defaultFoods(goal models.Goal) []models.PlannedFood {
	switch branchFor(goal) {
	case branchGain:
		return gainDefaults
	case branchCut:
		return cutDefaults
	}
	return maintainDefaults
}

// replacementRule maps a change request to a fixed food list.
type replacementRule struct {
	name  string
	match func(desc string) bool
	foods []models.PlannedFood
}

func mentionsWhey(desc string) bool {
	return strings.Contains(desc, "whey")
}

func mentionsHipercalorico(desc string) bool {
	return strings.Contains(desc, "hipercalorico") || strings.Contains(desc, "hipercalórico")
}

// replacementRules are evaluated in order; the first match wins.
var replacementRules = []replacementRule{
	{
		name:  "whey+hipercalorico",
		match: func(d string) bool { return mentionsWhey(d) && mentionsHipercalorico(d) },
		foods: []models.PlannedFood{wheyProtein, hipercalorico},
	},
	{name: "whey", match: mentionsWhey, foods: []models.PlannedFood{wheyProtein}},
	{name: "hipercalorico", match: mentionsHipercalorico, foods: []models.PlannedFood{hipercalorico}},
	{name: "banana", match: func(d string) bool { return strings.Contains(d, "banana") }, foods: []models.PlannedFood{banana}},
	{name: "aveia", match: func(d string) bool { return strings.Contains(d, "aveia") }, foods: []models.PlannedFood{aveia}},
}

// selectFoods returns a fresh copy of the foods chosen for a change request.
func selectFoods(change string, goal models.Goal) []models.PlannedFood {
	desc := strings.ToLower(change)
	for _, r := range replacementRules {
		if r.match(desc) {
			return append([]models.PlannedFood(nil), r.foods...)
		}
	}
	return append([]models.PlannedFood(nil), defaultFoods(goal)...)
}
