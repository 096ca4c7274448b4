package workout

const (
	GroupChest     = "peito"
	GroupBack      = "costas"
	GroupLegs      = "pernas"
	GroupShoulders = "ombros"
	GroupArms      = "bracos"
	GroupCore      = "core"
)

var (
	exercisesByGroup = map[string][]string{
		GroupChest:     {"Supino reto", "Supino inclinado com halteres", "Crucifixo", "Flexão de braço"},
		GroupBack:      {"Puxada frontal", "Remada curvada", "Remada baixa", "Levantamento terra"},
		GroupLegs:      {"Agachamento livre", "Leg press", "Cadeira extensora", "Mesa flexora", "Panturrilha em pé"},
		GroupShoulders: {"Desenvolvimento com halteres", "Elevação lateral", "Face pull"},
		GroupArms:      {"Rosca direta", "Tríceps corda", "Rosca martelo", "Tríceps francês"},
		GroupCore:      {"Prancha", "Abdominal infra", "Pallof press"},
	}
)

// dayTemplate lists how many exercises to take from each group.
type dayTemplate struct {
	focus  string
	groups []groupPick
}

type groupPick struct {
	group string
	count int
}

var (
	fullBody = dayTemplate{"Corpo inteiro", []groupPick{{GroupLegs, 2}, {GroupChest, 1}, {GroupBack, 1}, {GroupShoulders, 1}, {GroupCore, 1}}}
	upper    = dayTemplate{"Superiores", []groupPick{{GroupChest, 2}, {GroupBack, 2}, {GroupShoulders, 1}, {GroupArms, 2}}}
	lower    = dayTemplate{"Inferiores", []groupPick{{GroupLegs, 5}, {GroupCore, 2}}}
	push     = dayTemplate{"Empurrar", []groupPick{{GroupChest, 3}, {GroupShoulders, 2}, {GroupArms, 1}}}
	pull     = dayTemplate{"Puxar", []groupPick{{GroupBack, 4}, {GroupArms, 2}}}
	legs     = dayTemplate{"Pernas", []groupPick{{GroupLegs, 5}, {GroupCore, 1}}}
)
