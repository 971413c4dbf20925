package layout

import (
	"fmt"
	"sort"
	"strings"

	"roomplanner/pkg/catalog"
	"roomplanner/pkg/spec"
)

// CirculationReserve is the fraction of floor area kept free for
// movement; only the remaining 70% is offered to furniture selection.
const CirculationReserve = 0.3

// Cost thresholds for the feature tags.
const (
	budgetFriendlyBelow = 2000
	premiumAbove        = 5000
)

// Strategy names the selection order used for one layout option.
type Strategy string

const (
	// StrategyPriority keeps the catalog's hand-authored priority order.
	StrategyPriority Strategy = "priority"
	// StrategyValue prefers cheaper pieces first.
	StrategyValue Strategy = "value"
	// StrategyFootprint prefers larger pieces first, anchoring the room.
	StrategyFootprint Strategy = "footprint"
)

// Strategies lists the selection strategies in option order.
func Strategies() []Strategy {
	return []Strategy{StrategyPriority, StrategyValue, StrategyFootprint}
}

// Option is one complete candidate furniture selection with derived
// cost, description and features.
type Option struct {
	ID          int      `json:"id"`
	Strategy    Strategy `json:"strategy"`
	Furniture   []Item   `json:"furniture"`
	Cost        int      `json:"cost"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Generate produces one layout option per selection strategy, three in
// total, with IDs 1..3 in strategy order. Each pass greedily selects
// archetypes in the strategy's order while 70% of the floor area lasts,
// skipping anything whose minimum area no longer fits. The result is a
// pure function of the inputs.
func Generate(cat *catalog.Catalog, s *spec.RoomSpec, archetypes []catalog.Archetype) []Option {
	options := make([]Option, 0, len(Strategies()))
	for i, strategy := range Strategies() {
		opt := generateOne(cat, s, orderFor(cat, strategy, archetypes))
		opt.ID = i + 1
		opt.Strategy = strategy
		options = append(options, opt)
	}
	return options
}

// orderFor reorders a copy of the archetype list for the strategy.
// Sorts are stable so equal keys keep catalog order.
func orderFor(cat *catalog.Catalog, strategy Strategy, archetypes []catalog.Archetype) []catalog.Archetype {
	ordered := make([]catalog.Archetype, len(archetypes))
	copy(ordered, archetypes)

	switch strategy {
	case StrategyValue:
		sort.SliceStable(ordered, func(i, j int) bool {
			return cat.BasePrice(ordered[i].Type) < cat.BasePrice(ordered[j].Type)
		})
	case StrategyFootprint:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].MinArea > ordered[j].MinArea
		})
	}
	return ordered
}

func generateOne(cat *catalog.Catalog, s *spec.RoomSpec, archetypes []catalog.Archetype) Option {
	opt := Option{Furniture: []Item{}}

	availableArea := s.Room.Area() * (1 - CirculationReserve)
	for _, a := range archetypes {
		if availableArea < a.MinArea {
			continue
		}
		item := Instantiate(cat, a, s.Style)
		opt.Furniture = append(opt.Furniture, item)
		opt.Cost += item.Price
		availableArea -= a.MinArea
	}

	opt.Description = describe(cat, opt, s)
	opt.Features = buildFeatures(cat, opt, s.Style)
	return opt
}

func describe(cat *catalog.Catalog, opt Option, s *spec.RoomSpec) string {
	return fmt.Sprintf("%s in this %s. Featuring %d carefully selected pieces with an estimated total cost of $%d.",
		cat.DescriptionTemplate(s.Style),
		strings.ToLower(string(s.Room.Type)),
		len(opt.Furniture),
		opt.Cost)
}

func buildFeatures(cat *catalog.Catalog, opt Option, style spec.Style) []string {
	features := cat.StyleFeatures(style)

	distinct := make(map[string]bool, len(opt.Furniture))
	for _, it := range opt.Furniture {
		distinct[it.Type] = true
	}
	if len(distinct) >= 3 {
		features = append(features, "Complete room setup")
	}

	switch {
	case opt.Cost < budgetFriendlyBelow:
		features = append(features, "Budget-friendly selection")
	case opt.Cost > premiumAbove:
		features = append(features, "Premium quality pieces")
	}

	return features
}

// FilterByBudget keeps only options whose cost falls inside the
// inclusive budget range, preserving order. An empty result is a valid
// outcome meaning no option fits the budget.
func FilterByBudget(options []Option, budget spec.BudgetRange) []Option {
	filtered := make([]Option, 0, len(options))
	for _, opt := range options {
		if budget.Contains(opt.Cost) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}
