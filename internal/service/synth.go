package service

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/ibdesignproject/FuelUpFinal/internal/model"
)

type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryProtein   Category = "protein"
	CategoryStaple    Category = "staple"
	CategoryOther     Category = "other"
)

type Archetype string

const (
	ArchetypeSalad    Archetype = "salad"
	ArchetypeStirFry  Archetype = "stir_fry"
	ArchetypeSoup     Archetype = "soup"
	ArchetypeSandwich Archetype = "sandwich"
	ArchetypeSmoothie Archetype = "smoothie"
	ArchetypeBasic    Archetype = "basic"
)

const synthesizedBatchSize = 3

// Checked in this order; the first list with a substring hit wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryVegetable, []string{"tomato", "potato", "onion", "garlic", "cucumber", "carrot", "lettuce", "spinach", "broccoli", "pepper", "kale", "celery", "mushroom", "zucchini", "cabbage", "corn", "eggplant", "cauliflower", "asparagus"}},
	{CategoryFruit, []string{"apple", "banana", "orange", "lemon", "lime", "berry", "mango", "pineapple", "grape", "peach", "pear", "kiwi", "cherry", "melon", "avocado"}},
	{CategoryProtein, []string{"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna", "shrimp", "egg", "tofu", "tempeh", "bean", "lentil", "chickpea", "cheese", "yogurt"}},
	{CategoryStaple, []string{"rice", "pasta", "bread", "noodle", "oat", "quinoa", "tortilla", "couscous", "barley", "flour"}},
}

// Classify maps an ingredient name to its category.
func Classify(name string) Category {
	n := strings.ToLower(name)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(n, kw) {
				return group.category
			}
		}
	}
	return CategoryOther
}

type macros struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

var categoryBase = map[Category]macros{
	CategoryVegetable: {25, 1, 5, 0},
	CategoryFruit:     {60, 0, 15, 0},
	CategoryProtein:   {150, 20, 0, 8},
	CategoryStaple:    {120, 4, 20, 3},
	CategoryOther:     {50, 2, 5, 2},
}

type archetypeDef struct {
	suffix     string
	multiplier macros
	prepTime   int
	cookTime   int
	steps      func(all, rest string) []string
}

var archetypes = map[Archetype]archetypeDef{
	ArchetypeSalad: {
		suffix:     "Salad",
		multiplier: macros{0.8, 1, 1, 1},
		prepTime:   10,
		steps: func(all, _ string) []string {
			return []string{
				fmt.Sprintf("Combine %s in a large bowl.", all),
				"Toss gently and serve fresh.",
			}
		},
	},
	ArchetypeStirFry: {
		suffix:     "Stir-Fry",
		multiplier: macros{1.1, 1, 1, 1.2},
		prepTime:   10,
		cookTime:   10,
		steps: func(all, _ string) []string {
			return []string{
				"Heat a wok or large skillet over high heat.",
				fmt.Sprintf("Stir-fry %s for 5-7 minutes, tossing constantly, until cooked through.", all),
				"Serve hot.",
			}
		},
	},
	ArchetypeSoup: {
		suffix:     "Soup",
		multiplier: macros{0.7, 1, 1, 1},
		prepTime:   15,
		cookTime:   25,
		steps: func(all, _ string) []string {
			return []string{
				fmt.Sprintf("Place %s in a pot and cover with water.", all),
				"Bring to a simmer and cook for 20-25 minutes until tender.",
				"Blend partially if you like a thicker soup and serve warm.",
			}
		},
	},
	ArchetypeSandwich: {
		suffix:     "Sandwich",
		multiplier: macros{1.1, 1, 1.2, 1},
		prepTime:   5,
		cookTime:   5,
		steps: func(_, rest string) []string {
			if rest == "" {
				return []string{"Toast the Bread until golden.", "Slice and serve warm."}
			}
			return []string{
				fmt.Sprintf("Layer %s between slices of the Bread.", rest),
				"Toast lightly, cut in half and serve.",
			}
		},
	},
	ArchetypeSmoothie: {
		suffix:     "Smoothie",
		multiplier: macros{1, 1, 1.2, 1},
		prepTime:   5,
		steps: func(all, _ string) []string {
			return []string{
				fmt.Sprintf("Add %s to a blender.", all),
				"Blend until smooth and serve chilled.",
			}
		},
	},
	ArchetypeBasic: {
		suffix:     "Skillet",
		multiplier: macros{1, 1, 1, 1},
		prepTime:   10,
		cookTime:   15,
		steps: func(all, _ string) []string {
			return []string{
				fmt.Sprintf("Cook %s in a pan over medium heat for 8-10 minutes, stirring occasionally.", all),
				"Plate and serve.",
			}
		},
	},
}

var prepVerbs = map[Category]string{
	CategoryProtein:   "Trim and cut",
	CategoryVegetable: "Wash and chop",
	CategoryFruit:     "Peel and slice",
	CategoryStaple:    "Measure out",
	CategoryOther:     "Prepare",
}

// Category order used for naming and prep steps.
var categoryOrder = []Category{CategoryProtein, CategoryVegetable, CategoryFruit, CategoryStaple, CategoryOther}

// Synthesizer builds recipes that use exactly the ingredients it is given.
type Synthesizer struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewSynthesizer(logger *slog.Logger, now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{logger: logger, now: now}
}

type classified struct {
	names   []string
	byCat   map[Category][]string
	present map[Category]bool
}

func classifyAll(names []string) classified {
	c := classified{
		names:   names,
		byCat:   map[Category][]string{},
		present: map[Category]bool{},
	}
	for _, n := range names {
		cat := Classify(n)
		c.byCat[cat] = append(c.byCat[cat], n)
		c.present[cat] = true
	}
	return c
}

func (c classified) anyNameContains(subs ...string) bool {
	for _, n := range c.names {
		lower := strings.ToLower(n)
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
	}
	return false
}

func (c classified) hasExact(name string) bool {
	for _, n := range c.names {
		if strings.EqualFold(strings.TrimSpace(n), name) {
			return true
		}
	}
	return false
}

// EligibleArchetypes lists the archetypes the ingredient set supports, in
// priority order. basic is not included; it is always available as filler.
func EligibleArchetypes(names []string) []Archetype {
	return classifyAll(names).eligible()
}

func (c classified) eligible() []Archetype {
	out := make([]Archetype, 0, 5)
	if c.present[CategoryVegetable] || c.present[CategoryFruit] {
		out = append(out, ArchetypeSalad)
	}
	if c.present[CategoryProtein] || c.anyNameContains("onion", "bell pepper", "garlic") {
		out = append(out, ArchetypeStirFry)
	}
	if c.present[CategoryVegetable] || c.present[CategoryProtein] {
		out = append(out, ArchetypeSoup)
	}
	if c.hasExact("Bread") {
		out = append(out, ArchetypeSandwich)
	}
	if c.present[CategoryFruit] || c.anyNameContains("yogurt", "milk") {
		out = append(out, ArchetypeSmoothie)
	}
	return out
}

// Synthesize returns three recipes built only from names, or nothing when
// names is empty. Generation failures are logged and yield an empty result.
func (s *Synthesizer) Synthesize(names []string) (recipes []model.Recipe) {
	if len(names) == 0 {
		return []model.Recipe{}
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("synthesize recipes", "panic", r, "ingredients", names)
			recipes = []model.Recipe{}
		}
	}()
	out, err := s.synthesize(names)
	if err != nil {
		s.logger.Error("synthesize recipes", "err", err, "ingredients", names)
		return []model.Recipe{}
	}
	return out
}

func (s *Synthesizer) synthesize(names []string) ([]model.Recipe, error) {
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return nil, fmt.Errorf("blank ingredient name in %q", names)
		}
	}
	c := classifyAll(names)

	plan := c.eligible()
	if len(plan) > synthesizedBatchSize {
		plan = plan[:synthesizedBatchSize]
	}
	for len(plan) < synthesizedBatchSize {
		plan = append(plan, ArchetypeBasic)
	}

	stamp := s.now().UnixMilli()
	out := make([]model.Recipe, 0, len(plan))
	basicCount := 0
	for i, a := range plan {
		variant := 0
		if a == ArchetypeBasic {
			basicCount++
			variant = basicCount
		}
		r := c.build(a, variant)
		r.ID = fmt.Sprintf("gen-%d-%d", stamp, i+1)
		out = append(out, r)
	}
	return out, nil
}

func (c classified) build(a Archetype, variant int) model.Recipe {
	def := archetypes[a]

	name := c.title() + " " + def.suffix
	if variant > 1 {
		name = fmt.Sprintf("%s %d", name, variant)
	}

	m := c.estimate(def.multiplier)
	info := model.NutritionInfo{
		Calories: int(math.Round(m.calories)),
		Protein:  int(math.Round(m.protein)),
		Carbs:    int(math.Round(m.carbs)),
		Fat:      int(math.Round(m.fat)),
	}

	return model.Recipe{
		Name:          name,
		Description:   fmt.Sprintf("A simple %s made only from what you picked: %s.", strings.ReplaceAll(string(a), "_", "-"), strings.Join(c.names, ", ")),
		PrepTime:      def.prepTime,
		CookTime:      def.cookTime,
		Calories:      info.Calories,
		Protein:       info.Protein,
		Carbs:         info.Carbs,
		Fat:           info.Fat,
		Ingredients:   append([]string(nil), c.names...),
		Instructions:  c.instructions(def),
		Tags:          []string{string(a), "ingredient-based"},
		Source:        "generated",
		NutritionInfo: info,
	}
}

// title joins up to two name-worthy ingredients, proteins first. Ingredients
// classified as other only name the dish when nothing else is present.
func (c classified) title() string {
	picked := make([]string, 0, 2)
	for _, cat := range categoryOrder[:4] {
		for _, n := range c.byCat[cat] {
			if len(picked) == 2 {
				break
			}
			picked = append(picked, strings.TrimSpace(n))
		}
	}
	if len(picked) == 0 {
		for _, n := range c.byCat[CategoryOther] {
			if len(picked) == 2 {
				break
			}
			picked = append(picked, strings.TrimSpace(n))
		}
	}
	return strings.Join(picked, " & ")
}

func (c classified) estimate(mult macros) macros {
	var sum macros
	for _, n := range c.names {
		b := categoryBase[Classify(n)]
		sum.calories += b.calories
		sum.protein += b.protein
		sum.carbs += b.carbs
		sum.fat += b.fat
	}
	return macros{
		calories: sum.calories * mult.calories,
		protein:  sum.protein * mult.protein,
		carbs:    sum.carbs * mult.carbs,
		fat:      sum.fat * mult.fat,
	}
}

func (c classified) instructions(def archetypeDef) []string {
	steps := make([]string, 0, 6)
	for _, cat := range categoryOrder {
		items := c.byCat[cat]
		if len(items) == 0 {
			continue
		}
		steps = append(steps, fmt.Sprintf("%s the %s.", prepVerbs[cat], joinList(items)))
	}

	rest := make([]string, 0, len(c.names))
	for _, n := range c.names {
		if !strings.EqualFold(strings.TrimSpace(n), "Bread") {
			rest = append(rest, n)
		}
	}
	return append(steps, def.steps(joinList(c.names), joinList(rest))...)
}

// joinList renders "a", "a and b", "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
