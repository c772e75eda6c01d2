package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibdesignproject/FuelUpFinal/internal/logging"
	"github.com/ibdesignproject/FuelUpFinal/internal/service"
)

func newTestSynthesizer() *service.Synthesizer {
	return service.NewSynthesizer(logging.Discard(), fixedClock(time.UnixMilli(1767225600000)))
}

func TestSynthesizeUsesExactlyTheInputIngredients(t *testing.T) {
	t.Parallel()
	synth := newTestSynthesizer()

	inputs := [][]string{
		{"Tomato", "Garlic"},
		{"Chicken", "Rice", "Broccoli"},
		{"Salt"},
		{"Banana", "Yogurt", "Banana"},
		{"Bread", "Cheese"},
	}
	for _, in := range inputs {
		t.Run(strings.Join(in, "+"), func(t *testing.T) {
			recipes := synth.Synthesize(in)
			require.Len(t, recipes, 3)
			for _, r := range recipes {
				assert.Equal(t, in, r.Ingredients)
				assert.NotEmpty(t, r.Instructions)
				assert.Equal(t, r.Calories, r.NutritionInfo.Calories)
				assert.Equal(t, r.Protein, r.NutritionInfo.Protein)
				assert.Equal(t, "generated", r.Source)
			}
		})
	}
}

func TestSynthesizeEmptyInput(t *testing.T) {
	t.Parallel()
	recipes := newTestSynthesizer().Synthesize(nil)
	require.NotNil(t, recipes)
	assert.Empty(t, recipes)
	assert.Empty(t, newTestSynthesizer().Synthesize([]string{}))
}

func TestSynthesizeTomatoGarlic(t *testing.T) {
	t.Parallel()
	in := []string{"Tomato", "Garlic"}

	eligible := service.EligibleArchetypes(in)
	assert.Equal(t, []service.Archetype{service.ArchetypeSalad, service.ArchetypeStirFry, service.ArchetypeSoup}, eligible)

	recipes := newTestSynthesizer().Synthesize(in)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Tomato & Garlic Salad", recipes[0].Name)
	assert.Equal(t, "Tomato & Garlic Stir-Fry", recipes[1].Name)
	assert.Equal(t, "Tomato & Garlic Soup", recipes[2].Name)
	assert.Equal(t, "gen-1767225600000-1", recipes[0].ID)
	assert.Equal(t, "gen-1767225600000-3", recipes[2].ID)

	// Two vegetables at 25 kcal, salad multiplier 0.8.
	assert.Equal(t, 40, recipes[0].Calories)
	assert.Equal(t, 10, recipes[0].PrepTime)
	assert.Equal(t, 0, recipes[0].CookTime)
	assert.Equal(t, "Wash and chop the Tomato and Garlic.", recipes[0].Instructions[0])
}

func TestSynthesizeFillsWithBasicVariants(t *testing.T) {
	t.Parallel()
	recipes := newTestSynthesizer().Synthesize([]string{"Salt"})
	require.Len(t, recipes, 3)
	assert.Equal(t, "Salt Skillet", recipes[0].Name)
	assert.Equal(t, "Salt Skillet 2", recipes[1].Name)
	assert.Equal(t, "Salt Skillet 3", recipes[2].Name)
	for _, r := range recipes {
		assert.Equal(t, 50, r.Calories)
		assert.Equal(t, []string{"Salt"}, r.Ingredients)
	}
}

func TestSandwichRequiresBread(t *testing.T) {
	t.Parallel()
	assert.Contains(t, service.EligibleArchetypes([]string{" bread ", "Cheese"}), service.ArchetypeSandwich)
	assert.NotContains(t, service.EligibleArchetypes([]string{"Whole grain bread", "Cheese"}), service.ArchetypeSandwich)
	assert.NotContains(t, service.EligibleArchetypes([]string{"Cheese"}), service.ArchetypeSandwich)
}

func TestEligibleArchetypesOrder(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   []string
		want []service.Archetype
	}{
		{[]string{"Mango"}, []service.Archetype{service.ArchetypeSalad, service.ArchetypeSmoothie}},
		{[]string{"Chicken"}, []service.Archetype{service.ArchetypeStirFry, service.ArchetypeSoup}},
		{[]string{"Milk"}, []service.Archetype{service.ArchetypeSmoothie}},
		{[]string{"Bread", "Tomato", "Banana", "Egg"}, []service.Archetype{
			service.ArchetypeSalad, service.ArchetypeStirFry, service.ArchetypeSoup,
			service.ArchetypeSandwich, service.ArchetypeSmoothie,
		}},
		{[]string{"Salt"}, []service.Archetype{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, service.EligibleArchetypes(tc.in), "input %v", tc.in)
	}
}

func TestSynthesizeCapsAtThreeArchetypes(t *testing.T) {
	t.Parallel()
	recipes := newTestSynthesizer().Synthesize([]string{"Bread", "Tomato", "Banana", "Egg"})
	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.NotContains(t, r.Tags, "sandwich")
		assert.NotContains(t, r.Tags, "smoothie")
	}
	assert.Equal(t, "Egg & Tomato Salad", recipes[0].Name)
}

func TestSynthesizeInstructionsMentionOnlyInputs(t *testing.T) {
	t.Parallel()
	recipes := newTestSynthesizer().Synthesize([]string{"Bread", "Cheese"})
	require.Len(t, recipes, 3)
	for _, r := range recipes {
		for _, step := range r.Instructions {
			lower := strings.ToLower(step)
			for _, extra := range []string{"oil", "salt", "butter", "pepper", "dressing"} {
				assert.NotContains(t, lower, extra, "recipe %q step %q", r.Name, step)
			}
		}
	}
}

func TestSynthesizeBlankNameYieldsEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, newTestSynthesizer().Synthesize([]string{"Tomato", "   "}))
}

func TestClassify(t *testing.T) {
	t.Parallel()
	assert.Equal(t, service.CategoryVegetable, service.Classify("Sweet Potato"))
	assert.Equal(t, service.CategoryFruit, service.Classify("blueberry"))
	assert.Equal(t, service.CategoryProtein, service.Classify("Greek Yogurt"))
	assert.Equal(t, service.CategoryStaple, service.Classify("Brown Rice"))
	assert.Equal(t, service.CategoryOther, service.Classify("Cinnamon"))
	// Vegetables are checked before proteins.
	assert.Equal(t, service.CategoryVegetable, service.Classify("Eggplant"))
}
