package utils

import (
	"testing"

	"nutriplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllergyList(t *testing.T) {
	assert.Equal(t, []string{"nuts", "dairy"}, ParseAllergyList("Nuts, Dairy"))
	assert.Equal(t, []string{"gluten"}, ParseAllergyList("  gluten "))
	assert.Nil(t, ParseAllergyList(""))
	assert.Nil(t, ParseAllergyList("none"))
	assert.Nil(t, ParseAllergyList("None"))
	assert.Equal(t, []string{"soy"}, ParseAllergyList("soy,,"))
}

func TestNormalizeAllergens(t *testing.T) {
	assert.Equal(t, []string{"nuts", "fish"}, NormalizeAllergens([]string{" Nuts", "FISH", " "}))
	assert.Nil(t, NormalizeAllergens(nil))
}

func TestCheckFoods(t *testing.T) {
	warnings := CheckFoods([]string{"Peanut Butter Toast"}, []string{"nuts", "gluten"})
	require.Len(t, warnings, 2)
	assert.Equal(t, "Peanut Butter Toast may contain nuts", warnings[0])
	assert.Equal(t, "Peanut Butter Toast may contain gluten", warnings[1])
}

func TestCheckFoodsUnlistedAllergyMatchesLiterally(t *testing.T) {
	warnings := CheckFoods([]string{"Strawberry Jam"}, []string{"strawberry"})
	require.Len(t, warnings, 1)
	assert.Equal(t, "Strawberry Jam may contain strawberry", warnings[0])
}

func TestCheckFoodsNoHits(t *testing.T) {
	assert.Empty(t, CheckFoods([]string{"Rice", "Broccoli"}, []string{"nuts"}))
	assert.Empty(t, CheckFoods([]string{"Almond Croissant"}, nil))
}

func TestScanWeeklyPlan(t *testing.T) {
	plan := models.WeeklyPlan{Days: []models.DayPlan{
		{
			Day: "Monday",
			Meals: map[models.MealCategory]models.Meal{
				models.CategoryBreakfast: {
					Name:  "Oatmeal with Berries and Almonds",
					Foods: []string{"Oats", "Berries", "Almonds"},
				},
				models.CategoryLunch: {
					Name:  "Grilled Chicken Salad",
					Foods: []string{"Chicken breast", "Mixed greens"},
				},
			},
		},
	}}

	warnings := ScanWeeklyPlan(plan, []string{"nuts"})
	require.Len(t, warnings, 1)

	w := warnings[0]
	assert.Equal(t, "allergy_warning", w.Code)
	assert.Equal(t, High, w.Severity)
	assert.Equal(t, "nuts", w.Allergen)
	assert.Contains(t, w.FoundIn, "Almonds (in Monday breakfast)")
	assert.Contains(t, w.Message, "nuts")
}

func TestScanWeeklyPlanCleanPlan(t *testing.T) {
	plan := models.WeeklyPlan{Days: []models.DayPlan{
		{
			Day: "Monday",
			Meals: map[models.MealCategory]models.Meal{
				models.CategoryDinner: {Name: "Rice Bowl", Foods: []string{"Rice", "Broccoli"}},
			},
		},
	}}
	assert.Empty(t, ScanWeeklyPlan(plan, []string{"nuts", "dairy"}))
	assert.Empty(t, ScanWeeklyPlan(plan, nil))
}

func TestViolatesRestriction(t *testing.T) {
	assert.True(t, ViolatesRestriction([]string{"Chicken breast", "Rice"}, "vegetarian"))
	assert.True(t, ViolatesRestriction([]string{"Salmon fillet"}, "Vegetarian"))
	assert.False(t, ViolatesRestriction([]string{"Quinoa", "Chickpeas"}, "vegetarian"))

	// Dairy passes vegetarian but fails vegan.
	assert.False(t, ViolatesRestriction([]string{"Greek yogurt", "Honey"}, "vegetarian"))
	assert.True(t, ViolatesRestriction([]string{"Greek yogurt", "Honey"}, "vegan"))

	// Unknown restrictions never reject.
	assert.False(t, ViolatesRestriction([]string{"Lean beef"}, "paleo"))
}
