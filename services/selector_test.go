package services

import (
	"testing"

	"nutriplan/models"
	"nutriplan/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectClosestCalories(t *testing.T) {
	selector := NewMealSelector()
	candidates := DefaultMealLibrary().Candidates(models.CategoryBreakfast)

	got, ok := selector.Select(SelectionInput{
		Category:   models.CategoryBreakfast,
		TargetKcal: 300,
	}, candidates)
	require.True(t, ok)
	assert.Equal(t, "Protein Smoothie Bowl", got.Name) // 310 kcal, nearest to 300
}

func TestSelectStableTie(t *testing.T) {
	selector := NewMealSelector()
	candidates := []models.Meal{
		{Name: "first", Nutrients: models.NutrientProfile{Calories: 390}},
		{Name: "second", Nutrients: models.NutrientProfile{Calories: 410}},
	}

	// Both are 10 kcal away; input order breaks the tie.
	got, ok := selector.Select(SelectionInput{TargetKcal: 400}, candidates)
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)
}

func TestSelectExcludesAllergens(t *testing.T) {
	selector := NewMealSelector()
	library := DefaultMealLibrary()

	for _, category := range models.MealCategories {
		got, ok := selector.Select(SelectionInput{
			Category:          category,
			TargetKcal:        400,
			ExcludedAllergens: []string{"nuts"},
		}, library.Candidates(category))
		require.True(t, ok)
		assert.NotContains(t, utils.NormalizeAllergens(got.Allergens), "nuts",
			"category %s picked %s", category, got.Name)
	}
}

func TestSelectAllergenFallback(t *testing.T) {
	selector := NewMealSelector()
	candidates := []models.Meal{
		{Name: "cheddar plate", Nutrients: models.NutrientProfile{Calories: 400}, Allergens: []string{"dairy"}},
		{Name: "yogurt bowl", Nutrients: models.NutrientProfile{Calories: 350}, Allergens: []string{"dairy"}},
	}

	// Every candidate carries the excluded allergen; the selector falls
	// back to the unfiltered pool rather than failing.
	got, ok := selector.Select(SelectionInput{
		TargetKcal:        400,
		ExcludedAllergens: []string{"dairy"},
	}, candidates)
	require.True(t, ok)
	assert.Equal(t, "cheddar plate", got.Name)
}

func TestSelectVegetarianLunch(t *testing.T) {
	selector := NewMealSelector()
	candidates := DefaultMealLibrary().Candidates(models.CategoryLunch)

	// Lentil soup is the only seeded lunch without meat or fish.
	got, ok := selector.Select(SelectionInput{
		Category:     models.CategoryLunch,
		TargetKcal:   500,
		Restrictions: []string{"vegetarian"},
	}, candidates)
	require.True(t, ok)
	assert.Equal(t, "Lentil Soup with Whole Grain Bread", got.Name)
}

func TestSelectVeganDinner(t *testing.T) {
	selector := NewMealSelector()
	candidates := DefaultMealLibrary().Candidates(models.CategoryDinner)

	got, ok := selector.Select(SelectionInput{
		Category:     models.CategoryDinner,
		TargetKcal:   500,
		Restrictions: []string{"vegan"},
	}, candidates)
	require.True(t, ok)
	assert.Equal(t, "Vegetarian Buddha Bowl", got.Name)
}

func TestSelectAvoidsWindowedNames(t *testing.T) {
	selector := NewMealSelector()
	candidates := DefaultMealLibrary().Candidates(models.CategorySnacks)

	got, ok := selector.Select(SelectionInput{
		Category:   models.CategorySnacks,
		TargetKcal: 200,
		Avoid:      map[string]struct{}{"Protein Bar": {}},
	}, candidates)
	require.True(t, ok)
	assert.NotEqual(t, "Protein Bar", got.Name)
}

func TestSelectEmptyCandidates(t *testing.T) {
	selector := NewMealSelector()
	_, ok := selector.Select(SelectionInput{TargetKcal: 400}, nil)
	assert.False(t, ok)
}

func TestFilterByAllergens(t *testing.T) {
	candidates := DefaultMealLibrary().Candidates(models.CategoryBreakfast)

	safe := FilterByAllergens(candidates, []string{"Gluten"})
	require.NotEmpty(t, safe)
	for _, m := range safe {
		assert.NotContains(t, utils.NormalizeAllergens(m.Allergens), "gluten")
	}

	// No exclusions passes everything through untouched.
	assert.Equal(t, candidates, FilterByAllergens(candidates, nil))
}
