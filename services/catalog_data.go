package services

import "nutriplan/models"

// CatalogVersion tags the seeded reference data so API consumers can
// detect drift between deployments.
const CatalogVersion = "2024.1"

// DefaultFoodCatalog returns the seeded per-100g catalog. One copy for
// every consumer; the near-duplicate dictionaries of earlier prototypes
// collapse here.
func DefaultFoodCatalog() *FoodCatalog {
	return NewFoodCatalog(CatalogVersion, defaultFoodEntries)
}

func np(cal, protein, carbs, fat, fiber, sugar, sodium float64) models.NutrientProfile {
	return models.NutrientProfile{
		Calories: cal,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		FiberG:   fiber,
		SugarG:   sugar,
		SodiumMg: sodium,
	}
}

// defaultFoodEntries, per 100g. Stated calories stay within ±10% of
// macro-derived calories (4p + 4c + 9f).
var defaultFoodEntries = []models.FoodEntry{
	{Name: "chicken breast", Nutrients: np(165, 31, 0, 3.6, 0, 0, 74)},
	{Name: "grilled chicken", Nutrients: np(165, 31, 0, 3.6, 0, 0, 74)},
	{Name: "broccoli", Nutrients: np(39, 2.8, 6.6, 0.4, 2.6, 1.7, 33)},
	{Name: "rice", Nutrients: np(130, 2.7, 28, 0.3, 0.4, 0.1, 1)},
	{Name: "brown rice", Nutrients: np(111, 2.3, 23, 0.9, 1.8, 0.4, 5)},
	{Name: "salmon", Nutrients: np(208, 25, 0, 12, 0, 0, 59), Allergens: []string{"fish", "seafood"}},
	{Name: "pasta", Nutrients: np(131, 5, 25, 1.1, 1.8, 0.6, 1), Allergens: []string{"gluten"}},
	{Name: "bread", Nutrients: np(265, 9, 49, 3.2, 2.7, 5, 491), Allergens: []string{"gluten"}},
	{Name: "apple", Nutrients: np(55, 0.3, 14, 0.2, 2.4, 10.4, 1)},
	{Name: "banana", Nutrients: np(92, 1.1, 23, 0.3, 2.6, 12.2, 1)},
	{Name: "berries", Nutrients: np(57, 0.7, 14, 0.3, 2.4, 9.4, 1)},
	{Name: "yogurt", Nutrients: np(59, 10, 3.6, 0.4, 0, 3.2, 36), Allergens: []string{"dairy"}},
	{Name: "milk", Nutrients: np(42, 3.4, 5, 1, 0, 5, 44), Allergens: []string{"dairy"}},
	{Name: "cheese", Nutrients: np(113, 7, 1, 9, 0, 0.5, 621), Allergens: []string{"dairy"}},
	{Name: "egg", Nutrients: np(155, 13, 1.1, 11, 0, 1.1, 124), Allergens: []string{"eggs"}},
	{Name: "potato", Nutrients: np(77, 2, 17, 0.1, 2.2, 0.8, 6)},
	{Name: "sweet potato", Nutrients: np(86, 1.6, 20, 0.1, 3, 4.2, 55)},
	{Name: "carrot", Nutrients: np(42, 0.9, 10, 0.2, 2.8, 4.7, 69)},
	{Name: "spinach", Nutrients: np(27, 2.9, 3.6, 0.4, 2.2, 0.4, 79)},
	{Name: "tomato", Nutrients: np(20, 0.9, 3.9, 0.2, 1.2, 2.6, 5)},
	{Name: "onion", Nutrients: np(40, 1.1, 9.3, 0.1, 1.7, 4.2, 4)},
	{Name: "avocado", Nutrients: np(165, 2, 9, 15, 7, 0.7, 7)},
	{Name: "almonds", Nutrients: np(579, 21, 22, 50, 12, 4.4, 1), Allergens: []string{"nuts"}},
	{Name: "oats", Nutrients: np(68, 2.4, 12, 1.4, 1.7, 0.3, 49), Allergens: []string{"gluten"}},
	{Name: "quinoa", Nutrients: np(120, 4.4, 22, 1.9, 2.8, 0.9, 7)},
	{Name: "tofu", Nutrients: np(76, 8, 1.9, 4.8, 0.3, 0.6, 7), Allergens: []string{"soy"}},
	{Name: "pizza", Nutrients: np(266, 11, 33, 10, 2.3, 3.6, 598), Allergens: []string{"gluten", "dairy"}},
	{Name: "burger", Nutrients: np(354, 16, 33, 17, 2.1, 6, 497), Allergens: []string{"gluten"}},
	{Name: "salad", Nutrients: np(30, 2, 5, 0.5, 2, 1.5, 36)},
	{Name: "soup", Nutrients: np(50, 3, 8, 1, 1.5, 2, 380)},
	{Name: "fish", Nutrients: np(206, 22, 0, 12, 0, 0, 61), Allergens: []string{"fish", "seafood"}},
	{Name: "beef", Nutrients: np(250, 26, 0, 15, 0, 0, 72)},
	{Name: "pork", Nutrients: np(242, 27, 0, 14, 0, 0, 62)},
}
