package services

import "nutriplan/models"

// MealLibrary holds the candidate meal templates per category, in a
// stable order so calorie-distance ties resolve deterministically.
type MealLibrary map[models.MealCategory][]models.Meal

// Candidates returns the templates for a category (nil for unknown).
func (l MealLibrary) Candidates(category models.MealCategory) []models.Meal {
	return l[category]
}

func meal(name string, category models.MealCategory, n models.NutrientProfile, foods []string, allergens ...string) models.Meal {
	return models.Meal{
		Name:      name,
		Category:  category,
		Nutrients: n,
		Foods:     foods,
		Allergens: allergens,
	}
}

// DefaultMealLibrary returns the seeded templates. Allergen tags are the
// union of the constituent foods' tags.
func DefaultMealLibrary() MealLibrary {
	return MealLibrary{
		models.CategoryBreakfast: {
			meal("Oatmeal with Berries and Almonds", models.CategoryBreakfast,
				np(350, 12, 55, 10, 8, 12, 80),
				[]string{"Oats", "Berries", "Almonds", "Honey"}, "nuts", "gluten"),
			meal("Scrambled Eggs with Whole Wheat Toast", models.CategoryBreakfast,
				np(320, 20, 30, 12, 4, 3, 420),
				[]string{"Eggs", "Whole wheat bread", "Olive oil"}, "eggs", "gluten"),
			meal("Greek Yogurt Parfait with Granola", models.CategoryBreakfast,
				np(280, 18, 40, 6, 4, 22, 95),
				[]string{"Greek yogurt", "Granola", "Berries", "Honey"}, "dairy", "gluten"),
			meal("Protein Smoothie Bowl", models.CategoryBreakfast,
				np(310, 25, 38, 8, 6, 20, 140),
				[]string{"Protein powder", "Banana", "Greek yogurt", "Berries"}, "dairy"),
			meal("Avocado Toast with Poached Eggs", models.CategoryBreakfast,
				np(380, 16, 35, 20, 9, 4, 380),
				[]string{"Whole grain bread", "Avocado", "Eggs", "Tomato"}, "eggs", "gluten"),
		},
		models.CategoryLunch: {
			meal("Grilled Chicken Salad with Quinoa", models.CategoryLunch,
				np(450, 38, 42, 14, 7, 5, 520),
				[]string{"Chicken breast", "Mixed greens", "Quinoa", "Cherry tomatoes", "Olive oil"}),
			meal("Salmon with Sweet Potato and Asparagus", models.CategoryLunch,
				np(520, 35, 48, 18, 8, 9, 390),
				[]string{"Salmon fillet", "Sweet potato", "Asparagus", "Lemon"}, "fish", "seafood"),
			meal("Turkey and Veggie Wrap", models.CategoryLunch,
				np(420, 32, 45, 12, 6, 6, 780),
				[]string{"Turkey breast", "Whole wheat wrap", "Lettuce", "Tomato", "Hummus"}, "gluten"),
			meal("Lentil Soup with Whole Grain Bread", models.CategoryLunch,
				np(380, 18, 62, 6, 12, 7, 640),
				[]string{"Lentils", "Carrot", "Onion", "Whole grain bread"}, "gluten"),
			meal("Chicken Stir-Fry with Brown Rice", models.CategoryLunch,
				np(480, 36, 52, 14, 5, 8, 850),
				[]string{"Chicken breast", "Brown rice", "Mixed vegetables", "Soy sauce"}, "soy"),
		},
		models.CategoryDinner: {
			meal("Lean Beef with Roasted Vegetables", models.CategoryDinner,
				np(510, 42, 38, 20, 8, 9, 420),
				[]string{"Lean beef", "Broccoli", "Carrot", "Potato", "Olive oil"}),
			meal("Baked Cod with Quinoa and Broccoli", models.CategoryDinner,
				np(440, 38, 45, 12, 7, 4, 360),
				[]string{"Cod fillet", "Quinoa", "Broccoli", "Lemon"}, "fish", "seafood"),
			meal("Grilled Chicken Breast with Wild Rice", models.CategoryDinner,
				np(480, 45, 48, 10, 5, 3, 310),
				[]string{"Chicken breast", "Wild rice", "Green beans"}),
			meal("Vegetarian Buddha Bowl", models.CategoryDinner,
				np(420, 16, 62, 14, 13, 9, 480),
				[]string{"Quinoa", "Chickpeas", "Roasted vegetables", "Avocado"}),
			meal("Turkey Meatballs with Whole Wheat Pasta", models.CategoryDinner,
				np(495, 38, 54, 14, 7, 9, 720),
				[]string{"Ground turkey", "Whole wheat pasta", "Marinara sauce", "Egg"}, "gluten", "eggs"),
		},
		models.CategorySnacks: {
			meal("Apple with Almond Butter", models.CategorySnacks,
				np(180, 4, 22, 9, 5, 16, 2),
				[]string{"Apple", "Almond butter"}, "nuts"),
			meal("Protein Bar", models.CategorySnacks,
				np(200, 20, 18, 6, 3, 8, 150),
				[]string{"Protein bar"}, "nuts", "dairy"),
			meal("Carrot Sticks with Hummus", models.CategorySnacks,
				np(120, 4, 16, 5, 5, 6, 240),
				[]string{"Carrot", "Hummus"}),
			meal("Greek Yogurt with Honey", models.CategorySnacks,
				np(150, 12, 20, 2, 0, 19, 60),
				[]string{"Greek yogurt", "Honey"}, "dairy"),
			meal("Mixed Nuts", models.CategorySnacks,
				np(170, 6, 8, 14, 3, 2, 90),
				[]string{"Mixed nuts"}, "nuts"),
		},
	}
}
