package models

// MealCategory partitions the day's calorie budget.
type MealCategory string

const (
	CategoryBreakfast MealCategory = "breakfast"
	CategoryLunch     MealCategory = "lunch"
	CategoryDinner    MealCategory = "dinner"
	CategorySnacks    MealCategory = "snacks"
)

// MealCategories in budget order (20/35/35/10).
var MealCategories = []MealCategory{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategorySnacks,
}

// Meal is one selected (or portion-scaled) meal: total nutrients, the
// ordered constituent foods, and the union of constituent allergen tags.
type Meal struct {
	Name      string          `json:"name"`
	Category  MealCategory    `json:"category"`
	Nutrients NutrientProfile `json:"nutrients"`
	Foods     []string        `json:"foods"`
	Allergens []string        `json:"allergens,omitempty"`
}

// HasAllergen reports whether the meal carries the given tag
// (case handled by the caller; tags are stored lowercase).
func (m Meal) HasAllergen(tag string) bool {
	for _, a := range m.Allergens {
		if a == tag {
			return true
		}
	}
	return false
}
