package models

// DietRestriction is a named per-day bound on a single nutrient.
// Either bound may be nil; both set means a closed range.
type DietRestriction struct {
	Name      string   `json:"name"`
	Nutrient  string   `json:"nutrient"` // key into a consumed-nutrients map
	MaxPerDay *float64 `json:"max_per_day,omitempty"`
	MinPerDay *float64 `json:"min_per_day,omitempty"`
	Unit      string   `json:"unit"` // "g", "mg", "kcal"
}

// DietPlan bundles a calorie target with independent nutrient restrictions.
// Restrictions are evaluated in list order; any breach flags non-compliance.
type DietPlan struct {
	Name                string            `json:"name"`
	TotalCaloriesPerDay float64           `json:"total_calories_per_day"`
	Restrictions        []DietRestriction `json:"restrictions,omitempty"`
}

// DayPlan maps each meal category to its selected meal, plus day totals.
type DayPlan struct {
	Day    string                `json:"day"`
	Meals  map[MealCategory]Meal `json:"meals"`
	Totals NutrientProfile       `json:"totals"`
}

// WeeklyPlan is seven ordered DayPlans, Monday first. Best effort: no meal
// name repeats within any 3-consecutive-day window for the same category.
type WeeklyPlan struct {
	Days []DayPlan `json:"days"`
}

// DayNames orders a generated week, Monday first.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
