package models

// NutritionalGoals holds each user's derived daily nutrient targets.
// Calories never drop below 1200; all targets are non-negative.
// Derived once per request, never mutated after construction.
type NutritionalGoals struct {
	Calories int     `json:"calories"`  // e.g. 2200 kcal
	ProteinG float64 `json:"protein_g"` // e.g. 150 g
	CarbsG   float64 `json:"carbs_g"`   // e.g. 200 g
	FatG     float64 `json:"fat_g"`     // e.g. 67 g
	FiberG   float64 `json:"fiber_g"`   // e.g. 28 g
	SugarG   float64 `json:"sugar_g"`   // e.g. 50 g
	SodiumMg float64 `json:"sodium_mg"` // e.g. 2300 mg
}
