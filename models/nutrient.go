package models

// NutrientProfile is the per-food or per-meal nutrient breakdown.
// Catalog entries express it per 100g. All fields are non-negative;
// macro calories (4·protein + 4·carbs + 9·fat) stay within ±10% of
// the stated calories for catalog data.
type NutrientProfile struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	FiberG   float64 `json:"fiber_g"`
	SugarG   float64 `json:"sugar_g"`
	SodiumMg float64 `json:"sodium_mg"`
}

// MacroCalories reconstructs energy from macros (4/4/9 kcal per gram).
func (n NutrientProfile) MacroCalories() float64 {
	return 4*n.ProteinG + 4*n.CarbsG + 9*n.FatG
}

// Add returns the element-wise sum of two profiles.
func (n NutrientProfile) Add(o NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories: n.Calories + o.Calories,
		ProteinG: n.ProteinG + o.ProteinG,
		FatG:     n.FatG + o.FatG,
		CarbsG:   n.CarbsG + o.CarbsG,
		FiberG:   n.FiberG + o.FiberG,
		SugarG:   n.SugarG + o.SugarG,
		SodiumMg: n.SodiumMg + o.SodiumMg,
	}
}
