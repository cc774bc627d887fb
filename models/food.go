package models

// FoodEntry is one catalog row: nutrients per 100g plus allergen tags.
// Immutable reference data.
type FoodEntry struct {
	Name      string          `json:"name"`
	Nutrients NutrientProfile `json:"nutrients_per_100g"`
	Allergens []string        `json:"allergens,omitempty"`
}

// FoodDetection is what the external vision collaborator supplies:
// a label, a confidence in [0,1], and an estimated portion weight.
type FoodDetection struct {
	Name             string  `json:"name"`
	Confidence       float64 `json:"confidence"`
	EstimatedWeightG float64 `json:"estimated_weight_g"`
}
