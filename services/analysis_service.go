package services

import (
	"nutriplan/models"
	"nutriplan/utils"
)

// FoodBreakdown is one detected food resolved against the catalog and
// scaled to its estimated portion.
type FoodBreakdown struct {
	Name       string                 `json:"name"`
	Confidence float64                `json:"confidence"`
	WeightG    float64                `json:"weight_g"`
	Known      bool                   `json:"known"` // false when the default profile was used
	Nutrients  models.NutrientProfile `json:"nutrients"`
}

// MealAnalysis is the nutritional summary of one observed meal.
type MealAnalysis struct {
	Foods           []FoodBreakdown        `json:"foods"`
	Totals          models.NutrientProfile `json:"totals"`
	AllergyWarnings []string               `json:"allergy_warnings,omitempty"`
}

// defaultPortionG stands in when the collaborator supplies no weight.
const defaultPortionG = 100

// AnalysisService turns vision-collaborator detections into nutrient
// totals and progress metrics.
type AnalysisService struct {
	catalog *FoodCatalog
}

func NewAnalysisService(catalog *FoodCatalog) *AnalysisService {
	return &AnalysisService{catalog: catalog}
}

// AnalyzeMeal resolves each detection through the catalog, scales to the
// estimated weight, sums the totals, and flags allergens against the
// user's allergy list.
func (s *AnalysisService) AnalyzeMeal(detections []models.FoodDetection, allergies []string) MealAnalysis {
	var analysis MealAnalysis
	var names []string

	for _, d := range detections {
		grams := d.EstimatedWeightG
		if grams <= 0 {
			grams = defaultPortionG
		}

		entry, known := s.catalog.Lookup(d.Name)
		scaled := Scale(entry.Nutrients, grams)

		analysis.Foods = append(analysis.Foods, FoodBreakdown{
			Name:       d.Name,
			Confidence: d.Confidence,
			WeightG:    grams,
			Known:      known,
			Nutrients:  scaled,
		})
		analysis.Totals = analysis.Totals.Add(scaled)
		names = append(names, d.Name)
	}

	analysis.AllergyWarnings = utils.CheckFoods(names, allergies)
	return analysis
}

// Progress compares meal totals against the daily goals. Percentages are
// of the daily target; zero targets report zero progress.
func (s *AnalysisService) Progress(goals models.NutritionalGoals, totals models.NutrientProfile) models.ProgressMetrics {
	return models.ProgressMetrics{
		CurrentMealCalories: totals.Calories,
		DailyCalorieGoal:    goals.Calories,
		RemainingCalories:   float64(goals.Calories) - totals.Calories,
		CalorieProgress:     pct(totals.Calories, float64(goals.Calories)),
		ProteinProgress:     pct(totals.ProteinG, goals.ProteinG),
		CarbProgress:        pct(totals.CarbsG, goals.CarbsG),
		FatProgress:         pct(totals.FatG, goals.FatG),
	}
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round1(consumed / target * 100)
}
