package utils

import (
	"math"
	"strings"

	"nutriplan/models"
)

// activityMultipliers is the single source of truth for TDEE factors.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// defaultActivityMultiplier covers unknown levels (moderate).
const defaultActivityMultiplier = 1.55

// CalculateBMR computes Basal Metabolic Rate via Mifflin-St Jeor.
// Male: 10w + 6.25h − 5a + 5. Female: 10w + 6.25h − 5a − 161.
// Any other gender value gets the mean of the two. Rounded to 1 decimal.
func CalculateBMR(profile models.HealthProfile) (float64, error) {
	if err := profile.Validate(); err != nil {
		return 0, err
	}

	base := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.AgeYears)

	var bmr float64
	switch profile.Gender {
	case models.GenderMale:
		bmr = base + 5
	case models.GenderFemale:
		bmr = base - 161
	default:
		bmr = ((base + 5) + (base - 161)) / 2
	}
	return round1(bmr), nil
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels
// fall back to the moderate multiplier rather than erroring.
func CalculateTDEE(bmr float64, level models.ActivityLevel) float64 {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = defaultActivityMultiplier
	}
	return round1(bmr * mult)
}

// Goal types classified from free-form goal text.
const (
	GoalWeightLoss  = "weight_loss"
	GoalWeightGain  = "weight_gain"
	GoalMaintenance = "maintenance"
)

// goalRule adjusts TDEE when any of its keywords appears in the goal text.
type goalRule struct {
	name     string
	keywords []string
	adjust   func(tdee float64, aggressive bool) float64
}

// goalRules is evaluated top to bottom; first keyword hit wins.
// Weight loss: 500 kcal deficit (1000 when aggressive), floored at 1200.
// Weight gain: 500 kcal surplus. Anything else: maintenance.
var goalRules = []goalRule{
	{
		name:     GoalWeightLoss,
		keywords: []string{"lose", "weight loss", "reduce", "cut"},
		adjust: func(tdee float64, aggressive bool) float64 {
			deficit := 500.0
			if aggressive {
				deficit = 1000
			}
			return math.Max(tdee-deficit, 1200)
		},
	},
	{
		name:     GoalWeightGain,
		keywords: []string{"gain", "weight gain", "bulk", "muscle"},
		adjust: func(tdee float64, _ bool) float64 {
			return tdee + 500
		},
	},
	{
		name:     GoalMaintenance,
		keywords: []string{"maintain", "maintenance"},
		adjust:   func(tdee float64, _ bool) float64 { return tdee },
	},
}

// CaloricGoal scans the free-form goal text and adjusts TDEE accordingly.
// Unrecognized goals keep TDEE unchanged. Result truncated to an int.
func CaloricGoal(tdee float64, goalText string) int {
	goal := strings.ToLower(goalText)
	aggressive := strings.Contains(goal, "aggressive") || strings.Contains(goal, "fast")

	for _, rule := range goalRules {
		for _, kw := range rule.keywords {
			if strings.Contains(goal, kw) {
				return int(rule.adjust(tdee, aggressive))
			}
		}
	}
	return int(tdee)
}

// GoalType classifies free-form goal text through the same ordered rules
// as CaloricGoal. Unrecognized text is maintenance.
func GoalType(goalText string) string {
	goal := strings.ToLower(goalText)
	for _, rule := range goalRules {
		for _, kw := range rule.keywords {
			if strings.Contains(goal, kw) {
				return rule.name
			}
		}
	}
	return GoalMaintenance
}

// MacroRatio is one protein/carb/fat calorie allocation.
type MacroRatio struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// macroRule pairs an intent keyword list with its ratio.
type macroRule struct {
	intent   string
	keywords []string
	ratio    MacroRatio
}

// macroRules is an ordered first-match dispatch: muscle-building, then
// weight-loss, then endurance. Ambiguous goal text resolves to the
// earliest matching rule.
var macroRules = []macroRule{
	{"muscle_building", []string{"muscle", "strength", "bulk"}, MacroRatio{0.35, 0.40, 0.25}},
	{"weight_loss", []string{"lose", "weight loss", "cut"}, MacroRatio{0.30, 0.35, 0.35}},
	{"endurance", []string{"endurance", "cardio", "running"}, MacroRatio{0.25, 0.50, 0.25}},
}

// defaultMacroRatio is the balanced 30/40/30 split.
var defaultMacroRatio = MacroRatio{0.30, 0.40, 0.30}

// SelectMacroRatio resolves the ratio for a goal text via the ordered rules.
func SelectMacroRatio(goalText string) MacroRatio {
	goal := strings.ToLower(goalText)
	for _, rule := range macroRules {
		for _, kw := range rule.keywords {
			if strings.Contains(goal, kw) {
				return rule.ratio
			}
		}
	}
	return defaultMacroRatio
}

// MacroSplit converts a caloric goal into macro grams using the ratio
// selected for the goal text (4 kcal/g protein and carbs, 9 kcal/g fat).
// Each value rounded to 1 decimal.
func MacroSplit(caloricGoal int, goalText string) (proteinG, carbsG, fatG float64) {
	ratio := SelectMacroRatio(goalText)
	kcal := float64(caloricGoal)
	proteinG = round1(kcal * ratio.Protein / 4)
	carbsG = round1(kcal * ratio.Carbs / 4)
	fatG = round1(kcal * ratio.Fat / 9)
	return proteinG, carbsG, fatG
}

// BMICategory labels a BMI value with the WHO classification.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
