package utils

import (
	"fmt"
	"strings"

	"nutriplan/models"
)

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding you can show in your API / UI.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
	Allergen string          `json:"allergen,omitempty"`
	FoundIn  []string        `json:"found_in,omitempty"`
}

// allergenKeywords expands an allergen tag into the ingredient words
// that imply it. Unlisted allergies match their own name literally.
var allergenKeywords = map[string][]string{
	"nuts":      {"almond", "walnut", "peanut", "cashew", "pistachio", "hazelnut", "pecan", "nuts"},
	"dairy":     {"milk", "cheese", "yogurt", "butter", "cream", "whey", "casein"},
	"gluten":    {"wheat", "bread", "pasta", "flour", "oat", "barley", "rye", "toast", "granola"},
	"eggs":      {"egg", "mayonnaise", "custard", "meringue"},
	"soy":       {"soy", "tofu", "tempeh", "soy sauce", "miso", "edamame"},
	"fish":      {"salmon", "tuna", "cod", "fish", "anchovy", "sardine"},
	"seafood":   {"salmon", "tuna", "cod", "fish", "shrimp", "shellfish"},
	"shellfish": {"shrimp", "crab", "lobster", "shellfish", "mussel", "clam"},
	"sesame":    {"sesame", "tahini"},
}

// meatKeywords reject a candidate for vegetarian users.
var meatKeywords = []string{"chicken", "beef", "pork", "turkey", "fish", "salmon", "cod", "meat"}

// animalKeywords additionally reject a candidate for vegan users.
var animalKeywords = []string{"milk", "cheese", "yogurt", "egg", "honey", "butter", "whey"}

// ParseAllergyList normalizes a comma-separated allergy string into
// lowercase tags. "none" and empty input yield nil.
func ParseAllergyList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.ToLower(strings.TrimSpace(part)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// NormalizeAllergens lowercases and trims a tag list.
func NormalizeAllergens(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CheckFoods returns one warning string per food/allergy hit, in input
// order, of the form "<food> may contain <allergen>".
func CheckFoods(foods []string, allergies []string) []string {
	var warnings []string
	for _, food := range foods {
		name := strings.ToLower(food)
		for _, allergy := range NormalizeAllergens(allergies) {
			keywords, ok := allergenKeywords[allergy]
			if !ok {
				keywords = []string{allergy}
			}
			if containsAny(name, keywords...) {
				warnings = append(warnings, fmt.Sprintf("%s may contain %s", food, allergy))
			}
		}
	}
	return warnings
}

// ScanWeeklyPlan inspects every constituent food of a weekly plan for the
// user's allergens and reports one high-severity warning per allergen found.
func ScanWeeklyPlan(plan models.WeeklyPlan, allergies []string) []Warning {
	var warnings []Warning
	for _, allergy := range NormalizeAllergens(allergies) {
		keywords, ok := allergenKeywords[allergy]
		if !ok {
			keywords = []string{allergy}
		}

		var foundIn []string
		for _, day := range plan.Days {
			for _, category := range models.MealCategories {
				meal, ok := day.Meals[category]
				if !ok {
					continue
				}
				for _, food := range meal.Foods {
					if containsAny(strings.ToLower(food), keywords...) {
						foundIn = append(foundIn, fmt.Sprintf("%s (in %s %s)", food, day.Day, category))
					}
				}
			}
		}

		if len(foundIn) > 0 {
			warnings = append(warnings, Warning{
				Code:     "allergy_warning",
				Severity: High,
				Message:  fmt.Sprintf("Please avoid foods containing %s or consult with a healthcare provider.", allergy),
				Allergen: allergy,
				FoundIn:  foundIn,
			})
		}
	}
	return warnings
}

// ViolatesRestriction reports whether any food name trips a dietary
// restriction keyword (meat words for vegetarian, meat plus animal
// products for vegan). Unknown restrictions never reject.
func ViolatesRestriction(foods []string, restriction string) bool {
	joined := strings.ToLower(strings.Join(foods, " "))
	switch strings.ToLower(strings.TrimSpace(restriction)) {
	case "vegetarian":
		return containsAny(joined, meatKeywords...)
	case "vegan":
		return containsAny(joined, meatKeywords...) || containsAny(joined, animalKeywords...)
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
