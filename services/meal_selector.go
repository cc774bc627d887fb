package services

import (
	"math"

	"nutriplan/models"
	"nutriplan/utils"
)

// SelectionInput carries the constraints for one meal pick.
type SelectionInput struct {
	Category          models.MealCategory
	TargetKcal        float64
	ExcludedAllergens []string
	Restrictions      []string            // "vegetarian", "vegan"
	Avoid             map[string]struct{} // meal names to skip for variety
}

// MealSelector picks the candidate closest to a calorie target under
// allergen and dietary-restriction filters. Every filter is lenient:
// if it empties the pool, the selector falls back to the previous pool
// rather than failing.
type MealSelector struct{}

func NewMealSelector() *MealSelector { return &MealSelector{} }

// Select applies, in order: dietary-restriction pre-filter, allergen
// filter, variety avoidance — each with an empty-pool fallback — then
// picks the candidate minimizing |calories − target|, ties broken by
// input order. ok=false only when candidates itself is empty.
func (s *MealSelector) Select(in SelectionInput, candidates []models.Meal) (models.Meal, bool) {
	if len(candidates) == 0 {
		return models.Meal{}, false
	}

	pool := filterByRestrictions(candidates, in.Restrictions)
	if len(pool) == 0 {
		pool = candidates
	}

	filtered := FilterByAllergens(pool, in.ExcludedAllergens)
	if len(filtered) == 0 {
		filtered = pool
	}

	fresh := filterAvoided(filtered, in.Avoid)
	if len(fresh) == 0 {
		fresh = filtered
	}

	best := fresh[0]
	bestDist := math.Abs(best.Nutrients.Calories - in.TargetKcal)
	for _, c := range fresh[1:] {
		if d := math.Abs(c.Nutrients.Calories - in.TargetKcal); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

// FilterByAllergens removes candidates whose allergen tags intersect the
// excluded set, case-insensitively. May return an empty slice; the
// caller decides whether to fall back.
func FilterByAllergens(candidates []models.Meal, excluded []string) []models.Meal {
	tags := utils.NormalizeAllergens(excluded)
	if len(tags) == 0 {
		return candidates
	}
	var safe []models.Meal
	for _, c := range candidates {
		if !intersects(c, tags) {
			safe = append(safe, c)
		}
	}
	return safe
}

func filterByRestrictions(candidates []models.Meal, restrictions []string) []models.Meal {
	if len(restrictions) == 0 {
		return candidates
	}
	var out []models.Meal
	for _, c := range candidates {
		ok := true
		for _, r := range restrictions {
			if utils.ViolatesRestriction(c.Foods, r) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}

func filterAvoided(candidates []models.Meal, avoid map[string]struct{}) []models.Meal {
	if len(avoid) == 0 {
		return candidates
	}
	var out []models.Meal
	for _, c := range candidates {
		if _, skip := avoid[c.Name]; !skip {
			out = append(out, c)
		}
	}
	return out
}

func intersects(m models.Meal, tags []string) bool {
	for _, mt := range utils.NormalizeAllergens(m.Allergens) {
		for _, t := range tags {
			if mt == t {
				return true
			}
		}
	}
	return false
}
