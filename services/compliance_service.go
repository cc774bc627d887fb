package services

import "nutriplan/models"

// Nutrient keys for the consumed-nutrients map passed to Evaluate.
const (
	NutrientCalories = "calories"
	NutrientProtein  = "protein_g"
	NutrientFat      = "fat_g"
	NutrientCarbs    = "carbs_g"
	NutrientFiber    = "fiber_g"
	NutrientSugar    = "sugar_g"
	NutrientSodium   = "sodium_mg"
)

// ConsumedFromProfile flattens a nutrient profile into the map form the
// evaluator consumes.
func ConsumedFromProfile(n models.NutrientProfile) map[string]float64 {
	return map[string]float64{
		NutrientCalories: n.Calories,
		NutrientProtein:  n.ProteinG,
		NutrientFat:      n.FatG,
		NutrientCarbs:    n.CarbsG,
		NutrientFiber:    n.FiberG,
		NutrientSugar:    n.SugarG,
		NutrientSodium:   n.SodiumMg,
	}
}

// ComplianceEvaluator classifies consumed nutrients against a diet
// plan's restrictions.
type ComplianceEvaluator struct{}

func NewComplianceEvaluator() *ComplianceEvaluator { return &ComplianceEvaluator{} }

// Evaluate checks every restriction in list order against the consumed
// map. Each restriction is independent; the overall status is the most
// severe outcome observed: exceeding a max beats falling below a min,
// which beats missing data. No restrictions at all is compliant with a
// perfect score. Score is the fraction of restrictions satisfied;
// triggered restriction names are recorded in evaluation order.
func (e *ComplianceEvaluator) Evaluate(plan models.DietPlan, consumed map[string]float64) models.ComplianceAssessment {
	if len(plan.Restrictions) == 0 {
		return models.ComplianceAssessment{Status: models.StatusCompliant, Score: 1.0}
	}

	var (
		exceeded  bool
		below     bool
		missing   bool
		satisfied int
		triggered []string
	)

	for _, r := range plan.Restrictions {
		value, present := consumed[r.Nutrient]
		if !present {
			missing = true
			triggered = append(triggered, r.Name)
			continue
		}

		switch {
		case r.MaxPerDay != nil && value > *r.MaxPerDay:
			exceeded = true
			triggered = append(triggered, r.Name)
		case r.MinPerDay != nil && value < *r.MinPerDay:
			below = true
			triggered = append(triggered, r.Name)
		default:
			satisfied++
		}
	}

	status := models.StatusCompliant
	switch {
	case exceeded:
		status = models.StatusExceedsLimits
	case below:
		status = models.StatusBelowRequired
	case missing:
		status = models.StatusInsufficientData
	}

	return models.ComplianceAssessment{
		Status:                status,
		Score:                 float64(satisfied) / float64(len(plan.Restrictions)),
		TriggeredRestrictions: triggered,
	}
}
