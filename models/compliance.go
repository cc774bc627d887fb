package models

// ComplianceStatus is the four-state outcome of evaluating consumed
// nutrients against a diet plan.
type ComplianceStatus string

const (
	StatusCompliant        ComplianceStatus = "compliant"
	StatusExceedsLimits    ComplianceStatus = "exceeds_limits"
	StatusBelowRequired    ComplianceStatus = "below_required"
	StatusInsufficientData ComplianceStatus = "insufficient_data"
)

// ComplianceAssessment reports the evaluation outcome: overall status,
// the fraction of restrictions satisfied, and which restrictions fired.
type ComplianceAssessment struct {
	Status                ComplianceStatus `json:"status"`
	Score                 float64          `json:"score"`
	TriggeredRestrictions []string         `json:"triggered_restrictions,omitempty"`
}

// ProgressMetrics compares one analyzed meal against the daily goals.
// Percentages are of the daily target, uncapped.
type ProgressMetrics struct {
	CurrentMealCalories float64 `json:"current_meal_calories"`
	DailyCalorieGoal    int     `json:"daily_calorie_goal"`
	RemainingCalories   float64 `json:"remaining_calories"`
	CalorieProgress     float64 `json:"calorie_progress"`
	ProteinProgress     float64 `json:"protein_progress"`
	CarbProgress        float64 `json:"carb_progress"`
	FatProgress         float64 `json:"fat_progress"`
}
