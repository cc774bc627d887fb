package services

import (
	"math"
	"math/rand"

	"nutriplan/models"
	"nutriplan/utils"
)

// Calorie budget per category: breakfast 20%, lunch 35%, dinner 35%,
// snacks 10%.
var categoryBudget = map[models.MealCategory]float64{
	models.CategoryBreakfast: 0.20,
	models.CategoryLunch:     0.35,
	models.CategoryDinner:    0.35,
	models.CategorySnacks:    0.10,
}

const (
	// varietyWindowDays is how many recent days' meal names a category
	// avoids repeating.
	varietyWindowDays = 3
	// maxVarietyAttempts bounds day regeneration before a repeat is
	// accepted. Bounded retry, never an error.
	maxVarietyAttempts = 10
	// portionTolerance is how far (relative) a selected template may sit
	// from its calorie sub-target before its portions get rescaled.
	portionTolerance = 0.15
	portionScaleMin  = 0.5
	portionScaleMax  = 1.75
)

// EnergySummary bundles the calorie arithmetic for one profile.
type EnergySummary struct {
	BMR   float64                 `json:"bmr"`
	TDEE  float64                 `json:"tdee"`
	Goals models.NutritionalGoals `json:"goals"`
}

// PlanResult is the full output of a planning request.
type PlanResult struct {
	Energy     EnergySummary     `json:"energy"`
	Week       models.WeeklyPlan `json:"weekly_plan"`
	Motivation string            `json:"motivation_message"`
	Warnings   []utils.Warning   `json:"safety_warnings,omitempty"`
}

// motivationMessages keyed by goal type.
var motivationMessages = map[string][]string{
	utils.GoalWeightLoss: {
		"💪 Remember: Sustainable weight loss is a journey, not a race. Stay consistent!",
		"🌟 Every healthy choice you make brings you closer to your goal!",
		"🎯 Focus on progress, not perfection. You've got this!",
	},
	utils.GoalWeightGain: {
		"💪 Building muscle takes time and consistency. Keep up the great work!",
		"🌟 Fuel your body properly and the gains will follow!",
		"🎯 Consistency in nutrition and training is key to your success!",
	},
	utils.GoalMaintenance: {
		"💪 Maintaining a healthy lifestyle is a victory in itself!",
		"🌟 You're doing great! Keep up these healthy habits!",
		"🎯 Consistency is the foundation of long-term health!",
	},
}

// PlannerService composes goals and weekly plans from the meal library.
// Stateless between requests; the seed makes plan generation
// reproducible.
type PlannerService struct {
	library  MealLibrary
	selector *MealSelector
	seed     int64
}

func NewPlannerService(library MealLibrary, seed int64) *PlannerService {
	return &PlannerService{
		library:  library,
		selector: NewMealSelector(),
		seed:     seed,
	}
}

// CalculateGoals derives the daily nutritional targets for a profile and
// free-form goal text: BMR → TDEE → caloric goal → macro split, plus
// fiber (0.4 g/kg, at least 25 g), sugar (10% of calories, capped at
// 50 g) and the 2300 mg sodium guideline.
func (s *PlannerService) CalculateGoals(profile models.HealthProfile, goalText string) (EnergySummary, error) {
	bmr, err := utils.CalculateBMR(profile)
	if err != nil {
		return EnergySummary{}, err
	}
	tdee := utils.CalculateTDEE(bmr, profile.ActivityLevel)
	calories := utils.CaloricGoal(tdee, goalText)
	proteinG, carbsG, fatG := utils.MacroSplit(calories, goalText)

	goals := models.NutritionalGoals{
		Calories: calories,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
		FiberG:   math.Max(25, round1(0.4*profile.WeightKg)),
		SugarG:   math.Min(50, round1(float64(calories)*0.10/4)),
		SodiumMg: 2300,
	}
	return EnergySummary{BMR: bmr, TDEE: tdee, Goals: goals}, nil
}

// AssembleDay builds one day against the 20/35/35/10 budget without any
// variety constraint.
func (s *PlannerService) AssembleDay(day string, goals models.NutritionalGoals, excludedAllergens, restrictions []string) models.DayPlan {
	return s.assembleDay(nil, day, goals, excludedAllergens, restrictions, nil)
}

// AssembleWeek builds seven days, avoiding per-category meal-name repeats
// within a sliding 3-day window. When a day still repeats a windowed name
// (small pools after filtering), it is regenerated with shuffled
// candidates up to maxVarietyAttempts, then the repeat is accepted.
func (s *PlannerService) AssembleWeek(goals models.NutritionalGoals, excludedAllergens, restrictions []string) models.WeeklyPlan {
	rng := rand.New(rand.NewSource(s.seed))

	window := make(map[models.MealCategory][][]string)
	var week models.WeeklyPlan

	for _, dayName := range models.DayNames {
		avoid := windowNames(window)

		day := s.assembleDay(nil, dayName, goals, excludedAllergens, restrictions, avoid)
		for attempt := 0; attempt < maxVarietyAttempts && repeatsWindowed(day, avoid); attempt++ {
			day = s.assembleDay(rng, dayName, goals, excludedAllergens, restrictions, avoid)
		}

		for _, category := range models.MealCategories {
			used := []string{day.Meals[category].Name}
			window[category] = append(window[category], used)
			if len(window[category]) > varietyWindowDays {
				window[category] = window[category][1:]
			}
		}
		week.Days = append(week.Days, day)
	}
	return week
}

// GeneratePlan is the full pipeline for one request: goals, weekly plan,
// a goal-matched motivation message, and plan-level allergen safety
// warnings.
func (s *PlannerService) GeneratePlan(profile models.HealthProfile, goalText string, allergies, restrictions []string) (PlanResult, error) {
	energy, err := s.CalculateGoals(profile, goalText)
	if err != nil {
		return PlanResult{}, err
	}
	week := s.AssembleWeek(energy.Goals, allergies, restrictions)
	return PlanResult{
		Energy:     energy,
		Week:       week,
		Motivation: s.motivation(goalText),
		Warnings:   utils.ScanWeeklyPlan(week, allergies),
	}, nil
}

// motivation picks a message for the goal type, seeded like plan
// generation so responses stay reproducible.
func (s *PlannerService) motivation(goalText string) string {
	msgs := motivationMessages[utils.GoalType(goalText)]
	rng := rand.New(rand.NewSource(s.seed))
	return msgs[rng.Intn(len(msgs))]
}

func (s *PlannerService) assembleDay(rng *rand.Rand, dayName string, goals models.NutritionalGoals, excludedAllergens, restrictions []string, avoid map[models.MealCategory]map[string]struct{}) models.DayPlan {
	day := models.DayPlan{
		Day:   dayName,
		Meals: make(map[models.MealCategory]models.Meal, len(models.MealCategories)),
	}

	for _, category := range models.MealCategories {
		target := float64(goals.Calories) * categoryBudget[category]

		candidates := s.library.Candidates(category)
		if rng != nil {
			candidates = shuffled(rng, candidates)
		}

		in := SelectionInput{
			Category:          category,
			TargetKcal:        target,
			ExcludedAllergens: excludedAllergens,
			Restrictions:      restrictions,
		}
		if avoid != nil {
			in.Avoid = avoid[category]
		}

		selected, ok := s.selector.Select(in, candidates)
		if !ok {
			continue
		}
		selected = fitPortion(selected, target)
		day.Meals[category] = selected
		day.Totals = day.Totals.Add(selected.Nutrients)
	}
	return day
}

// fitPortion rescales a template's portions toward the calorie
// sub-target when the closest candidate is still more than 15% off.
// The factor is clamped so meals stay recognizable.
func fitPortion(m models.Meal, targetKcal float64) models.Meal {
	if targetKcal <= 0 || m.Nutrients.Calories <= 0 {
		return m
	}
	if math.Abs(m.Nutrients.Calories-targetKcal)/targetKcal <= portionTolerance {
		return m
	}
	factor := targetKcal / m.Nutrients.Calories
	factor = math.Min(math.Max(factor, portionScaleMin), portionScaleMax)

	n := m.Nutrients
	m.Nutrients = models.NutrientProfile{
		Calories: math.Round(n.Calories * factor),
		ProteinG: round1(n.ProteinG * factor),
		FatG:     round1(n.FatG * factor),
		CarbsG:   round1(n.CarbsG * factor),
		FiberG:   round1(n.FiberG * factor),
		SugarG:   round1(n.SugarG * factor),
		SodiumMg: round1(n.SodiumMg * factor),
	}
	return m
}

func windowNames(window map[models.MealCategory][][]string) map[models.MealCategory]map[string]struct{} {
	avoid := make(map[models.MealCategory]map[string]struct{}, len(window))
	for category, days := range window {
		names := make(map[string]struct{})
		for _, day := range days {
			for _, n := range day {
				names[n] = struct{}{}
			}
		}
		avoid[category] = names
	}
	return avoid
}

func repeatsWindowed(day models.DayPlan, avoid map[models.MealCategory]map[string]struct{}) bool {
	for category, meal := range day.Meals {
		if names, ok := avoid[category]; ok {
			if _, repeat := names[meal.Name]; repeat {
				return true
			}
		}
	}
	return false
}

func shuffled(rng *rand.Rand, meals []models.Meal) []models.Meal {
	out := make([]models.Meal, len(meals))
	copy(out, meals)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
