package controllers

import (
	"errors"
	"net/http"

	"nutriplan/models"
	"nutriplan/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalysisController struct {
	analysis  *services.AnalysisService
	planner   *services.PlannerService
	evaluator *services.ComplianceEvaluator
	log       *zap.Logger
}

func NewAnalysisController(analysis *services.AnalysisService, planner *services.PlannerService, log *zap.Logger) *AnalysisController {
	return &AnalysisController{
		analysis:  analysis,
		planner:   planner,
		evaluator: services.NewComplianceEvaluator(),
		log:       log,
	}
}

// AnalyzeMeal handles POST /analyze-meal: detections in, nutrient
// totals, allergy warnings and progress against the user's goals out.
func (ac *AnalysisController) AnalyzeMeal(c *gin.Context) {
	var req struct {
		ProfileRequest
		Goal       string                 `json:"goal"`
		Allergies  models.AllergyList     `json:"allergies"`
		Detections []models.FoodDetection `json:"detections" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	energy, err := ac.planner.CalculateGoals(req.profile(), req.Goal)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	analysis := ac.analysis.AnalyzeMeal(req.Detections, req.Allergies)
	progress := ac.analysis.Progress(energy.Goals, analysis.Totals)

	ac.log.Info("meal analyzed",
		zap.Int("foods", len(analysis.Foods)),
		zap.Float64("calories", analysis.Totals.Calories))

	c.JSON(http.StatusOK, gin.H{
		"analysis":         analysis,
		"progress_metrics": progress,
		"goals":            energy.Goals,
	})
}

// EvaluateCompliance handles POST /evaluate-compliance: a diet plan and
// consumed nutrients in, a four-state assessment out.
func (ac *AnalysisController) EvaluateCompliance(c *gin.Context) {
	var req struct {
		Plan     models.DietPlan        `json:"plan" binding:"required"`
		Consumed models.NutrientProfile `json:"consumed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment := ac.evaluator.Evaluate(req.Plan, services.ConsumedFromProfile(req.Consumed))
	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}
