package controllers

import (
	"errors"
	"net/http"

	"nutriplan/models"
	"nutriplan/services"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileRequest is the common user-data payload.
type ProfileRequest struct {
	HeightCm      float64              `json:"height_cm" binding:"required"`
	WeightKg      float64              `json:"weight_kg" binding:"required"`
	AgeYears      int                  `json:"age_years" binding:"required"`
	Gender        models.Gender        `json:"gender"`
	ActivityLevel models.ActivityLevel `json:"activity_level"`
}

func (r ProfileRequest) profile() models.HealthProfile {
	gender := r.Gender
	if gender == "" {
		gender = models.GenderUnspecified
	}
	return models.HealthProfile{
		HeightCm:      r.HeightCm,
		WeightKg:      r.WeightKg,
		AgeYears:      r.AgeYears,
		Gender:        gender,
		ActivityLevel: r.ActivityLevel,
	}
}

type PlanController struct {
	planner *services.PlannerService
	log     *zap.Logger
}

func NewPlanController(planner *services.PlannerService, log *zap.Logger) *PlanController {
	return &PlanController{planner: planner, log: log}
}

// CalculateEnergy handles POST /calculate-bmr-tdee.
func (pc *PlanController) CalculateEnergy(c *gin.Context) {
	var req struct {
		ProfileRequest
		Goal string `json:"goal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := req.profile()
	energy, err := pc.planner.CalculateGoals(profile, req.Goal)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bmi := profile.BMI()
	c.JSON(http.StatusOK, gin.H{
		"bmr":          energy.BMR,
		"tdee":         energy.TDEE,
		"bmi":          bmi,
		"bmi_category": utils.BMICategory(bmi),
		"goals":        energy.Goals,
	})
}

// GenerateMealPlan handles POST /generate-meal-plan.
func (pc *PlanController) GenerateMealPlan(c *gin.Context) {
	var req struct {
		ProfileRequest
		Goal         string             `json:"goal"`
		Allergies    models.AllergyList `json:"allergies"`
		Restrictions []string           `json:"dietary_restrictions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := pc.planner.GeneratePlan(req.profile(), req.Goal, req.Allergies, req.Restrictions)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pc.log.Info("meal plan generated",
		zap.Int("caloric_goal", result.Energy.Goals.Calories),
		zap.Int("warnings", len(result.Warnings)))

	c.JSON(http.StatusOK, gin.H{
		"bmr":                result.Energy.BMR,
		"tdee":               result.Energy.TDEE,
		"goals":              result.Energy.Goals,
		"weekly_plan":        result.Week,
		"motivation_message": result.Motivation,
		"safety_warnings":    result.Warnings,
	})
}
