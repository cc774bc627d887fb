package routes

import (
	"nutriplan/config"
	"nutriplan/controllers"
	"nutriplan/middlewares"
	"nutriplan/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires the service graph and registers the endpoints.
func SetupRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	catalog := services.DefaultFoodCatalog()
	if cfg.CatalogVersion != "" {
		catalog = services.NewFoodCatalog(cfg.CatalogVersion, catalog.Entries())
	}
	planner := services.NewPlannerService(services.DefaultMealLibrary(), cfg.PlanSeed)
	analysis := services.NewAnalysisService(catalog)

	planCtrl := controllers.NewPlanController(planner, log)
	analysisCtrl := controllers.NewAnalysisController(analysis, planner, log)
	catalogCtrl := controllers.NewCatalogController(catalog)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(cors.Default())

	r.GET("/health", controllers.HealthCheck)
	r.GET("/food-database", catalogCtrl.FoodDatabase)

	r.POST("/calculate-bmr-tdee", planCtrl.CalculateEnergy)
	r.POST("/generate-meal-plan", planCtrl.GenerateMealPlan)
	r.POST("/analyze-meal", analysisCtrl.AnalyzeMeal)
	r.POST("/evaluate-compliance", analysisCtrl.EvaluateCompliance)

	return r
}
