package controllers

import (
	"net/http"

	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.FoodCatalog
}

func NewCatalogController(catalog *services.FoodCatalog) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// FoodDatabase handles GET /food-database.
func (cc *CatalogController) FoodDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": cc.catalog.Version(),
		"foods":   cc.catalog.Entries(),
	})
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "nutriplan"})
}
