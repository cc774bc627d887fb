package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutriplan/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRouter() *gin.Engine {
	cfg := &config.Config{Port: "8080", GinMode: gin.TestMode, PlanSeed: 1}
	return SetupRouter(cfg, zap.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestHealthEndpoint(t *testing.T) {
	w, body := doJSON(t, testRouter(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "nutriplan", body["service"])
}

func TestCalculateBMRTDEEEndpoint(t *testing.T) {
	w, body := doJSON(t, testRouter(), http.MethodPost, "/calculate-bmr-tdee", `{
		"height_cm": 175,
		"weight_kg": 75,
		"age_years": 30,
		"gender": "male",
		"activity_level": "moderate",
		"goal": "maintain weight"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1698.8, body["bmr"])
	assert.Equal(t, 2633.1, body["tdee"])
	assert.Equal(t, "Normal weight", body["bmi_category"])

	goals, ok := body["goals"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2633.0, goals["calories"])
	assert.Equal(t, 2300.0, goals["sodium_mg"])
}

func TestCalculateBMRTDEEMissingFields(t *testing.T) {
	w, _ := doJSON(t, testRouter(), http.MethodPost, "/calculate-bmr-tdee", `{"weight_kg": 75}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateBMRTDEEInvalidProfile(t *testing.T) {
	w, body := doJSON(t, testRouter(), http.MethodPost, "/calculate-bmr-tdee", `{
		"height_cm": -175,
		"weight_kg": 75,
		"age_years": 30
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestGenerateMealPlanEndpoint(t *testing.T) {
	w, body := doJSON(t, testRouter(), http.MethodPost, "/generate-meal-plan", `{
		"height_cm": 175,
		"weight_kg": 75,
		"age_years": 30,
		"gender": "male",
		"activity_level": "moderate",
		"goal": "lose weight",
		"allergies": "nuts",
		"dietary_restrictions": ["vegetarian"]
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	plan, ok := body["weekly_plan"].(map[string]any)
	require.True(t, ok)
	days, ok := plan["days"].([]any)
	require.True(t, ok)
	assert.Len(t, days, 7)

	motivation, ok := body["motivation_message"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, motivation)
}

func TestAnalyzeMealEndpoint(t *testing.T) {
	w, body := doJSON(t, testRouter(), http.MethodPost, "/analyze-meal", `{
		"height_cm": 175,
		"weight_kg": 75,
		"age_years": 30,
		"goal": "maintain weight",
		"allergies": ["fish"],
		"detections": [
			{"name": "salmon", "confidence": 0.9, "estimated_weight_g": 120},
			{"name": "rice", "confidence": 0.8, "estimated_weight_g": 150}
		]
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	foods, ok := analysis["foods"].([]any)
	require.True(t, ok)
	assert.Len(t, foods, 2)

	warnings, ok := analysis["allergy_warnings"].([]any)
	require.True(t, ok)
	assert.Contains(t, warnings, "salmon may contain fish")

	_, ok = body["progress_metrics"].(map[string]any)
	assert.True(t, ok)
}

func TestEvaluateComplianceEndpoint(t *testing.T) {
	w, body := doJSON(t, testRouter(), http.MethodPost, "/evaluate-compliance", `{
		"plan": {
			"name": "low sodium",
			"restrictions": [
				{"name": "sodium cap", "nutrient": "sodium_mg", "max_per_day": 2300, "unit": "mg"}
			]
		},
		"consumed": {"sodium_mg": 3100}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	assessment, ok := body["assessment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "exceeds_limits", assessment["status"])
	assert.Equal(t, 0.0, assessment["score"])
}

func TestFoodDatabaseEndpoint(t *testing.T) {
	w, body := doJSON(t, testRouter(), http.MethodGet, "/food-database", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "2024.1", body["version"])
	foods, ok := body["foods"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, foods)
}
