package models

import "errors"

// Gender options for BMR calculation.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// ActivityLevel buckets map onto TDEE multipliers (1.2–1.9).
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var ErrInvalidProfile = errors.New("height, weight and age must be positive")

// HealthProfile holds the anthropometric inputs for one planning request.
// Created once per request, never mutated.
type HealthProfile struct {
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	AgeYears      int           `json:"age_years"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// Validate rejects non-positive height/weight/age. Unknown gender and
// activity level strings are not errors; they fall back to documented
// defaults downstream.
func (p HealthProfile) Validate() error {
	if p.HeightCm <= 0 || p.WeightKg <= 0 || p.AgeYears <= 0 {
		return ErrInvalidProfile
	}
	return nil
}

// BMI computes body mass index from the profile.
func (p HealthProfile) BMI() float64 {
	h := p.HeightCm / 100.0
	return p.WeightKg / (h * h)
}
