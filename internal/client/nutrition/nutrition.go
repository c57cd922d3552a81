// Package nutrition estimates daily nutrition goals from the onboarding
// profile using the Mifflin-St Jeor equation. Pure arithmetic, no I/O.
package nutrition

import (
	"math"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
)

// Goals is the estimated daily intake target.
type Goals struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

var goalAdjustments = map[string]float64{
	"lose_weight":     -500,
	"maintain":        0,
	"gain_muscle":     300,
	"improve_fitness": 0,
}

// BMI returns the body mass index for a height in cm and weight in kg.
// Zero when the height is not positive.
func BMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	m := heightCM / 100
	return weightKG / (m * m)
}

// ClassifyBMI buckets a BMI value into the standard WHO categories.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi <= 0:
		return "unknown"
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// BMR computes the basal metabolic rate (kcal/day) per Mifflin-St Jeor.
// The sex constant is +5 for male, -161 for female, and their midpoint for
// anything else.
func BMR(p *models.OnboardingProfile) float64 {
	base := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	switch p.Gender {
	case "male":
		return base + 5
	case "female":
		return base - 161
	default:
		return base - 78
	}
}

// DailyCalories multiplies BMR by the activity factor and applies the goal
// adjustment. Unknown activity levels fall back to sedentary.
func DailyCalories(p *models.OnboardingProfile) float64 {
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = activityFactors["sedentary"]
	}
	cal := BMR(p)*factor + goalAdjustments[p.Goal]
	if cal < 0 {
		return 0
	}
	return cal
}

// EstimateGoals derives the daily target with a 30/40/30
// protein/carbs/fat calorie split (4, 4 and 9 kcal per gram).
func EstimateGoals(p *models.OnboardingProfile) Goals {
	cal := DailyCalories(p)
	return Goals{
		Calories: math.Round(cal),
		ProteinG: math.Round(cal * 0.30 / 4),
		CarbsG:   math.Round(cal * 0.40 / 4),
		FatG:     math.Round(cal * 0.30 / 9),
	}
}
