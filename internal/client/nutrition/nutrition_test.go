package nutrition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
)

func TestBMI(t *testing.T) {
	require.InDelta(t, 22.86, BMI(175, 70), 0.01)
	require.Zero(t, BMI(0, 70))
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{0, "unknown"},
		{17.0, "underweight"},
		{22.0, "normal"},
		{27.5, "overweight"},
		{33.0, "obese"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ClassifyBMI(tt.bmi))
	}
}

func TestBMR_MifflinStJeor(t *testing.T) {
	male := &models.OnboardingProfile{Age: 30, Gender: "male", HeightCM: 180, WeightKG: 80}
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	require.InDelta(t, 1780, BMR(male), 0.001)

	female := &models.OnboardingProfile{Age: 25, Gender: "female", HeightCM: 165, WeightKG: 60}
	// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	require.InDelta(t, 1345.25, BMR(female), 0.001)
}

func TestDailyCalories(t *testing.T) {
	p := &models.OnboardingProfile{
		Age: 30, Gender: "male", HeightCM: 180, WeightKG: 80,
		ActivityLevel: "moderate", Goal: "lose_weight",
	}
	// 1780 * 1.55 - 500 = 2259
	require.InDelta(t, 2259, DailyCalories(p), 0.001)

	p.ActivityLevel = "unheard-of"
	p.Goal = "maintain"
	// falls back to sedentary: 1780 * 1.2
	require.InDelta(t, 2136, DailyCalories(p), 0.001)
}

func TestEstimateGoals_SplitAddsUp(t *testing.T) {
	p := &models.OnboardingProfile{
		Age: 30, Gender: "female", HeightCM: 165, WeightKG: 60,
		ActivityLevel: "light", Goal: "maintain",
	}
	g := EstimateGoals(p)

	require.Greater(t, g.Calories, 0.0)
	recomposed := g.ProteinG*4 + g.CarbsG*4 + g.FatG*9
	require.InDelta(t, g.Calories, recomposed, 15, "macro grams must re-compose to the calorie target")
}
