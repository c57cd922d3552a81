package cli

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/nutrition"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Onboarding walks through the one-time health questionnaire and submits
// it. The backend flips onboardingCompleted and returns the refreshed user;
// the session subscriber then routes the shell into the app.
func (a *App) Onboarding(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}
	if st := a.session.State(); st.User.OnboardingCompleted {
		fmt.Fprintln(a.out, "Your health profile is already complete.")
		return nil
	}

	p, err := a.promptOnboarding()
	if err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile incomplete: %w", err)
	}

	user, err := a.api.SaveOnboarding(ctx, p)
	if err != nil {
		return err
	}
	a.refreshUser(ctx, user)

	goals := nutrition.EstimateGoals(p)
	bmi := nutrition.BMI(p.HeightCM, p.WeightKG)
	fmt.Fprintln(a.out, renderCard("Your starting point", [][2]string{
		{"BMI", fmt.Sprintf("%.1f (%s)", bmi, nutrition.ClassifyBMI(bmi))},
		{"Daily calories", fmt.Sprintf("%.0f kcal", goals.Calories)},
		{"Protein", fmt.Sprintf("%.0f g", goals.ProteinG)},
		{"Carbs", fmt.Sprintf("%.0f g", goals.CarbsG)},
		{"Fat", fmt.Sprintf("%.0f g", goals.FatG)},
	}))
	if a.router.Screen() == nav.ScreenApp {
		fmt.Fprintln(a.out, "Onboarding complete. Welcome to FitLife!")
	}
	return nil
}

func (a *App) promptOnboarding() (*models.OnboardingProfile, error) {
	age, err := GetNumber(a.reader, "Age", a.out)
	if err != nil {
		return nil, err
	}
	gender, err := GetChoice(a.reader, "Gender", []string{"male", "female", "other"}, a.out)
	if err != nil {
		return nil, err
	}
	height, err := GetNumber(a.reader, "Height (cm)", a.out)
	if err != nil {
		return nil, err
	}
	weight, err := GetNumber(a.reader, "Weight (kg)", a.out)
	if err != nil {
		return nil, err
	}
	activity, err := GetChoice(a.reader, "Activity level", []string{"sedentary", "light", "moderate", "active", "very_active"}, a.out)
	if err != nil {
		return nil, err
	}
	goal, err := GetChoice(a.reader, "Goal", []string{"maintain", "lose_weight", "gain_muscle", "improve_fitness"}, a.out)
	if err != nil {
		return nil, err
	}
	medical, err := GetList(a.reader, "Medical conditions", a.out)
	if err != nil {
		return nil, err
	}
	dietary, err := GetList(a.reader, "Dietary restrictions", a.out)
	if err != nil {
		return nil, err
	}
	sleep, err := GetNumber(a.reader, "Average sleep (hours, empty to skip)", a.out)
	if err != nil {
		return nil, err
	}
	stress, err := GetChoice(a.reader, "Stress level", []string{"low", "medium", "high"}, a.out)
	if err != nil {
		return nil, err
	}
	water, err := GetNumber(a.reader, "Water intake (litres/day, empty to skip)", a.out)
	if err != nil {
		return nil, err
	}
	notes, err := getSimpleText(a.reader, "Anything else your coach should know? (empty to skip)", a.out)
	if err != nil {
		return nil, err
	}

	return &models.OnboardingProfile{
		Age:                 int(age),
		Gender:              gender,
		HeightCM:            height,
		WeightKG:            weight,
		ActivityLevel:       activity,
		Goal:                goal,
		MedicalConditions:   medical,
		DietaryRestrictions: dietary,
		SleepHours:          sleep,
		StressLevel:         stress,
		WaterIntakeL:        water,
		Notes:               notes,
	}, nil
}
