package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/api"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/cache"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/nutrition"
)

func (a *App) guardApp() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return false
	}
	if a.router.Screen() != nav.ScreenApp {
		fmt.Fprintln(a.out, "Complete onboarding first (run 'onboarding').")
		return false
	}
	return true
}

// Dashboard shows the user's daily targets and weekly progress. When the
// backend is unreachable it falls back to the last cached summary, clearly
// marked as offline.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabDashboard)

	user := a.session.State().User
	rows := [][2]string{
		{"Name", user.FullName},
		{"Goal", goalLabel(user)},
	}
	if p := user.Onboarding; p != nil {
		goals := nutrition.EstimateGoals(p)
		bmi := nutrition.BMI(p.HeightCM, p.WeightKG)
		rows = append(rows,
			[2]string{"BMI", fmt.Sprintf("%.1f (%s)", bmi, nutrition.ClassifyBMI(bmi))},
			[2]string{"Daily calories", fmt.Sprintf("%.0f kcal", goals.Calories)},
		)
	}
	fmt.Fprintln(a.out, renderCard("Today", rows))

	sum, err := a.api.AnalyticsSummary(ctx, "week")
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) && a.cache != nil {
			var cached models.AnalyticsSummary
			if ok, at, cerr := a.cache.GetJSON(ctx, cache.KeyDashboard, &cached); cerr == nil && ok {
				fmt.Fprintln(a.out, renderSummary(&cached))
				fmt.Fprintln(a.out, renderCachedNotice(at))
				return nil
			}
		}
		return err
	}
	if a.cache != nil {
		if cerr := a.cache.SetJSON(ctx, cache.KeyDashboard, sum); cerr != nil {
			a.log.Warn(ctx, "saving dashboard snapshot", "error", cerr)
		}
	}

	fmt.Fprintln(a.out, renderSummary(sum))
	return nil
}

func renderSummary(s *models.AnalyticsSummary) string {
	return renderCard("This week", [][2]string{
		{"Workouts done", fmt.Sprintf("%d", s.WorkoutsCompleted)},
		{"Avg calories", fmt.Sprintf("%.0f kcal", s.AvgCalories)},
		{"Avg sleep", fmt.Sprintf("%.1f h", s.AvgSleepHours)},
		{"Weight change", fmt.Sprintf("%+.1f kg", s.WeightChangeKG)},
		{"Streak", fmt.Sprintf("%d days", s.StreakDays)},
	})
}

func goalLabel(u *models.User) string {
	if u.Onboarding == nil || u.Onboarding.Goal == "" {
		return "not set"
	}
	return u.Onboarding.Goal
}
