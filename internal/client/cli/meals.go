package cli

import (
	"context"
	"fmt"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
)

// Meals shows today's meal plan, or logs a meal as eaten:
//
//	meals            show the plan
//	meals <date>     show the plan for YYYY-MM-DD
//	meals eat <id>   mark a planned meal as eaten
func (a *App) Meals(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabMeals)

	if len(args) >= 2 && args[0] == "eat" {
		if err := a.api.LogMeal(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Meal logged. Enjoy!")
		return nil
	}

	date := ""
	if len(args) == 1 {
		date = args[0]
	}

	plan, err := a.api.MealPlan(ctx, date)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s  (%s, target %.0f kcal)\n", renderTitle("Meal plan"), plan.Date, plan.TargetCalories)
	for _, m := range plan.Meals {
		fmt.Fprintf(a.out, "  %s %-10s %-24s %4.0f kcal  P%.0f C%.0f F%.0f  [%s]\n",
			checkmark(m.Eaten), m.Slot, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, m.ID)
	}
	if len(plan.Meals) == 0 {
		fmt.Fprintln(a.out, "  No meals planned for this day.")
	}
	return nil
}
