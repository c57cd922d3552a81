package cli

import (
	"context"
	"fmt"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
)

// Workouts shows the weekly training plan, or marks a session done:
//
//	workouts            show the plan
//	workouts done <id>  mark a workout completed
func (a *App) Workouts(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabWorkouts)

	if len(args) >= 2 && args[0] == "done" {
		if err := a.api.CompleteWorkout(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Workout completed. Nice work!")
		return nil
	}

	plan, err := a.api.WorkoutPlan(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s  (week of %s, goal: %s)\n", renderTitle("Workout plan"), plan.Week, plan.Goal)
	for _, w := range plan.Workouts {
		fmt.Fprintf(a.out, "  %s %-9s %-22s %3d min  %-8s [%s]\n",
			checkmark(w.Completed), w.Day, w.Name, w.DurationMin, w.Difficulty, w.ID)
		for _, ex := range w.Exercises {
			fmt.Fprintf(a.out, "      - %s  %dx%d (rest %ds)\n", ex.Name, ex.Sets, ex.Reps, ex.RestSecs)
		}
	}
	if len(plan.Workouts) == 0 {
		fmt.Fprintln(a.out, "  No workouts scheduled this week.")
	}
	return nil
}
