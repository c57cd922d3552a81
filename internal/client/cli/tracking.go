package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
)

// Tracker lists recent measurements:
//
//	tracker           last entries across all metrics
//	tracker <metric>  last entries for one metric (weight, water, ...)
func (a *App) Tracker(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabTracker)

	metric := ""
	if len(args) == 1 {
		metric = args[0]
	}

	entries, err := a.api.TrackerEntries(ctx, metric, 10)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderTitle("Tracker"))
	for _, e := range entries {
		fmt.Fprintf(a.out, "  %s  %-8s %7.1f %s\n", e.LoggedAt.Format("2006-01-02 15:04"), e.Metric, e.Value, e.Unit)
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "  Nothing logged yet. Try: log weight 71.5 kg")
	}
	return nil
}

// LogMetric records one measurement: log <metric> <value> [unit].
func (a *App) LogMetric(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabTracker)

	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: log <metric> <value> [unit]   e.g. log weight 71.5 kg")
		return nil
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(a.out, "Not a number: %s\n", args[1])
		return nil
	}
	unit := ""
	if len(args) > 2 {
		unit = args[2]
	}

	entry, err := a.api.LogMetric(ctx, args[0], value, unit)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged %s = %.1f %s\n", entry.Metric, entry.Value, entry.Unit)
	return nil
}

// Analytics shows progress aggregates: analytics [week|month|year].
func (a *App) Analytics(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabAnalytics)

	period := "week"
	if len(args) == 1 {
		period = args[0]
	}

	sum, err := a.api.AnalyticsSummary(ctx, period)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderSummary(sum))
	return nil
}
