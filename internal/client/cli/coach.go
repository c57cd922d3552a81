package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
)

// Coach sends one question to the AI coach: coach <question...>.
// Without arguments it prompts for the question interactively.
func (a *App) Coach(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabCoach)

	message := strings.Join(args, " ")
	if message == "" {
		var err error
		message, err = getSimpleText(a.reader, "Ask your coach", a.out)
		if err != nil {
			return err
		}
	}
	if message == "" {
		return nil
	}

	reply, err := a.api.AskCoach(ctx, message)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s\n", renderTitle("Coach:"), reply.Message)
	return nil
}

// Resources lists articles from the education library:
// resources [category].
func (a *App) Resources(ctx context.Context, args []string) error {
	if !a.guardApp() {
		return nil
	}
	a.router.SetTab(nav.TabResources)

	category := ""
	if len(args) == 1 {
		category = args[0]
	}

	items, err := a.api.Resources(ctx, category)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderTitle("Resources"))
	for _, r := range items {
		fmt.Fprintf(a.out, "  [%-10s] %-40s %s\n", r.Category, r.Title, r.URL)
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "  Nothing here yet.")
	}
	return nil
}
