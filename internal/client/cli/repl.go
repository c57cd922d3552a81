package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Verify(ctx context.Context) error
	Onboarding(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Workouts(ctx context.Context, args []string) error
	Meals(ctx context.Context, args []string) error
	Tracker(ctx context.Context, args []string) error
	LogMetric(ctx context.Context, args []string) error
	Analytics(ctx context.Context, args []string) error
	Coach(ctx context.Context, args []string) error
	Resources(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	Prefs(ctx context.Context, args []string) error
	Devices(ctx context.Context, args []string) error
	GoTo(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: home, login, signup, verify, help, exit"
	helpLoggedIn  = "Available commands: dashboard, workouts, meals, tracker, log, analytics, coach, resources, profile, prefs, devices, onboarding, goto <view>, logout, exit"
)

// runREPL starts the shell loop. It reads a line from the scanner, parses
// the first token as the command, and dispatches to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Command handlers report their own errors to the user; the loop itself only
// surfaces them, keeping the REPL resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fitlife %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "home":
			err = a.Home(ctx)

		case "login":
			err = a.Login(ctx)

		case "signup":
			err = a.Signup(ctx)

		case "verify":
			err = a.Verify(ctx)

		case "onboarding":
			err = a.Onboarding(ctx)

		case "d", "dashboard":
			err = a.Dashboard(ctx)

		case "workouts":
			err = a.Workouts(ctx, args)

		case "meals":
			err = a.Meals(ctx, args)

		case "tracker":
			err = a.Tracker(ctx, args)

		case "log":
			err = a.LogMetric(ctx, args)

		case "analytics":
			err = a.Analytics(ctx, args)

		case "coach":
			err = a.Coach(ctx, args)

		case "resources":
			err = a.Resources(ctx, args)

		case "profile":
			err = a.Profile(ctx)

		case "prefs":
			err = a.Prefs(ctx, args)

		case "devices":
			err = a.Devices(ctx, args)

		case "goto":
			err = a.GoTo(ctx, args)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
