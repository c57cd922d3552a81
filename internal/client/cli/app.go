package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/api"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/cache"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/config"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/session"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/token"
	"github.com/KingTechFoundation/fitlife-cli/internal/logging"
)

// backend is the slice of the API client the views consume.
type backend interface {
	VerifyEmail(ctx context.Context, email, code string) error
	ResendVerification(ctx context.Context, email string) error
	SaveOnboarding(ctx context.Context, p *models.OnboardingProfile) (*models.User, error)
	UpdateProfile(ctx context.Context, upd api.ProfileUpdate) (*models.User, error)
	NotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, prefs *models.NotificationPreferences) (*models.NotificationPreferences, error)
	MealPlan(ctx context.Context, date string) (*models.MealPlan, error)
	LogMeal(ctx context.Context, mealID string) error
	WorkoutPlan(ctx context.Context) (*models.WorkoutPlan, error)
	CompleteWorkout(ctx context.Context, workoutID string) error
	LogMetric(ctx context.Context, metric string, value float64, unit string) (*models.TrackerEntry, error)
	TrackerEntries(ctx context.Context, metric string, limit int) ([]models.TrackerEntry, error)
	AnalyticsSummary(ctx context.Context, period string) (*models.AnalyticsSummary, error)
	Devices(ctx context.Context) ([]models.Device, error)
	ConnectDevice(ctx context.Context, provider string) (*models.Device, error)
	Resources(ctx context.Context, category string) ([]models.Resource, error)
	AskCoach(ctx context.Context, message string) (*models.CoachReply, error)
}

// sessionService is the slice of the session manager the shell drives.
type sessionService interface {
	State() session.State
	Subscribe(fn func(session.State)) func()
	CheckAuth(ctx context.Context) session.State
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, fullName, email, phone, password string) error
	Logout()
	Refresh(user *models.User)
}

// snapshots is the optional offline cache; a nil value disables caching.
type snapshots interface {
	SetJSON(ctx context.Context, key string, v any) error
	GetJSON(ctx context.Context, key string, v any) (bool, time.Time, error)
	Clear(ctx context.Context) error
}

type App struct {
	config  *config.Config
	session sessionService
	api     backend
	tokens  token.Store
	router  *nav.Router
	cache   snapshots
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewFileLogger(cfg.LogFile, slog.LevelInfo)

	tokens, err := token.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("initializing token store: %w", err)
	}

	apiClient := api.New(cfg.APIBaseURL, cfg.RequestTimeout, tokens, log)
	sess := session.NewManager(apiClient, tokens, log)

	snaps, err := cache.Open(ctx, filepath.Join(cfg.StateDir, "cache.db"))
	if err != nil {
		// The shell works without the cache, just with no offline display.
		log.Warn(ctx, "snapshot cache unavailable", "error", err)
		snaps = nil
	}

	app := &App{
		config:  cfg,
		session: sess,
		api:     apiClient,
		tokens:  tokens,
		router:  nav.NewRouter(),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	if snaps != nil {
		app.cache = snaps
	}

	// The router re-evaluates the reactive rule on every session change, so
	// a session mutation can never leave the screen stale.
	sess.Subscribe(func(st session.State) {
		app.router.Apply(st.Loading, st.IsAuthenticated(), st.User)
	})

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated()
}

// getStatus builds the prompt segment: identity plus screen (and tab while
// inside the app).
func (a *App) getStatus() string {
	st := a.session.State()
	s := ""
	if st.User != nil {
		s = st.User.Email + " "
	}
	if a.router.Screen() == nav.ScreenApp {
		s += fmt.Sprintf("%s/%s", a.router.Screen(), a.router.Tab())
	} else {
		s += string(a.router.Screen())
	}
	return fmt.Sprintf("(%s)", s)
}

// Run performs the startup session probe and then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "shell started", "api", a.config.APIBaseURL)
	fmt.Fprintln(a.out, renderTitle("Welcome to FitLife (type 'help' for commands)"))

	// Session probe. The placeholder is the only thing rendered while the
	// probe is in flight.
	fmt.Fprintln(a.out, "Checking session...")
	st := a.session.CheckAuth(ctx)
	if st.IsAuthenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", st.User.FullName)
		a.saveUserSnapshot(ctx, st.User)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) saveUserSnapshot(ctx context.Context, user *models.User) {
	if a.cache == nil || user == nil {
		return
	}
	if err := a.cache.SetJSON(ctx, cache.KeyUser, user); err != nil {
		a.log.Warn(ctx, "saving user snapshot", "error", err)
	}
}

// refreshUser replaces the session's cached user after a profile or
// onboarding save and keeps the offline snapshot in step.
func (a *App) refreshUser(ctx context.Context, user *models.User) {
	if user == nil {
		return
	}
	a.session.Refresh(user)
	a.saveUserSnapshot(ctx, user)
}

// Home returns to the landing screen. While authenticated the reactive rule
// immediately routes back into the app, so the command only matters before
// login.
func (a *App) Home(ctx context.Context) error {
	a.router.GoTo(nav.ScreenHome)
	st := a.session.State()
	a.router.Apply(st.Loading, st.IsAuthenticated(), st.User)
	if a.router.Screen() == nav.ScreenHome {
		fmt.Fprintln(a.out, renderTitle("FitLife"))
		fmt.Fprintln(a.out, "Your personal fitness and nutrition coach. Run 'signup' to create an account or 'login' to continue.")
	}
	return nil
}

// GoTo handles "goto <tab>" jumps inside the app, including cross-view ones
// triggered from other views.
func (a *App) GoTo(ctx context.Context, args []string) error {
	if a.router.Screen() != nav.ScreenApp {
		fmt.Fprintln(a.out, "Finish onboarding first.")
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: goto <dashboard|workouts|meals|tracker|analytics|coach|resources|profile>")
		return nil
	}
	tab, ok := nav.ParseTab(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Unknown view: %s\n", args[0])
		return nil
	}
	a.router.SetTab(tab)
	return nil
}
