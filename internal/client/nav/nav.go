// Package nav holds the view-routing state machine: which screen the shell
// is on, which tab of the main application is active, and the pure rule that
// reroutes screens whenever the session changes.
package nav

import "github.com/KingTechFoundation/fitlife-cli/internal/client/models"

// Screen is one of the top-level shell states.
type Screen string

const (
	ScreenHome        Screen = "home"
	ScreenLogin       Screen = "login"
	ScreenSignup      Screen = "signup"
	ScreenVerifyEmail Screen = "verify-email"
	ScreenOnboarding  Screen = "onboarding"
	ScreenApp         Screen = "app"
)

// Tab is one of the views inside the authenticated application.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabWorkouts  Tab = "workouts"
	TabMeals     Tab = "meals"
	TabTracker   Tab = "tracker"
	TabAnalytics Tab = "analytics"
	TabCoach     Tab = "coach"
	TabResources Tab = "resources"
	TabProfile   Tab = "profile"
)

var tabs = map[string]Tab{
	string(TabDashboard): TabDashboard,
	string(TabWorkouts):  TabWorkouts,
	string(TabMeals):     TabMeals,
	string(TabTracker):   TabTracker,
	string(TabAnalytics): TabAnalytics,
	string(TabCoach):     TabCoach,
	string(TabResources): TabResources,
	string(TabProfile):   TabProfile,
}

// ParseTab resolves a user-typed tab name.
func ParseTab(s string) (Tab, bool) {
	t, ok := tabs[s]
	return t, ok
}

// Next is the routing rule, a pure function of the session snapshot and the
// current screen:
//
//   - while the initial probe is loading, nothing moves;
//   - an authenticated session always lands on app, or on onboarding until
//     the backend has flipped onboardingCompleted;
//   - an unauthenticated session is pushed off app/onboarding back to home,
//     while home/login/signup/verify-email are left untouched.
//
// Callers invoke it after every session mutation and every manual
// navigation, so a session change can never leave the screen stale.
func Next(loading bool, authed bool, user *models.User, cur Screen) Screen {
	if loading {
		return cur
	}
	if authed {
		if user != nil && user.OnboardingCompleted {
			return ScreenApp
		}
		return ScreenOnboarding
	}
	if cur == ScreenApp || cur == ScreenOnboarding {
		return ScreenHome
	}
	return cur
}

// Router tracks the active screen and tab. Exactly one screen and one tab
// are active at a time; the verify-email screen additionally carries the
// address being verified.
type Router struct {
	screen      Screen
	tab         Tab
	verifyEmail string
}

func NewRouter() *Router {
	return &Router{screen: ScreenHome, tab: TabDashboard}
}

func (r *Router) Screen() Screen { return r.screen }
func (r *Router) Tab() Tab       { return r.tab }

// VerifyEmail returns the address carried alongside the verify-email screen.
func (r *Router) VerifyEmail() string { return r.verifyEmail }

// GoTo performs a manual transition. Transitions are total: any screen may
// be requested from any other.
func (r *Router) GoTo(s Screen) {
	r.screen = s
	if s != ScreenVerifyEmail {
		r.verifyEmail = ""
	}
}

// StartVerify moves to the verify-email screen, carrying the submitted
// address forward from the signup form.
func (r *Router) StartVerify(email string) {
	r.screen = ScreenVerifyEmail
	r.verifyEmail = email
}

// SetTab switches the active view inside the authenticated application.
// Used both by the tab bar and by cross-view jumps ("open meals from the
// dashboard").
func (r *Router) SetTab(t Tab) {
	r.tab = t
}

// Apply runs the routing rule against a session snapshot and records the
// outcome. Returns the screen now active.
func (r *Router) Apply(loading bool, authed bool, user *models.User) Screen {
	r.screen = Next(loading, authed, user, r.screen)
	return r.screen
}

// ForceHome is the logout transition: unconditional, independent of the
// reactive rule.
func (r *Router) ForceHome() {
	r.screen = ScreenHome
	r.tab = TabDashboard
	r.verifyEmail = ""
}
