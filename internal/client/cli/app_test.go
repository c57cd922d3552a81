package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/api"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/cache"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/config"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/nav"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/session"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/token"
	"github.com/KingTechFoundation/fitlife-cli/internal/logging"
)

type fakeSession struct {
	st        session.State
	subs      []func(session.State)
	user      *models.User
	loginErr  error
	signupErr error
	signups   int
}

func (f *fakeSession) publish() {
	for _, fn := range f.subs {
		fn(f.st)
	}
}

func (f *fakeSession) State() session.State { return f.st }

func (f *fakeSession) Subscribe(fn func(session.State)) func() {
	f.subs = append(f.subs, fn)
	return func() {}
}

func (f *fakeSession) CheckAuth(ctx context.Context) session.State {
	f.st = session.State{User: f.user}
	f.publish()
	return f.st
}

func (f *fakeSession) Login(ctx context.Context, email, password string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.st = session.State{User: f.user}
	f.publish()
	return nil
}

func (f *fakeSession) Signup(ctx context.Context, fullName, email, phone, password string) error {
	f.signups++
	return f.signupErr
}

func (f *fakeSession) Logout() {
	f.st = session.State{}
	f.publish()
}

func (f *fakeSession) Refresh(user *models.User) {
	f.st = session.State{User: user}
	f.publish()
}

// fakeBackend embeds the interface so tests only stub the calls they exercise.
type fakeBackend struct {
	backend
	verifyEmail  string
	verifyCode   string
	resent       string
	verifyErr    error
	summary      *models.AnalyticsSummary
	summaryErr   error
	summaryCalls int
}

func (f *fakeBackend) VerifyEmail(ctx context.Context, email, code string) error {
	f.verifyEmail, f.verifyCode = email, code
	return f.verifyErr
}

func (f *fakeBackend) ResendVerification(ctx context.Context, email string) error {
	f.resent = email
	return nil
}

func (f *fakeBackend) AnalyticsSummary(ctx context.Context, period string) (*models.AnalyticsSummary, error) {
	f.summaryCalls++
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summary, nil
}

type fakeSnaps struct {
	data    map[string][]byte
	cleared bool
}

func newFakeSnaps() *fakeSnaps {
	return &fakeSnaps{data: map[string][]byte{}}
}

func (f *fakeSnaps) SetJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeSnaps) GetJSON(ctx context.Context, key string, v any) (bool, time.Time, error) {
	b, ok := f.data[key]
	if !ok {
		return false, time.Time{}, nil
	}
	return true, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), json.Unmarshal(b, v)
}

func (f *fakeSnaps) Clear(ctx context.Context) error {
	f.cleared = true
	f.data = map[string][]byte{}
	return nil
}

func newTestApp(sess *fakeSession, be backend) (*App, *fakeSnaps, *bytes.Buffer) {
	out := &bytes.Buffer{}
	snaps := newFakeSnaps()
	app := &App{
		config:  &config.Config{},
		session: sess,
		api:     be,
		tokens:  token.NewMemStore(),
		router:  nav.NewRouter(),
		cache:   snaps,
		log:     logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}
	sess.Subscribe(func(st session.State) {
		app.router.Apply(st.Loading, st.IsAuthenticated(), st.User)
	})
	return app, snaps, out
}

func stubTextInput(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		require.Less(t, i, len(answers), "unexpected prompt: %s", prompt)
		s := answers[i]
		i++
		return s, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func TestLogin_OnboardedUserLandsOnApp(t *testing.T) {
	sess := &fakeSession{user: &models.User{Email: "amy@example.com", FullName: "Amy", OnboardingCompleted: true}}
	app, snaps, out := newTestApp(sess, &fakeBackend{})
	stubTextInput(t, "amy@example.com")
	stubPassword(t, "secret123")

	require.NoError(t, app.Login(context.Background()))

	require.Equal(t, nav.ScreenApp, app.router.Screen())
	require.Contains(t, out.String(), "Logged in as amy@example.com.")
	require.Contains(t, snaps.data, cache.KeyUser)
}

func TestLogin_NewUserIsSentToOnboarding(t *testing.T) {
	sess := &fakeSession{user: &models.User{Email: "bob@example.com"}}
	app, _, out := newTestApp(sess, &fakeBackend{})
	stubTextInput(t, "bob@example.com")
	stubPassword(t, "secret123")

	require.NoError(t, app.Login(context.Background()))

	require.Equal(t, nav.ScreenOnboarding, app.router.Screen())
	require.Contains(t, out.String(), "Complete your health profile")
}

func TestLogin_FailureLeavesScreenOnLogin(t *testing.T) {
	sess := &fakeSession{loginErr: &api.Error{Status: 401, Message: "Invalid credentials"}}
	app, _, _ := newTestApp(sess, &fakeBackend{})
	stubTextInput(t, "amy@example.com")
	stubPassword(t, "wrong")

	err := app.Login(context.Background())
	require.Error(t, err)
	require.Equal(t, nav.ScreenLogin, app.router.Screen())
	require.False(t, app.isLoggedIn())
}

func TestSignup_MovesToVerifyCarryingEmail(t *testing.T) {
	sess := &fakeSession{}
	app, _, _ := newTestApp(sess, &fakeBackend{})
	stubTextInput(t, "Amy Pond", "amy@example.com", "+15550100")
	stubPassword(t, "secret123")

	require.NoError(t, app.Signup(context.Background()))

	require.Equal(t, 1, sess.signups)
	require.Equal(t, nav.ScreenVerifyEmail, app.router.Screen())
	require.Equal(t, "amy@example.com", app.router.VerifyEmail())
}

func TestVerify_UsesCarriedEmailAndReturnsToLogin(t *testing.T) {
	be := &fakeBackend{}
	app, _, _ := newTestApp(&fakeSession{}, be)
	app.router.StartVerify("amy@example.com")
	stubTextInput(t, "123456")

	require.NoError(t, app.Verify(context.Background()))

	require.Equal(t, "amy@example.com", be.verifyEmail)
	require.Equal(t, "123456", be.verifyCode)
	require.Equal(t, nav.ScreenLogin, app.router.Screen())
}

func TestVerify_EmptyCodeResends(t *testing.T) {
	be := &fakeBackend{}
	app, _, out := newTestApp(&fakeSession{}, be)
	app.router.StartVerify("amy@example.com")
	stubTextInput(t, "")

	require.NoError(t, app.Verify(context.Background()))

	require.Equal(t, "amy@example.com", be.resent)
	require.Empty(t, be.verifyEmail)
	require.Contains(t, out.String(), "resent")
}

func TestLogout_ClearsCacheAndForcesHome(t *testing.T) {
	sess := &fakeSession{user: &models.User{Email: "amy@example.com", OnboardingCompleted: true}}
	app, snaps, _ := newTestApp(sess, &fakeBackend{})
	sess.CheckAuth(context.Background())
	app.router.SetTab(nav.TabMeals)
	require.Equal(t, nav.ScreenApp, app.router.Screen())

	require.NoError(t, app.Logout(context.Background()))

	require.True(t, snaps.cleared)
	require.Equal(t, nav.ScreenHome, app.router.Screen())
	require.Equal(t, nav.TabDashboard, app.router.Tab())
	require.False(t, app.isLoggedIn())
}

func TestDashboard_RequiresLogin(t *testing.T) {
	app, _, out := newTestApp(&fakeSession{}, &fakeBackend{})

	require.NoError(t, app.Dashboard(context.Background()))
	require.Contains(t, out.String(), "Log in first.")
}

func TestDashboard_FallsBackToCachedSummaryWhenOffline(t *testing.T) {
	user := &models.User{Email: "amy@example.com", FullName: "Amy", OnboardingCompleted: true}
	sess := &fakeSession{user: user}
	be := &fakeBackend{summaryErr: api.ErrUnavailable}
	app, snaps, out := newTestApp(sess, be)
	sess.CheckAuth(context.Background())

	cached := models.AnalyticsSummary{WorkoutsCompleted: 4, StreakDays: 9}
	require.NoError(t, snaps.SetJSON(context.Background(), cache.KeyDashboard, cached))

	require.NoError(t, app.Dashboard(context.Background()))

	require.Contains(t, out.String(), "9 days")
	require.Contains(t, out.String(), "offline")
}

func TestDashboard_OfflineWithoutCacheReportsError(t *testing.T) {
	user := &models.User{Email: "amy@example.com", OnboardingCompleted: true}
	sess := &fakeSession{user: user}
	app, _, _ := newTestApp(sess, &fakeBackend{summaryErr: api.ErrUnavailable})
	sess.CheckAuth(context.Background())

	err := app.Dashboard(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestDashboard_StoresFreshSummary(t *testing.T) {
	user := &models.User{Email: "amy@example.com", OnboardingCompleted: true}
	sess := &fakeSession{user: user}
	be := &fakeBackend{summary: &models.AnalyticsSummary{WorkoutsCompleted: 3}}
	app, snaps, _ := newTestApp(sess, be)
	sess.CheckAuth(context.Background())

	require.NoError(t, app.Dashboard(context.Background()))
	require.Contains(t, snaps.data, cache.KeyDashboard)
}

func TestGoTo_SwitchesTabsInsideApp(t *testing.T) {
	user := &models.User{Email: "amy@example.com", OnboardingCompleted: true}
	sess := &fakeSession{user: user}
	app, _, out := newTestApp(sess, &fakeBackend{})
	sess.CheckAuth(context.Background())

	require.NoError(t, app.GoTo(context.Background(), []string{"coach"}))
	require.Equal(t, nav.TabCoach, app.router.Tab())

	require.NoError(t, app.GoTo(context.Background(), []string{"bogus"}))
	require.Contains(t, out.String(), "Unknown view: bogus")
}

func TestGoTo_BlockedOutsideApp(t *testing.T) {
	app, _, out := newTestApp(&fakeSession{}, &fakeBackend{})

	require.NoError(t, app.GoTo(context.Background(), []string{"meals"}))
	require.Contains(t, out.String(), "Finish onboarding first.")
}

func TestGetStatus_ReflectsScreenAndTab(t *testing.T) {
	user := &models.User{Email: "amy@example.com", OnboardingCompleted: true}
	sess := &fakeSession{user: user}
	app, _, _ := newTestApp(sess, &fakeBackend{})

	require.Equal(t, "(home)", app.getStatus())

	sess.CheckAuth(context.Background())
	app.router.SetTab(nav.TabTracker)
	require.Equal(t, "(amy@example.com app/tracker)", app.getStatus())
}
