// Package session owns the authenticated-session state: the current user,
// the loading flag for the startup probe, and the stored credential. The
// Manager is the sole writer of all three; everything else subscribes.
package session

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/api"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
	"github.com/KingTechFoundation/fitlife-cli/internal/client/token"
	"github.com/KingTechFoundation/fitlife-cli/internal/logging"
)

// AuthAPI is the slice of the backend client the session manager needs.
type AuthAPI interface {
	Signup(ctx context.Context, req api.SignupRequest) error
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	Me(ctx context.Context) (*models.User, error)
}

// State is a snapshot of the session. Exactly one of three shapes holds:
// loading (initial probe in flight), absent (User nil), or present.
type State struct {
	User    *models.User
	Loading bool
}

func (s State) IsAuthenticated() bool {
	return s.User != nil
}

type Manager struct {
	api      AuthAPI
	tokens   token.Store
	log      logging.Logger
	validate *validator.Validate

	mu     sync.Mutex
	state  State
	subs   map[int]func(State)
	nextID int
}

func NewManager(authAPI AuthAPI, tokens token.Store, log logging.Logger) *Manager {
	return &Manager{
		api:      authAPI,
		tokens:   tokens,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		subs:     map[int]func(State){},
	}
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to run after every state change, with a snapshot.
// The returned func cancels the subscription.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *Manager) setState(st State) {
	m.mu.Lock()
	m.state = st
	fns := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// CheckAuth is the session probe run once at startup. Without a stored
// credential it settles to absent immediately, with zero network traffic.
// With one, it asks the backend who we are; any failure, unreachable or
// rejected alike, clears the credential and settles to absent. Never
// retried.
func (m *Manager) CheckAuth(ctx context.Context) State {
	if _, ok := m.tokens.Get(); !ok {
		m.setState(State{})
		return m.State()
	}

	m.setState(State{Loading: true})

	user, err := m.api.Me(ctx)
	if err != nil {
		m.log.Info(ctx, "session probe failed, logging out locally", "error", err)
		if rmErr := m.tokens.Remove(); rmErr != nil {
			m.log.Warn(ctx, "removing credential", "error", rmErr)
		}
		m.setState(State{})
		return m.State()
	}

	m.setState(State{User: user})
	return m.State()
}

// Login authenticates, persists the returned credential and publishes the
// user. On failure nothing changes and the backend's error propagates to the
// caller for display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := m.tokens.Set(res.Token); err != nil {
		return err
	}
	m.log.Info(ctx, "logged in", "user", res.User.ID)
	m.setState(State{User: res.User})
	return nil
}

// Signup creates the account but deliberately leaves credential and session
// untouched: the flow requires email verification and an explicit login.
func (m *Manager) Signup(ctx context.Context, fullName, email, phone, password string) error {
	req := api.SignupRequest{FullName: fullName, Email: email, Phone: phone, Password: password}
	if err := m.validate.Struct(req); err != nil {
		return err
	}
	return m.api.Signup(ctx, req)
}

// Logout clears the credential and the user. Synchronous, no network call,
// cannot fail from the caller's point of view.
func (m *Manager) Logout() {
	if err := m.tokens.Remove(); err != nil {
		m.log.Warn(context.Background(), "removing credential on logout", "error", err)
	}
	m.setState(State{})
}

// Refresh replaces the cached user in place after profile or onboarding
// saves. Ignored while logged out.
func (m *Manager) Refresh(user *models.User) {
	m.mu.Lock()
	loggedIn := m.state.User != nil
	m.mu.Unlock()
	if !loggedIn || user == nil {
		return
	}
	m.setState(State{User: user})
}
