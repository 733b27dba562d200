package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/localstore"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/foodieexpress/foodieexpress-backend/pkg/metrics"
	"github.com/foodieexpress/foodieexpress-backend/pkg/security"
)

// State is the session lifecycle phase. Loading is only entered by the
// credentialed flows; guest login and profile updates transition directly.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
)

// Identity is the active user as exposed to the rest of the application.
// It never carries a credential.
type Identity struct {
	ID         string    `json:"id"`
	Email      string    `json:"email,omitempty"`
	FullName   string    `json:"fullName"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	PostalCode string    `json:"postalCode,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	IsGuest    bool      `json:"isGuest,omitempty"`
}

// ProfileUpdate is a partial merge into the active identity. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Email      *string `json:"email,omitempty"`
	FullName   *string `json:"fullName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
}

// account is a registered user as stored in the accounts collection. The
// hash stays inside this package.
type account struct {
	Identity
	PasswordHash string `json:"passwordHash"`
}

// Store owns the single active identity and the registered accounts.
type Store struct {
	mu       sync.Mutex
	state    State
	identity *Identity

	persist  *localstore.Store
	metrics  *metrics.StoreMetrics
	log      *logger.Logger
	password config.PasswordConfig
	delay    time.Duration
	now      func() time.Time
}

// New builds the session store and rehydrates the active identity from the
// user storage key.
func New(ctx context.Context, persist *localstore.Store, password config.PasswordConfig, sim config.SimulationConfig, m *metrics.StoreMetrics, log *logger.Logger) (*Store, error) {
	s := &Store{
		state:    StateUnauthenticated,
		persist:  persist,
		metrics:  m,
		log:      log,
		password: password,
		delay:    sim.AuthDelay,
		now:      time.Now,
	}

	var identity Identity
	found, err := persist.Read(ctx, localstore.KeyUser, &identity)
	if err != nil {
		return nil, err
	}
	if found {
		s.identity = &identity
		s.state = StateAuthenticated
	}
	return s, nil
}

// Current returns the active identity, the session state, and whether a
// session is active.
func (s *Store) Current() (Identity, State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return Identity{}, s.state, false
	}
	return *s.identity, s.state, true
}

// Signup registers a new account and activates it. An email already on
// file fails the whole operation with no partial writes.
func (s *Store) Signup(ctx context.Context, email, passwd, fullName string) (Identity, error) {
	email = normalizeEmail(email)
	s.setState(StateLoading)

	if err := s.sleep(ctx); err != nil {
		s.setState(StateUnauthenticated)
		return Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		s.state = StateUnauthenticated
		return Identity{}, err
	}
	for _, acct := range accounts {
		if acct.Email == email {
			s.state = StateUnauthenticated
			s.metrics.IncAuthAttempt("signup", "duplicate")
			return Identity{}, pkgerrors.New(pkgerrors.CodeConflict, "account already exists")
		}
	}

	hash, err := security.HashPassword(passwd, s.password)
	if err != nil {
		s.state = StateUnauthenticated
		return Identity{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	createdAt := s.now().UTC()
	identity := Identity{
		ID:        fmt.Sprintf("user-%d", createdAt.UnixMilli()),
		Email:     email,
		FullName:  fullName,
		CreatedAt: createdAt,
	}
	accounts = append(accounts, account{Identity: identity, PasswordHash: hash})
	if err := s.persist.Write(ctx, localstore.KeyRegisteredUsers, accounts); err != nil {
		s.state = StateUnauthenticated
		return Identity{}, err
	}

	if err := s.activateLocked(ctx, identity); err != nil {
		return Identity{}, err
	}
	s.metrics.IncAuthAttempt("signup", "success")
	return identity, nil
}

// Login authenticates against the registered accounts. Unknown email and
// wrong password produce the same failure.
func (s *Store) Login(ctx context.Context, email, passwd string) (Identity, error) {
	email = normalizeEmail(email)
	s.setState(StateLoading)

	if err := s.sleep(ctx); err != nil {
		s.setState(StateUnauthenticated)
		return Identity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.readAccounts(ctx)
	if err != nil {
		s.state = StateUnauthenticated
		return Identity{}, err
	}

	for _, acct := range accounts {
		if acct.Email != email {
			continue
		}
		ok, verr := security.VerifyPassword(passwd, acct.PasswordHash)
		if verr != nil || !ok {
			break
		}
		if err := s.activateLocked(ctx, acct.Identity); err != nil {
			return Identity{}, err
		}
		s.metrics.IncAuthAttempt("login", "success")
		return acct.Identity, nil
	}

	s.state = StateUnauthenticated
	s.metrics.IncAuthAttempt("login", "failure")
	return Identity{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

// LoginAsGuest activates an anonymous identity. No account is created and
// no latency is simulated.
func (s *Store) LoginAsGuest(ctx context.Context) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now().UTC()
	identity := Identity{
		ID:        fmt.Sprintf("guest-%d", createdAt.UnixMilli()),
		FullName:  "Guest User",
		CreatedAt: createdAt,
		IsGuest:   true,
	}
	if err := s.activateLocked(ctx, identity); err != nil {
		return Identity{}, err
	}
	s.metrics.IncAuthAttempt("guest", "success")
	return identity, nil
}

// Logout clears the active identity and removes its persisted copy.
// Logging out of an inactive session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.state = StateUnauthenticated
	if err := s.persist.Delete(ctx, localstore.KeyUser); err != nil {
		s.log.Error(ctx, "delete persisted session", err)
		return err
	}
	return nil
}

// UpdateProfile merges the non-nil fields into the active identity. When no
// session is active the update is silently dropped and ok is false.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) (Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return Identity{}, false, nil
	}

	identity := *s.identity
	if update.Email != nil {
		identity.Email = normalizeEmail(*update.Email)
	}
	if update.FullName != nil {
		identity.FullName = *update.FullName
	}
	if update.Phone != nil {
		identity.Phone = *update.Phone
	}
	if update.Address != nil {
		identity.Address = *update.Address
	}
	if update.City != nil {
		identity.City = *update.City
	}
	if update.PostalCode != nil {
		identity.PostalCode = *update.PostalCode
	}

	if err := s.activateLocked(ctx, identity); err != nil {
		return Identity{}, false, err
	}
	return identity, true, nil
}

func (s *Store) activateLocked(ctx context.Context, identity Identity) error {
	if err := s.persist.Write(ctx, localstore.KeyUser, identity); err != nil {
		if s.identity == nil {
			s.state = StateUnauthenticated
		}
		s.log.Error(ctx, "persist session", err)
		return err
	}
	s.identity = &identity
	s.state = StateAuthenticated
	return nil
}

func (s *Store) readAccounts(ctx context.Context) ([]account, error) {
	var accounts []account
	if _, err := s.persist.Read(ctx, localstore.KeyRegisteredUsers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Store) sleep(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeInternal, ctx.Err(), "auth delay interrupted")
	case <-timer.C:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
