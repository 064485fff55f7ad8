package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/google/uuid"
)

type Store interface {
	Save(ctx context.Context, s Session) error
	// Get returns entities.ErrUnauthorized for unknown or expired tokens.
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

type CustomerResolver interface {
	ResolveCustomerContext(ctx context.Context, userID int64) (entities.CustomerProfile, error)
}

// LogoutHook releases per-session state such as the rider position or the cart view.
// It runs on logout and when the store no longer knows a session this process created.
type LogoutHook func(ctx context.Context, s Session)

const sweepInterval = time.Minute

type Manager struct {
	logger   *slog.Logger
	store    Store
	resolver CustomerResolver
	now      func() time.Time

	mu    sync.RWMutex
	hooks []LogoutHook

	liveMu sync.Mutex
	live   map[string]Session
}

func NewManager(logger *slog.Logger, store Store, resolver CustomerResolver) *Manager {
	return &Manager{
		logger:   logger.With(slog.String("service", "session")),
		store:    store,
		resolver: resolver,
		now:      time.Now,
		live:     make(map[string]Session),
	}
}

func (m *Manager) OnLogout(hook LogoutHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// Login resolves the role-specific identity and stores a new session.
// Customers must resolve to a canonical customer id, otherwise no cart operation is possible.
func (m *Manager) Login(ctx context.Context, role entities.Role, userID int64) (Session, error) {
	s := Session{
		Token:     uuid.NewString(),
		Role:      role,
		UserID:    userID,
		CreatedAt: m.now(),
	}

	switch role {
	case entities.RoleCustomer:
		profile, err := m.resolver.ResolveCustomerContext(ctx, userID)
		switch {
		case errors.Is(err, entities.ErrNotFound):
			return Session{}, fmt.Errorf("%w: %w", entities.ErrNoCustomerContext, err)
		case err != nil:
			return Session{}, err
		case profile.CustomerID == 0:
			return Session{}, entities.ErrNoCustomerContext
		}
		s.CustomerID = profile.CustomerID
	case entities.RoleRider:
		s.RiderID = userID
	case entities.RoleVendor:
		s.VendorID = userID
	}

	if err := m.store.Save(ctx, s); err != nil {
		return Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	m.liveMu.Lock()
	m.live[s.Token] = s
	m.liveMu.Unlock()

	m.logger.InfoContext(ctx, "session started", slog.String("role", string(role)), slog.Int64("user_id", userID))
	return s, nil
}

func (m *Manager) Get(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, entities.ErrUnauthorized
	}
	return m.store.Get(ctx, token)
}

func (m *Manager) Logout(ctx context.Context, token string) error {
	s, err := m.Get(ctx, token)
	if err != nil {
		return err
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	m.claim(token)
	m.runHooks(ctx, s)
	m.logger.InfoContext(ctx, "session ended", slog.String("role", string(s.Role)), slog.Int64("user_id", s.UserID))
	return nil
}

// Sweep releases sessions created here that the store has expired or evicted.
// Store failures other than a missing session leave the session in place.
func (m *Manager) Sweep(ctx context.Context) {
	m.liveMu.Lock()
	tokens := make([]string, 0, len(m.live))
	for token := range m.live {
		tokens = append(tokens, token)
	}
	m.liveMu.Unlock()

	for _, token := range tokens {
		_, err := m.store.Get(ctx, token)
		if err == nil {
			continue
		}
		if !errors.Is(err, entities.ErrUnauthorized) {
			m.logger.WarnContext(ctx, "failed to check session", slog.Any("error", err))
			continue
		}

		s, ok := m.claim(token)
		if !ok {
			continue
		}

		m.runHooks(ctx, s)
		m.logger.InfoContext(ctx, "session expired", slog.String("role", string(s.Role)), slog.Int64("user_id", s.UserID))
	}
}

// Start runs Sweep every minute until ctx is done.
func (m *Manager) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sweep(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// claim removes token from the live set and reports whether it was there.
func (m *Manager) claim(token string) (Session, bool) {
	m.liveMu.Lock()
	defer m.liveMu.Unlock()

	s, ok := m.live[token]
	delete(m.live, token)
	return s, ok
}

func (m *Manager) runHooks(ctx context.Context, s Session) {
	m.mu.RLock()
	hooks := m.hooks
	m.mu.RUnlock()
	for _, hook := range hooks {
		hook(ctx, s)
	}
}
