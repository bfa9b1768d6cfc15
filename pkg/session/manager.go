package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/identity"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/logger"
	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/token"
)

// ActorStore is the external persistence collaborator the manager resolves
// actors through. FindByLogin accepts a username or an email address
// collapsed into a single lookup.
type ActorStore interface {
	FindByLogin(ctx context.Context, login string) (*identity.Actor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*identity.Actor, error)
}

// Manager issues and rotates stateless session tokens. Tokens are never
// stored or revoked server-side; a token becomes unusable only when its
// issue time plus the configured TTL has passed or its signature no longer
// verifies.
type Manager struct {
	tokens *token.Service
	store  ActorStore
	hasher identity.Hasher
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets a custom logger for the manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHasher sets the password hasher, letting tests lower the bcrypt cost.
func WithHasher(hasher identity.Hasher) Option {
	return func(m *Manager) {
		m.hasher = hasher
	}
}

// New creates a session manager from the given config and actor store.
func New(cfg Config, store ActorStore, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrMissingStore
	}

	tokens, err := token.NewFromString(cfg.Secret)
	if err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Manager{
		tokens: tokens,
		store:  store,
		hasher: identity.NewHasher(),
		ttl:    ttl,
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Issue authenticates the credential/password pair and mints a session
// token. Every failure mode -- unknown credential, wrong password,
// unconfirmed identity, inactive account -- returns the same
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (m *Manager) Issue(ctx context.Context, credential, password string) (string, error) {
	actor, err := m.store.FindByLogin(ctx, credential)
	if err != nil {
		m.logger.DebugContext(ctx, "session issue refused",
			slog.String("reason", "unknown credential"),
			logger.Component("session"),
		)
		return "", ErrInvalidCredentials
	}

	if !actor.Usable() {
		m.logger.DebugContext(ctx, "session issue refused",
			slog.String("reason", "actor not usable"),
			logger.ActorID(actor.ID.String()),
			logger.Component("session"),
		)
		return "", ErrInvalidCredentials
	}

	if err := m.hasher.Verify(actor, password); err != nil {
		m.logger.DebugContext(ctx, "session issue refused",
			slog.String("reason", "password mismatch"),
			logger.ActorID(actor.ID.String()),
			logger.Component("session"),
		)
		return "", ErrInvalidCredentials
	}

	return m.mint(actor)
}

// Resolve verifies a bearer token, loads its actor, and mints a replacement
// token with a refreshed issue time. Every successful use extends the
// session's life; the input token stays independently valid until its own
// expiry. Any decode failure, expiry, or unknown actor yields ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, tok string) (*identity.Actor, string, error) {
	var claims token.SessionClaims
	if err := m.tokens.Parse(tok, &claims); err != nil {
		return nil, "", ErrNoSession
	}

	issuedAt := time.Unix(claims.IssuedAt, 0)
	if issuedAt.Add(m.ttl).Before(time.Now()) {
		return nil, "", ErrNoSession
	}

	actorID, err := uuid.Parse(claims.ActorID)
	if err != nil {
		return nil, "", ErrNoSession
	}

	actor, err := m.store.FindByID(ctx, actorID)
	if err != nil {
		m.logger.DebugContext(ctx, "session resolve refused",
			slog.String("reason", "actor not found"),
			logger.ActorID(actorID.String()),
			logger.Component("session"),
		)
		return nil, "", ErrNoSession
	}

	refreshed, err := m.mint(actor)
	if err != nil {
		return nil, "", err
	}

	return actor, refreshed, nil
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// mint produces a fresh token for the actor. The random token id keeps two
// rotations within the same second from colliding into an identical string.
func (m *Manager) mint(actor *identity.Actor) (string, error) {
	return m.tokens.Generate(token.SessionClaims{
		ID:       uuid.NewString(),
		ActorID:  actor.ID.String(),
		IssuedAt: time.Now().Unix(),
	})
}
