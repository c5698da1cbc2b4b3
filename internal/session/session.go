/*
Package session tracks who is signed in.

The token lives in a TokenStore so it survives restarts; the user object lives in memory
and is rebuilt by Restore. IsAuthenticated follows the user object, not the token: a
stored token whose user has not been confirmed by the server does not count.
*/
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"gametracker/internal/app/tracker"
	"gametracker/internal/client"
	"gametracker/internal/pkg/logx"
)

// User-facing messages.
const (
	MsgLoginFailed    = "Login failed. Please try again."
	MsgRegisterFailed = "Registration failed. Please try again."
	MsgSessionExpired = "Your session has expired. Please log in again."
)

// State is the lifecycle position of a session.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// AuthAPI is the subset of the client the session drives.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (tracker.AuthResult, error)
	Register(ctx context.Context, username, email, password string) (tracker.AuthResult, error)
	Me(ctx context.Context) (tracker.User, error)
}

// AuthError is returned by Login and Register. Message is safe to show; Err is the cause.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// Store is the current session. It is safe for concurrent use; no lock is held while a
// request is in flight.
type Store struct {
	mu      sync.RWMutex
	tokens  TokenStore
	auth    AuthAPI
	state   State
	user    *tracker.User
	lastErr string
	logger  zerolog.Logger
}

// New returns an anonymous session over tokens. Call Restore to pick up a stored token.
func New(tokens TokenStore, auth AuthAPI) *Store {
	return &Store{
		tokens: tokens,
		auth:   auth,
		logger: logx.Component("session"),
	}
}

// Login signs in with email and password. On failure nothing new is persisted, an existing
// session survives unless the server answered 401, and the returned
// *AuthError carries the server message, or MsgLoginFailed when there is none.
func (s *Store) Login(ctx context.Context, email, password string) error {
	return s.authenticate(MsgLoginFailed, func() (tracker.AuthResult, error) {
		return s.auth.Login(ctx, email, password)
	})
}

// Register creates an account and signs in with it, with the same contract as Login.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	return s.authenticate(MsgRegisterFailed, func() (tracker.AuthResult, error) {
		return s.auth.Register(ctx, username, email, password)
	})
}

func (s *Store) authenticate(fallback string, call func() (tracker.AuthResult, error)) error {
	s.mu.Lock()
	prev := s.user
	s.state = StateAuthenticating
	s.lastErr = ""
	s.mu.Unlock()

	result, err := call()
	if err == nil && result.Token == "" {
		err = errors.New("server returned no token")
	}
	if err == nil {
		err = s.tokens.Set(TokenKey, result.Token)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		msg := client.Message(err)
		if msg == "" {
			msg = fallback
		}
		s.logger.Warn().Err(err).Msg("authentication failed")
		// A failed attempt keeps the previous session; a 401 or an Expire during the call ends it.
		if client.IsUnauthorized(err) {
			prev = nil
			if derr := s.tokens.Delete(TokenKey); derr != nil {
				s.logger.Error().Err(derr).Msg("failed to delete stored token")
			}
		} else if s.user == nil {
			prev = nil
		}
		s.user, s.lastErr = prev, msg
		s.state = StateAnonymous
		if prev != nil {
			s.state = StateAuthenticated
		}
		return &AuthError{Message: msg, Err: err}
	}

	user := result.User
	s.state, s.user = StateAuthenticated, &user
	return nil
}

// Logout forgets the token and the user. It never fails; a storage error is only logged.
func (s *Store) Logout() {
	s.clear("")
}

// Expire ends the session after the server rejected the token. Calling it on an anonymous
// session does nothing.
func (s *Store) Expire() {
	s.mu.RLock()
	active := s.user != nil || s.state != StateAnonymous
	s.mu.RUnlock()

	if !active && (StoredToken{Tokens: s.tokens}).Token() == "" {
		return
	}
	s.clear(MsgSessionExpired)
}

func (s *Store) clear(reason string) {
	if err := s.tokens.Delete(TokenKey); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete stored token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.user, s.lastErr = StateAnonymous, nil, reason
}

// Restore rebuilds the user from a stored token. A rejected token is discarded and the
// session stays anonymous without error; other failures keep the token and are returned.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.tokens.Get(TokenKey)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.state = StateAuthenticating
	s.mu.Unlock()

	user, err := s.auth.Me(ctx)
	if err != nil {
		if client.IsUnauthorized(err) {
			s.clear(MsgSessionExpired)
			return nil
		}
		s.mu.Lock()
		s.state = StateAnonymous
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.user, s.lastErr = StateAuthenticated, &user, ""
	return nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether a user object is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// User returns a copy of the signed-in user.
func (s *Store) User() (tracker.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return tracker.User{}, false
	}
	return *s.user, true
}

// LastError returns the message of the last failed login, registration or expiry.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
