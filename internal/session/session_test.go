package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"gametracker/internal/app/chatbot"
	"gametracker/internal/app/tracker"
	"gametracker/internal/client"
	"gametracker/internal/configs"
	"gametracker/internal/handler"
	"gametracker/internal/pkg/logx"
)

type fakeAuth struct {
	result tracker.AuthResult
	err    error
	me     tracker.User
	meErr  error
}

func (f *fakeAuth) Login(context.Context, string, string) (tracker.AuthResult, error) {
	return f.result, f.err
}

func (f *fakeAuth) Register(context.Context, string, string, string) (tracker.AuthResult, error) {
	return f.result, f.err
}

func (f *fakeAuth) Me(context.Context) (tracker.User, error) {
	return f.me, f.meErr
}

var ada = tracker.User{ID: "u-1", Username: "ada", Email: "ada@example.com"}

func TestLoginPersistsToken(t *testing.T) {
	logx.Disable()
	tokens := NewMemoryTokenStore()
	s := New(tokens, &fakeAuth{result: tracker.AuthResult{Token: "tok", User: ada}})

	if err := s.Login(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !s.IsAuthenticated() || s.State() != StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", s.State())
	}
	if u, _ := s.User(); u.ID != ada.ID {
		t.Fatalf("unexpected user %+v", u)
	}
	if v, _ := tokens.Get(TokenKey); v != "tok" {
		t.Fatalf("expected token persisted, got %q", v)
	}
}

func TestLoginFailureMessages(t *testing.T) {
	logx.Disable()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"remote message", &client.APIError{Status: 401, Code: 3002, Message: "Invalid email or password."}, "Invalid email or password."},
		{"no remote message", &client.APIError{Status: 502}, MsgLoginFailed},
		{"transport", fmt.Errorf("%w: dial", client.ErrTransport), MsgLoginFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := NewMemoryTokenStore()
			s := New(tokens, &fakeAuth{err: tc.err})

			err := s.Login(context.Background(), "a@b.c", "pw")
			var authErr *AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected *AuthError, got %v", err)
			}
			if authErr.Message != tc.want || s.LastError() != tc.want {
				t.Fatalf("expected %q, got %q / %q", tc.want, authErr.Message, s.LastError())
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected cause to be wrapped")
			}
			if s.IsAuthenticated() || s.State() != StateAnonymous {
				t.Fatalf("expected anonymous after failure, got %v", s.State())
			}
			if v, _ := tokens.Get(TokenKey); v != "" {
				t.Fatalf("expected nothing persisted, got %q", v)
			}
		})
	}
}

func TestRegisterFallbackMessage(t *testing.T) {
	logx.Disable()
	s := New(NewMemoryTokenStore(), &fakeAuth{err: errors.New("boom")})

	err := s.Register(context.Background(), "ada", "a@b.c", "pw")
	if err == nil || err.Error() != MsgRegisterFailed {
		t.Fatalf("expected %q, got %v", MsgRegisterFailed, err)
	}
}

func TestFailedReloginKeepsSession(t *testing.T) {
	logx.Disable()
	tokens := NewMemoryTokenStore()
	auth := &fakeAuth{result: tracker.AuthResult{Token: "tok", User: ada}}
	s := New(tokens, auth)
	if err := s.Login(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("Login err: %v", err)
	}

	cases := []error{
		&client.APIError{Status: http.StatusBadRequest, Code: 1001, Message: "Invalid email"},
		&client.APIError{Status: http.StatusInternalServerError},
		fmt.Errorf("%w: dial", client.ErrTransport),
	}
	for _, cause := range cases {
		auth.err = cause
		if err := s.Login(context.Background(), "bad", "pw"); err == nil {
			t.Fatalf("expected error for %v", cause)
		}
		if !s.IsAuthenticated() || s.State() != StateAuthenticated {
			t.Fatalf("after %v: expected still authenticated, got %v", cause, s.State())
		}
		if u, _ := s.User(); u.ID != ada.ID {
			t.Fatalf("after %v: unexpected user %+v", cause, u)
		}
		if got := (StoredToken{Tokens: tokens}).Token(); got != "tok" {
			t.Fatalf("after %v: expected token kept, got %q", cause, got)
		}
		if s.LastError() == "" {
			t.Fatalf("after %v: expected last error set", cause)
		}
	}

	auth.err = &client.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	_ = s.Login(context.Background(), "ada@example.com", "wrong")
	if s.IsAuthenticated() {
		t.Fatal("expected 401 to end the session")
	}
	if got := (StoredToken{Tokens: tokens}).Token(); got != "" {
		t.Fatalf("expected token dropped with the session, got %q", got)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	logx.Disable()
	tokens := NewMemoryTokenStore()
	s := New(tokens, &fakeAuth{result: tracker.AuthResult{Token: "tok", User: ada}})
	_ = s.Login(context.Background(), "ada@example.com", "pw")

	s.Logout()

	if s.IsAuthenticated() || s.State() != StateAnonymous {
		t.Fatal("expected anonymous after logout")
	}
	if v, _ := tokens.Get(TokenKey); v != "" {
		t.Fatalf("expected token removed, got %q", v)
	}
}

func TestRestore(t *testing.T) {
	logx.Disable()
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		tokens := NewMemoryTokenStore()
		_ = tokens.Set(TokenKey, "tok")
		s := New(tokens, &fakeAuth{me: ada})

		if err := s.Restore(ctx); err != nil {
			t.Fatalf("Restore err: %v", err)
		}
		if !s.IsAuthenticated() {
			t.Fatal("expected authenticated")
		}
	})

	t.Run("no token", func(t *testing.T) {
		s := New(NewMemoryTokenStore(), &fakeAuth{meErr: errors.New("must not be called")})
		if err := s.Restore(ctx); err != nil || s.IsAuthenticated() {
			t.Fatalf("expected quiet anonymous restore, got %v", err)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		tokens := NewMemoryTokenStore()
		_ = tokens.Set(TokenKey, "stale")
		s := New(tokens, &fakeAuth{meErr: &client.APIError{Status: http.StatusUnauthorized}})

		if err := s.Restore(ctx); err != nil {
			t.Fatalf("Restore err: %v", err)
		}
		if v, _ := tokens.Get(TokenKey); v != "" {
			t.Fatalf("expected stale token removed, got %q", v)
		}
		if s.LastError() != MsgSessionExpired {
			t.Fatalf("expected expiry message, got %q", s.LastError())
		}
	})

	t.Run("server unreachable", func(t *testing.T) {
		tokens := NewMemoryTokenStore()
		_ = tokens.Set(TokenKey, "tok")
		s := New(tokens, &fakeAuth{meErr: fmt.Errorf("%w: dial", client.ErrTransport)})

		if err := s.Restore(ctx); !errors.Is(err, client.ErrTransport) {
			t.Fatalf("expected transport error, got %v", err)
		}
		if v, _ := tokens.Get(TokenKey); v != "tok" {
			t.Fatal("expected token kept for a later retry")
		}
		if s.State() != StateAnonymous {
			t.Fatalf("expected anonymous, got %v", s.State())
		}
	})
}

func TestExpireIsIdempotent(t *testing.T) {
	logx.Disable()
	s := New(NewMemoryTokenStore(), &fakeAuth{result: tracker.AuthResult{Token: "tok", User: ada}})

	s.Expire()
	if s.LastError() != "" {
		t.Fatalf("expiring an anonymous session must not set a message, got %q", s.LastError())
	}

	_ = s.Login(context.Background(), "ada@example.com", "pw")
	s.Expire()
	s.Expire()
	if s.IsAuthenticated() || s.LastError() != MsgSessionExpired {
		t.Fatalf("expected expired session, got %v %q", s.State(), s.LastError())
	}
}

type headerLog struct {
	mu   sync.Mutex
	seen map[string][]string
}

func (h *headerLog) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.seen[r.URL.Path] = append(h.seen[r.URL.Path], r.Header.Get("Authorization"))
		h.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (h *headerLog) last(path string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	values := h.seen[path]
	return values[len(values)-1]
}

func TestLoginAttachesBearerAndLogoutRemovesIt(t *testing.T) {
	logx.Disable()
	log := &headerLog{seen: map[string][]string{}}
	router, stop := handler.Router(&handler.AppDeps{
		Config: &configs.AppConfig{Environment: "test", JWTSecret: "session-secret", AuthRate: 1000, AuthBurst: 1000},
		Store:  tracker.NewMemoryStore(),
		Bot:    chatbot.NewCanned(nil),
	})
	defer stop()
	srv := httptest.NewServer(log.wrap(router))
	defer srv.Close()

	tokens := NewFileStore(t.TempDir() + "/session.json")
	var sess *Store
	api := client.New(srv.URL+"/api", StoredToken{Tokens: tokens}, client.WithUnauthorizedHook(func() {
		if sess != nil {
			sess.Expire()
		}
	}))
	sess = New(tokens, api.Auth)
	ctx := context.Background()

	if err := sess.Register(ctx, "ada", "ada@example.com", "secret123"); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	sess.Logout()

	if err := sess.Login(ctx, "ada@example.com", "secret123"); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	token, _ := tokens.Get(TokenKey)

	if _, err := api.Games.List(ctx); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if got := log.last("/api/games"); got != "Bearer "+token {
		t.Fatalf("expected bearer header after login, got %q", got)
	}

	sess.Logout()

	_, err := api.Games.List(ctx)
	if !client.IsUnauthorized(err) {
		t.Fatalf("expected 401 after logout, got %v", err)
	}
	if got := log.last("/api/games"); got != "" {
		t.Fatalf("expected no Authorization header after logout, got %q", got)
	}

	restored := New(tokens, api.Auth)
	if err := restored.Restore(ctx); err != nil || restored.IsAuthenticated() {
		t.Fatalf("expected nothing to restore after logout, got %v", err)
	}
}
