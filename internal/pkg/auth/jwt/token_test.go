package jwt

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(&Payload{UserID: "u-1", Username: "ada"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken err: %v", err)
	}

	payload, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken err: %v", err)
	}
	if payload.UserID != "u-1" || payload.Username != "ada" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Subject != "u-1" {
		t.Fatalf("expected subject u-1, got %q", payload.Subject)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _ := GenerateToken(&Payload{UserID: "u-1"}, testSecret, time.Hour)

	if _, err := ParseToken(token, "other"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, _ := GenerateToken(&Payload{UserID: "u-1"}, testSecret, -time.Minute)

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestRequireAuth(t *testing.T) {
	token, _ := GenerateToken(&Payload{UserID: "u-1"}, testSecret, time.Hour)

	var seen *Payload
	h := IdentityExtractorMiddleware(testSecret)(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetPayloadFromContext(r)
		w.WriteHeader(http.StatusNoContent)
	})))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			r := httptest.NewRequest(http.MethodGet, "/games", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if tc.want == http.StatusNoContent && (seen == nil || seen.UserID != "u-1") {
				t.Fatalf("expected payload for u-1 in context, got %+v", seen)
			}
		})
	}
}
