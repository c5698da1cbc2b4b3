package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewErrorKnownCode(t *testing.T) {
	err := NewError(ErrGameNotFound)
	if err.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", err.Status)
	}
	if err.Message == "" {
		t.Fatal("expected a message")
	}
}

func TestNewErrorUnknownCodeFallsBack(t *testing.T) {
	err := NewError(424242)
	if err.Code != ErrUnknown {
		t.Fatalf("expected code %d, got %d", ErrUnknown, err.Code)
	}
	if err.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", err.Status)
	}
}

func TestNewErrorReturnsCopies(t *testing.T) {
	a := NewError(ErrInvalidParams)
	a.Message = "changed"

	if b := NewError(ErrInvalidParams); b.Message == "changed" {
		t.Fatal("NewError must not share the template")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewError(ErrAchievementNotFound))

	if !errors.Is(wrapped, NewError(ErrAchievementNotFound)) {
		t.Fatal("expected wrapped error to match by code")
	}
	if errors.Is(wrapped, NewError(ErrGameNotFound)) {
		t.Fatal("expected different codes not to match")
	}
	if Code(wrapped) != ErrAchievementNotFound {
		t.Fatalf("expected Code to unwrap, got %d", Code(wrapped))
	}
}
