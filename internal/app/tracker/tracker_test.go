package tracker

import (
	"errors"
	"testing"
	"time"
)

func TestGameInputValidate(t *testing.T) {
	if err := (GameInput{Name: "  "}).Validate(); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if err := (GameInput{Name: "Hades"}).Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestAchievementInputValidate(t *testing.T) {
	cases := []struct {
		name string
		in   AchievementInput
		want error
	}{
		{"empty title", AchievementInput{Game: "g"}, ErrTitleRequired},
		{"missing game", AchievementInput{Title: "Speedrun Master"}, ErrGameRequired},
		{"bad date", AchievementInput{Title: "t", Game: "g", DateAchieved: "31/12/2024"}, ErrInvalidDate},
		{"form date", AchievementInput{Title: "t", Game: "g", DateAchieved: "2024-12-31"}, nil},
		{"rfc3339 date", AchievementInput{Title: "t", Game: "g", DateAchieved: "2024-12-31T10:00:00Z"}, nil},
		{"default date", AchievementInput{Title: "t", Game: "g"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.in.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseDateDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 3, 14, 22, 45, 0, 0, time.UTC)

	got, err := ParseDate("", now)
	if err != nil {
		t.Fatalf("ParseDate err: %v", err)
	}
	if want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNewAchievementInputDefaults(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	in := NewAchievementInput("game-1", now)

	if in.Game != "game-1" || in.DateAchieved != "2025-03-14" || in.Title != "" {
		t.Fatalf("unexpected form defaults: %+v", in)
	}
}

func TestMatchesKeyword(t *testing.T) {
	a := Achievement{Title: "Speedrun Master", Description: "Finish under an hour"}

	for _, k := range []string{"speed", "SPEED", "master", "hour"} {
		if !a.MatchesKeyword(k) {
			t.Errorf("expected %q to match", k)
		}
	}
	for _, k := range []string{"collector", "", "   "} {
		if a.MatchesKeyword(k) {
			t.Errorf("expected %q not to match", k)
		}
	}
}
