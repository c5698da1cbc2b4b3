/*
Package tracker holds the domain types shared by the REST server and the client SDK:
users, games and achievements, the input forms that create or change them, and the
storage contract the server persists them through.
*/
package tracker

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by achievement forms.
const DateLayout = "2006-01-02"

var (
	ErrNotFound      = errors.New("tracker: not found")
	ErrUserExists    = errors.New("tracker: user already exists")
	ErrNameRequired  = errors.New("tracker: game name is required")
	ErrTitleRequired = errors.New("tracker: achievement title is required")
	ErrGameRequired  = errors.New("tracker: achievement game is required")
	ErrInvalidDate   = errors.New("tracker: invalid date")
)

// User is the public view of an account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Account is a User plus the fields only the server sees.
type Account struct {
	User
	PasswordHash string
	CreatedAt    time.Time
}

// Game is a title in a user's personal list.
type Game struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Genre     string    `json:"genre,omitempty"`
	Platform  string    `json:"platform,omitempty"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
}

// Achievement is a milestone recorded against one game.
type Achievement struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Game         string    `json:"game"`
	DateAchieved time.Time `json:"dateAchieved"`
	CreatedAt    time.Time `json:"createdAt"`

	Owner string `json:"-"`
}

// GameInput is the body of POST /games and PUT /games/:id.
type GameInput struct {
	Name     string `json:"name"`
	Genre    string `json:"genre"`
	Platform string `json:"platform"`
}

// Normalize trims every field.
func (in GameInput) Normalize() GameInput {
	return GameInput{
		Name:     strings.TrimSpace(in.Name),
		Genre:    strings.TrimSpace(in.Genre),
		Platform: strings.TrimSpace(in.Platform),
	}
}

// Validate checks the required name.
func (in GameInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// InputFromGame pre-populates an edit form.
func InputFromGame(g Game) GameInput {
	return GameInput{Name: g.Name, Genre: g.Genre, Platform: g.Platform}
}

// AchievementInput is the body of POST /achievements and PUT /achievements/:id.
// DateAchieved is a YYYY-MM-DD date; RFC 3339 timestamps are also accepted. An empty
// date means today.
type AchievementInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Game         string `json:"game"`
	DateAchieved string `json:"dateAchieved,omitempty"`
}

// NewAchievementInput returns a blank form for gameID dated today.
func NewAchievementInput(gameID string, now time.Time) AchievementInput {
	return AchievementInput{Game: gameID, DateAchieved: now.Format(DateLayout)}
}

// InputFromAchievement pre-populates an edit form.
func InputFromAchievement(a Achievement) AchievementInput {
	return AchievementInput{
		Title:        a.Title,
		Description:  a.Description,
		Game:         a.Game,
		DateAchieved: a.DateAchieved.Format(DateLayout),
	}
}

// Normalize trims every field.
func (in AchievementInput) Normalize() AchievementInput {
	return AchievementInput{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Game:         strings.TrimSpace(in.Game),
		DateAchieved: strings.TrimSpace(in.DateAchieved),
	}
}

// Validate checks the required title and game and the date format.
func (in AchievementInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.Game) == "" {
		return ErrGameRequired
	}
	if _, err := ParseDate(in.DateAchieved, time.Now()); err != nil {
		return err
	}
	return nil
}

// ParseDate parses a form date. An empty value yields the calendar date of now, in UTC.
func ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

// MatchesKeyword reports whether the achievement's title or description contains keyword,
// ignoring case.
func (a Achievement) MatchesKeyword(keyword string) bool {
	k := strings.ToLower(strings.TrimSpace(keyword))
	if k == "" {
		return false
	}
	return strings.Contains(strings.ToLower(a.Title), k) ||
		strings.Contains(strings.ToLower(a.Description), k)
}
