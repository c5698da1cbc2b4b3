package client

import (
	"context"
	"net/http"
	"net/url"

	"gametracker/internal/app/tracker"
)

// AuthAPI maps the /auth endpoints.
type AuthAPI struct{ c *Client }

func (a *AuthAPI) Login(ctx context.Context, email, password string) (tracker.AuthResult, error) {
	return call[tracker.AuthResult](ctx, a.c, http.MethodPost, "/auth/login", nil,
		tracker.Credentials{Email: email, Password: password})
}

func (a *AuthAPI) Register(ctx context.Context, username, email, password string) (tracker.AuthResult, error) {
	return call[tracker.AuthResult](ctx, a.c, http.MethodPost, "/auth/register", nil,
		tracker.Registration{Username: username, Email: email, Password: password})
}

// Me returns the user the current token belongs to.
func (a *AuthAPI) Me(ctx context.Context) (tracker.User, error) {
	return call[tracker.User](ctx, a.c, http.MethodGet, "/auth/me", nil, nil)
}

// GamesAPI maps the /games endpoints.
type GamesAPI struct{ c *Client }

func (g *GamesAPI) List(ctx context.Context) ([]tracker.Game, error) {
	return call[[]tracker.Game](ctx, g.c, http.MethodGet, "/games", nil, nil)
}

func (g *GamesAPI) Get(ctx context.Context, id string) (tracker.Game, error) {
	return call[tracker.Game](ctx, g.c, http.MethodGet, "/games"+segment(id), nil, nil)
}

func (g *GamesAPI) Create(ctx context.Context, in tracker.GameInput) (tracker.Game, error) {
	return call[tracker.Game](ctx, g.c, http.MethodPost, "/games", nil, in)
}

func (g *GamesAPI) Update(ctx context.Context, id string, in tracker.GameInput) (tracker.Game, error) {
	return call[tracker.Game](ctx, g.c, http.MethodPut, "/games"+segment(id), nil, in)
}

func (g *GamesAPI) Delete(ctx context.Context, id string) error {
	return g.c.Do(ctx, http.MethodDelete, "/games"+segment(id), nil, nil, nil)
}

// AchievementsAPI maps the /achievements endpoints.
type AchievementsAPI struct{ c *Client }

// List returns the achievements recorded for gameID.
func (a *AchievementsAPI) List(ctx context.Context, gameID string) ([]tracker.Achievement, error) {
	return call[[]tracker.Achievement](ctx, a.c, http.MethodGet, "/achievements"+segment(gameID), nil, nil)
}

func (a *AchievementsAPI) Get(ctx context.Context, id string) (tracker.Achievement, error) {
	return call[tracker.Achievement](ctx, a.c, http.MethodGet, "/achievements/achievement"+segment(id), nil, nil)
}

func (a *AchievementsAPI) Create(ctx context.Context, in tracker.AchievementInput) (tracker.Achievement, error) {
	return call[tracker.Achievement](ctx, a.c, http.MethodPost, "/achievements", nil, in)
}

func (a *AchievementsAPI) Update(ctx context.Context, id string, in tracker.AchievementInput) (tracker.Achievement, error) {
	return call[tracker.Achievement](ctx, a.c, http.MethodPut, "/achievements"+segment(id), nil, in)
}

func (a *AchievementsAPI) Delete(ctx context.Context, id string) error {
	return a.c.Do(ctx, http.MethodDelete, "/achievements"+segment(id), nil, nil, nil)
}

// Search returns the achievements of gameID whose title or description contains keyword.
func (a *AchievementsAPI) Search(ctx context.Context, gameID, keyword string) ([]tracker.Achievement, error) {
	return call[[]tracker.Achievement](ctx, a.c, http.MethodGet, "/achievements/search"+segment(gameID),
		url.Values{"keyword": {keyword}}, nil)
}

// ChatbotAPI maps POST /chatbot. Each call is independent.
type ChatbotAPI struct{ c *Client }

func (b *ChatbotAPI) Ask(ctx context.Context, question string) (string, error) {
	out, err := call[tracker.ChatAnswer](ctx, b.c, http.MethodPost, "/chatbot", nil, tracker.ChatQuestion{Question: question})
	return out.Answer, err
}
