package tracker

import "context"

// Store persists accounts, games and achievements. Every game and achievement query is
// scoped to an owner; records of another owner are reported as ErrNotFound.
type Store interface {
	CreateUser(ctx context.Context, acct Account) (Account, error)
	GetUserByEmail(ctx context.Context, email string) (Account, error)
	GetUserByID(ctx context.Context, id string) (Account, error)

	ListGames(ctx context.Context, owner string) ([]Game, error)
	GetGame(ctx context.Context, owner, id string) (Game, error)
	CreateGame(ctx context.Context, g Game) (Game, error)
	UpdateGame(ctx context.Context, g Game) (Game, error)
	// DeleteGame removes the game and every achievement recorded against it.
	DeleteGame(ctx context.Context, owner, id string) error

	ListAchievements(ctx context.Context, owner, gameID string) ([]Achievement, error)
	GetAchievement(ctx context.Context, owner, id string) (Achievement, error)
	CreateAchievement(ctx context.Context, a Achievement) (Achievement, error)
	UpdateAchievement(ctx context.Context, a Achievement) (Achievement, error)
	DeleteAchievement(ctx context.Context, owner, id string) error
	SearchAchievements(ctx context.Context, owner, gameID, keyword string) ([]Achievement, error)
}
