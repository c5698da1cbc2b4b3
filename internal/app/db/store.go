package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gametracker/internal/app/tracker"
)

var _ tracker.Store = (*Store)(nil)

// Store implements tracker.Store on a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

const (
	userColumns        = `id::text, username, email, password_hash, created_at`
	gameColumns        = `id::text, owner_id::text, name, genre, platform, created_at`
	achievementColumns = `id::text, owner_id::text, game_id::text, title, description, date_achieved, created_at`
)

// lookupErr maps driver errors of single-row lookups onto tracker sentinels.
func lookupErr(op string, err error) error {
	if IsNoRows(err) || IsInvalidText(err) {
		return tracker.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanAccount(row pgx.Row) (tracker.Account, error) {
	var a tracker.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

func scanGame(row pgx.Row) (tracker.Game, error) {
	var g tracker.Game
	err := row.Scan(&g.ID, &g.Owner, &g.Name, &g.Genre, &g.Platform, &g.CreatedAt)
	return g, err
}

func scanAchievement(row pgx.Row) (tracker.Achievement, error) {
	var a tracker.Achievement
	err := row.Scan(&a.ID, &a.Owner, &a.Game, &a.Title, &a.Description, &a.DateAchieved, &a.CreatedAt)
	return a, err
}

func (s *Store) CreateUser(ctx context.Context, acct tracker.Account) (tracker.Account, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		acct.ID, acct.Username, acct.Email, acct.PasswordHash, acct.CreatedAt)

	out, err := scanAccount(row)
	if err != nil {
		if IsUniqueViolation(err) {
			return tracker.Account{}, tracker.ErrUserExists
		}
		return tracker.Account{}, fmt.Errorf("insert user: %w", err)
	}
	return out, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (tracker.Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)

	out, err := scanAccount(row)
	if err != nil {
		return tracker.Account{}, lookupErr("select user by email", err)
	}
	return out, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (tracker.Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	out, err := scanAccount(row)
	if err != nil {
		return tracker.Account{}, lookupErr("select user by id", err)
	}
	return out, nil
}

func (s *Store) ListGames(ctx context.Context, owner string) ([]tracker.Game, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+gameColumns+` FROM games WHERE owner_id = $1 ORDER BY created_at DESC, id`, owner)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := make([]tracker.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (s *Store) GetGame(ctx context.Context, owner, id string) (tracker.Game, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+gameColumns+` FROM games WHERE id = $1 AND owner_id = $2`, id, owner)

	g, err := scanGame(row)
	if err != nil {
		return tracker.Game{}, lookupErr("select game", err)
	}
	return g, nil
}

func (s *Store) CreateGame(ctx context.Context, g tracker.Game) (tracker.Game, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO games (id, owner_id, name, genre, platform, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+gameColumns,
		g.ID, g.Owner, g.Name, g.Genre, g.Platform, g.CreatedAt)

	out, err := scanGame(row)
	if err != nil {
		return tracker.Game{}, fmt.Errorf("insert game: %w", err)
	}
	return out, nil
}

func (s *Store) UpdateGame(ctx context.Context, g tracker.Game) (tracker.Game, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE games SET name = $3, genre = $4, platform = $5
		 WHERE id = $1 AND owner_id = $2
		 RETURNING `+gameColumns,
		g.ID, g.Owner, g.Name, g.Genre, g.Platform)

	out, err := scanGame(row)
	if err != nil {
		return tracker.Game{}, lookupErr("update game", err)
	}
	return out, nil
}

// DeleteGame relies on ON DELETE CASCADE to drop the game's achievements.
func (s *Store) DeleteGame(ctx context.Context, owner, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM games WHERE id = $1 AND owner_id = $2`, id, owner)
	if err != nil {
		return lookupErr("delete game", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrNotFound
	}
	return nil
}

func (s *Store) ListAchievements(ctx context.Context, owner, gameID string) ([]tracker.Achievement, error) {
	return s.queryAchievements(ctx, owner, gameID,
		`SELECT `+achievementColumns+` FROM achievements
		 WHERE game_id = $1 AND owner_id = $2
		 ORDER BY date_achieved DESC, created_at DESC`,
		gameID, owner)
}

// SearchAchievements matches keyword case-insensitively against title and description.
// strpos avoids escaping LIKE wildcards in user input.
func (s *Store) SearchAchievements(ctx context.Context, owner, gameID, keyword string) ([]tracker.Achievement, error) {
	return s.queryAchievements(ctx, owner, gameID,
		`SELECT `+achievementColumns+` FROM achievements
		 WHERE game_id = $1 AND owner_id = $2
		   AND (strpos(lower(title), lower($3)) > 0 OR strpos(lower(description), lower($3)) > 0)
		 ORDER BY date_achieved DESC, created_at DESC`,
		gameID, owner, keyword)
}

func (s *Store) queryAchievements(ctx context.Context, owner, gameID, query string, args ...any) ([]tracker.Achievement, error) {
	if _, err := s.GetGame(ctx, owner, gameID); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	out := make([]tracker.Achievement, 0)
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	return out, nil
}

func (s *Store) GetAchievement(ctx context.Context, owner, id string) (tracker.Achievement, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+achievementColumns+` FROM achievements WHERE id = $1 AND owner_id = $2`, id, owner)

	a, err := scanAchievement(row)
	if err != nil {
		return tracker.Achievement{}, lookupErr("select achievement", err)
	}
	return a, nil
}

// CreateAchievement inserts only when the target game belongs to the same owner.
func (s *Store) CreateAchievement(ctx context.Context, a tracker.Achievement) (tracker.Achievement, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO achievements (id, owner_id, game_id, title, description, date_achieved, created_at)
		 SELECT $1::uuid, $2::uuid, g.id, $4::text, $5::text, $6::date, $7::timestamptz
		 FROM games g WHERE g.id = $3::uuid AND g.owner_id = $2::uuid
		 RETURNING `+achievementColumns,
		a.ID, a.Owner, a.Game, a.Title, a.Description, a.DateAchieved, a.CreatedAt)

	out, err := scanAchievement(row)
	if err != nil {
		return tracker.Achievement{}, lookupErr("insert achievement", err)
	}
	return out, nil
}

func (s *Store) UpdateAchievement(ctx context.Context, a tracker.Achievement) (tracker.Achievement, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE achievements SET game_id = g.id, title = $4, description = $5, date_achieved = $6
		 FROM games g
		 WHERE achievements.id = $1 AND achievements.owner_id = $2 AND g.id = $3 AND g.owner_id = $2
		 RETURNING achievements.id::text, achievements.owner_id::text, achievements.game_id::text,
		           achievements.title, achievements.description, achievements.date_achieved, achievements.created_at`,
		a.ID, a.Owner, a.Game, a.Title, a.Description, a.DateAchieved)

	out, err := scanAchievement(row)
	if err != nil {
		return tracker.Achievement{}, lookupErr("update achievement", err)
	}
	return out, nil
}

func (s *Store) DeleteAchievement(ctx context.Context, owner, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM achievements WHERE id = $1 AND owner_id = $2`, id, owner)
	if err != nil {
		return lookupErr("delete achievement", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrNotFound
	}
	return nil
}
