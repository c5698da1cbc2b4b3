package tracker

import (
	"context"
	"sort"
	"strings"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-process Store used in development and tests.
type MemoryStore struct {
	mu           sync.RWMutex
	seq          int64
	users        map[string]Account
	games        map[string]memGame
	achievements map[string]memAchievement
}

type memGame struct {
	Game
	seq int64
}

type memAchievement struct {
	Achievement
	seq int64
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]Account),
		games:        make(map[string]memGame),
		achievements: make(map[string]memAchievement),
	}
}

func (s *MemoryStore) next() int64 {
	s.seq++
	return s.seq
}

func (s *MemoryStore) CreateUser(_ context.Context, acct Account) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, acct.Email) || strings.EqualFold(u.Username, acct.Username) {
			return Account{}, ErrUserExists
		}
	}

	s.users[acct.ID] = acct
	return acct, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return Account{}, ErrNotFound
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return Account{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) ListGames(_ context.Context, owner string) ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]memGame, 0)
	for _, g := range s.games {
		if g.Owner == owner {
			rows = append(rows, g)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})

	out := make([]Game, len(rows))
	for i, g := range rows {
		out[i] = g.Game
	}
	return out, nil
}

func (s *MemoryStore) GetGame(_ context.Context, owner, id string) (Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok || g.Owner != owner {
		return Game{}, ErrNotFound
	}
	return g.Game, nil
}

func (s *MemoryStore) CreateGame(_ context.Context, g Game) (Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games[g.ID] = memGame{Game: g, seq: s.next()}
	return g, nil
}

func (s *MemoryStore) UpdateGame(_ context.Context, g Game) (Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.games[g.ID]
	if !ok || cur.Owner != g.Owner {
		return Game{}, ErrNotFound
	}

	cur.Name, cur.Genre, cur.Platform = g.Name, g.Genre, g.Platform
	s.games[g.ID] = cur
	return cur.Game, nil
}

func (s *MemoryStore) DeleteGame(_ context.Context, owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok || g.Owner != owner {
		return ErrNotFound
	}

	delete(s.games, id)
	for aid, a := range s.achievements {
		if a.Game == id {
			delete(s.achievements, aid)
		}
	}
	return nil
}

func (s *MemoryStore) ListAchievements(_ context.Context, owner, gameID string) ([]Achievement, error) {
	return s.filterAchievements(owner, gameID, func(Achievement) bool { return true })
}

func (s *MemoryStore) SearchAchievements(_ context.Context, owner, gameID, keyword string) ([]Achievement, error) {
	return s.filterAchievements(owner, gameID, func(a Achievement) bool { return a.MatchesKeyword(keyword) })
}

func (s *MemoryStore) filterAchievements(owner, gameID string, keep func(Achievement) bool) ([]Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if g, ok := s.games[gameID]; !ok || g.Owner != owner {
		return nil, ErrNotFound
	}

	rows := make([]memAchievement, 0)
	for _, a := range s.achievements {
		if a.Game == gameID && keep(a.Achievement) {
			rows = append(rows, a)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].DateAchieved.Equal(rows[j].DateAchieved) {
			return rows[i].DateAchieved.After(rows[j].DateAchieved)
		}
		return rows[i].seq > rows[j].seq
	})

	out := make([]Achievement, len(rows))
	for i, a := range rows {
		out[i] = a.Achievement
	}
	return out, nil
}

func (s *MemoryStore) GetAchievement(_ context.Context, owner, id string) (Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.achievements[id]
	if !ok || a.Owner != owner {
		return Achievement{}, ErrNotFound
	}
	return a.Achievement, nil
}

func (s *MemoryStore) CreateAchievement(_ context.Context, a Achievement) (Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.games[a.Game]; !ok || g.Owner != a.Owner {
		return Achievement{}, ErrNotFound
	}

	s.achievements[a.ID] = memAchievement{Achievement: a, seq: s.next()}
	return a, nil
}

func (s *MemoryStore) UpdateAchievement(_ context.Context, a Achievement) (Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.achievements[a.ID]
	if !ok || cur.Owner != a.Owner {
		return Achievement{}, ErrNotFound
	}
	if g, ok := s.games[a.Game]; !ok || g.Owner != a.Owner {
		return Achievement{}, ErrNotFound
	}

	cur.Title, cur.Description, cur.Game, cur.DateAchieved = a.Title, a.Description, a.Game, a.DateAchieved
	s.achievements[a.ID] = cur
	return cur.Achievement, nil
}

func (s *MemoryStore) DeleteAchievement(_ context.Context, owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.achievements[id]
	if !ok || a.Owner != owner {
		return ErrNotFound
	}
	delete(s.achievements, id)
	return nil
}
