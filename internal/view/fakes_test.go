package view

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gametracker/internal/app/tracker"
)

// fakeBackend implements GamesAPI, AchievementsAPI and Asker in memory and counts calls.
type fakeBackend struct {
	mu           sync.Mutex
	calls        map[string]int
	games        []tracker.Game
	achievements []tracker.Achievement
	failNext     map[string]error
	seq          int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: map[string]int{}, failNext: map[string]error{}}
}

func (f *fakeBackend) hit(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if err, ok := f.failNext[op]; ok {
		delete(f.failNext, op)
		return err
	}
	return nil
}

func (f *fakeBackend) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeBackend) fail(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext[op] = err
}

func (f *fakeBackend) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, 100+f.seq)
}

type gamesFake struct{ *fakeBackend }

func (g gamesFake) List(context.Context) ([]tracker.Game, error) {
	if err := g.hit("games.list"); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]tracker.Game(nil), g.games...), nil
}

func (g gamesFake) Create(_ context.Context, in tracker.GameInput) (tracker.Game, error) {
	if err := g.hit("games.create"); err != nil {
		return tracker.Game{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	game := tracker.Game{ID: g.nextID("g"), Name: in.Name, Genre: in.Genre, Platform: in.Platform}
	g.games = append(g.games, game)
	return game, nil
}

func (g gamesFake) Update(_ context.Context, id string, in tracker.GameInput) (tracker.Game, error) {
	if err := g.hit("games.update"); err != nil {
		return tracker.Game{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.games {
		if g.games[i].ID == id {
			g.games[i].Name, g.games[i].Genre, g.games[i].Platform = in.Name, in.Genre, in.Platform
			return g.games[i], nil
		}
	}
	return tracker.Game{}, errors.New("not found")
}

func (g gamesFake) Delete(_ context.Context, id string) error {
	if err := g.hit("games.delete"); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.games {
		if g.games[i].ID == id {
			g.games = append(g.games[:i], g.games[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type achievementsFake struct{ *fakeBackend }

func (a achievementsFake) filter(gameID string, keep func(tracker.Achievement) bool) []tracker.Achievement {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []tracker.Achievement
	for _, x := range a.achievements {
		if x.Game == gameID && keep(x) {
			out = append(out, x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (a achievementsFake) List(_ context.Context, gameID string) ([]tracker.Achievement, error) {
	if err := a.hit("achievements.list"); err != nil {
		return nil, err
	}
	return a.filter(gameID, func(tracker.Achievement) bool { return true }), nil
}

func (a achievementsFake) Search(_ context.Context, gameID, keyword string) ([]tracker.Achievement, error) {
	if err := a.hit("achievements.search"); err != nil {
		return nil, err
	}
	return a.filter(gameID, func(x tracker.Achievement) bool { return x.MatchesKeyword(keyword) }), nil
}

func (a achievementsFake) Create(_ context.Context, in tracker.AchievementInput) (tracker.Achievement, error) {
	if err := a.hit("achievements.create"); err != nil {
		return tracker.Achievement{}, err
	}
	date, _ := tracker.ParseDate(in.DateAchieved, time.Now())
	a.mu.Lock()
	defer a.mu.Unlock()
	x := tracker.Achievement{ID: a.nextID("a"), Title: in.Title, Description: in.Description, Game: in.Game, DateAchieved: date}
	a.achievements = append(a.achievements, x)
	return x, nil
}

func (a achievementsFake) Update(_ context.Context, id string, in tracker.AchievementInput) (tracker.Achievement, error) {
	if err := a.hit("achievements.update"); err != nil {
		return tracker.Achievement{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.achievements {
		if a.achievements[i].ID == id {
			a.achievements[i].Title = in.Title
			a.achievements[i].Description = in.Description
			return a.achievements[i], nil
		}
	}
	return tracker.Achievement{}, errors.New("not found")
}

func (a achievementsFake) Delete(_ context.Context, id string) error {
	if err := a.hit("achievements.delete"); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.achievements {
		if a.achievements[i].ID == id {
			a.achievements = append(a.achievements[:i], a.achievements[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type askerFunc func(ctx context.Context, q string) (string, error)

func (f askerFunc) Ask(ctx context.Context, q string) (string, error) { return f(ctx, q) }

func answerByTopic(_ context.Context, q string) (string, error) {
	return "about " + strings.ToLower(q), nil
}

func always(answer bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return answer })
}
