package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"gametracker/internal/app/tracker"
	"gametracker/internal/pkg/logx"
)

func fixedNow() time.Time { return time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC) }

func newAchievementsView(be *fakeBackend, confirm Confirmer) *AchievementsView {
	return NewAchievementsView(gamesFake{be}, achievementsFake{be}, confirm, fixedNow)
}

func seeded() *fakeBackend {
	be := newFakeBackend()
	be.games = []tracker.Game{{ID: "g-1", Name: "Celeste"}, {ID: "g-2", Name: "Hades"}}
	be.achievements = []tracker.Achievement{
		{ID: "a-1", Title: "Speedrun Master", Game: "g-1"},
		{ID: "a-2", Title: "Collector", Description: "All strawberries", Game: "g-1"},
		{ID: "a-3", Title: "Escaped", Game: "g-2"},
	}
	return be
}

func TestAchievementsViewSelectAndSearch(t *testing.T) {
	logx.Disable()
	be := seeded()
	v := newAchievementsView(be, always(true))
	ctx := context.Background()

	if err := v.LoadGames(ctx); err != nil || len(v.Games().Items()) != 2 {
		t.Fatalf("LoadGames = %v, %+v", err, v.Games().Items())
	}

	if err := v.Search(ctx, "speed"); err != nil || be.count("achievements.search") != 0 {
		t.Fatal("expected search without a selected game to be a no-op")
	}

	if err := v.SelectGame(ctx, "g-1"); err != nil {
		t.Fatalf("SelectGame err: %v", err)
	}
	if n := len(v.State().Items()); n != 2 {
		t.Fatalf("expected 2 achievements, got %d", n)
	}

	if err := v.Search(ctx, "   "); err != nil || be.count("achievements.search") != 0 {
		t.Fatal("expected blank keyword to be a no-op")
	}

	if err := v.Search(ctx, "speed"); err != nil {
		t.Fatalf("Search err: %v", err)
	}
	items := v.State().Items()
	if len(items) != 1 || items[0].Title != "Speedrun Master" {
		t.Fatalf("expected only Speedrun Master, got %+v", items)
	}

	be.fail("achievements.search", errors.New("boom"))
	if err := v.Search(ctx, "speed"); err == nil || v.State().Err() != MsgSearchFailed {
		t.Fatalf("expected search failure message, got %q", v.State().Err())
	}

	if err := v.SelectGame(ctx, ""); err != nil || v.State().Loaded() {
		t.Fatal("expected clearing the selection to reset the list")
	}
}

func TestAchievementsViewEmptyTitleSendsNothing(t *testing.T) {
	logx.Disable()
	be := seeded()
	v := newAchievementsView(be, always(true))
	ctx := context.Background()
	_ = v.SelectGame(ctx, "g-1")
	before := be.total()

	v.OpenCreate()
	form := v.Dialog().Form()
	form.Title = "  "
	v.SetForm(form)

	if err := v.Submit(ctx); !errors.Is(err, tracker.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if be.total() != before {
		t.Fatalf("expected no request, got %d new calls", be.total()-before)
	}
}

func TestAchievementsViewCreateDefaults(t *testing.T) {
	logx.Disable()
	be := seeded()
	v := newAchievementsView(be, always(true))
	ctx := context.Background()
	_ = v.SelectGame(ctx, "g-2")

	v.OpenCreate()
	form := v.Dialog().Form()
	if form.Game != "g-2" || form.DateAchieved != "2025-06-15" {
		t.Fatalf("expected defaults for g-2 dated today, got %+v", form)
	}

	form.Title = "Flawless"
	v.SetForm(form)
	if err := v.Submit(ctx); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if v.Dialog().Open() {
		t.Fatal("expected dialog closed")
	}
	if n := len(v.State().Items()); n != 2 {
		t.Fatalf("expected refetched list of 2, got %d", n)
	}
}

func TestAchievementsViewEditAndDelete(t *testing.T) {
	logx.Disable()
	be := seeded()
	ctx := context.Background()

	v := newAchievementsView(be, always(true))
	_ = v.SelectGame(ctx, "g-1")

	target := v.State().Items()[0]
	v.OpenEdit(target)
	if d := v.Dialog(); d.Mode() != DialogEdit || d.Form().Title != target.Title {
		t.Fatalf("expected pre-populated edit dialog, got %+v", d)
	}
	v.Cancel()
	if v.Dialog().Open() {
		t.Fatal("expected dialog closed after cancel")
	}

	be.fail("achievements.delete", errors.New("boom"))
	if _, err := v.Delete(ctx, target.ID); err == nil || v.State().Err() != MsgDeleteAchievementFailed {
		t.Fatalf("expected delete failure, got %q", v.State().Err())
	}
	if len(v.State().Items()) != 2 {
		t.Fatal("expected items untouched after failed delete")
	}

	if deleted, err := v.Delete(ctx, target.ID); !deleted || err != nil {
		t.Fatalf("expected delete, got %v %v", deleted, err)
	}
	if len(v.State().Items()) != 1 {
		t.Fatalf("expected one achievement left, got %+v", v.State().Items())
	}
}

func TestAchievementsViewLoadFailure(t *testing.T) {
	logx.Disable()
	be := seeded()
	be.fail("games.list", errors.New("boom"))
	v := newAchievementsView(be, always(true))

	if err := v.LoadGames(context.Background()); err == nil || v.Games().Err() != MsgFetchGamesFailed {
		t.Fatalf("expected games failure message, got %q", v.Games().Err())
	}

	be.fail("achievements.list", errors.New("boom"))
	if err := v.SelectGame(context.Background(), "g-1"); err == nil || v.State().Err() != MsgFetchAchievementsFailed {
		t.Fatalf("expected achievements failure message, got %q", v.State().Err())
	}
}

func TestAchievementsViewSwitchGameDropsPreviousList(t *testing.T) {
	logx.Disable()
	be := seeded()
	v := newAchievementsView(be, always(true))
	ctx := context.Background()

	if err := v.SelectGame(ctx, "g-1"); err != nil || len(v.State().Items()) != 2 {
		t.Fatalf("SelectGame(g-1) = %v, %+v", err, v.State().Items())
	}

	be.fail("achievements.list", errors.New("boom"))
	if err := v.SelectGame(ctx, "g-2"); err == nil {
		t.Fatal("expected fetch error")
	}
	if v.Selected() != "g-2" {
		t.Fatalf("expected g-2 selected, got %q", v.Selected())
	}
	if items := v.State().Items(); len(items) != 0 {
		t.Fatalf("expected no items from the previous game, got %+v", items)
	}
	if v.State().Err() != MsgFetchAchievementsFailed {
		t.Fatalf("expected failure message, got %q", v.State().Err())
	}
}
