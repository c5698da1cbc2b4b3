package view

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"gametracker/internal/app/tracker"
	"gametracker/internal/client"
	"gametracker/internal/pkg/logx"
)

// GameLister feeds the game picker of the achievements screen.
type GameLister interface {
	List(ctx context.Context) ([]tracker.Game, error)
}

// AchievementsAPI is what the achievements screen calls. *client.AchievementsAPI
// satisfies it.
type AchievementsAPI interface {
	List(ctx context.Context, gameID string) ([]tracker.Achievement, error)
	Create(ctx context.Context, in tracker.AchievementInput) (tracker.Achievement, error)
	Update(ctx context.Context, id string, in tracker.AchievementInput) (tracker.Achievement, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, gameID, keyword string) ([]tracker.Achievement, error)
}

// AchievementsView is the per-game achievement list with search and a form dialog.
type AchievementsView struct {
	mu       sync.Mutex
	games    GameLister
	api      AchievementsAPI
	confirm  Confirmer
	now      func() time.Time
	picker   ListState[tracker.Game]
	selected string
	list     ListState[tracker.Achievement]
	dialog   Dialog[tracker.AchievementInput]
	logger   zerolog.Logger
}

// NewAchievementsView builds the view. A nil now uses time.Now.
func NewAchievementsView(games GameLister, api AchievementsAPI, confirm Confirmer, now func() time.Time) *AchievementsView {
	if now == nil {
		now = time.Now
	}
	return &AchievementsView{
		games:   games,
		api:     api,
		confirm: confirm,
		now:     now,
		logger:  logx.Component("view.achievements"),
	}
}

// Games is the state of the game picker.
func (v *AchievementsView) Games() ListState[tracker.Game] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.picker
}

func (v *AchievementsView) State() ListState[tracker.Achievement] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list
}

func (v *AchievementsView) Dialog() Dialog[tracker.AchievementInput] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dialog
}

// Selected returns the id of the selected game, or "".
func (v *AchievementsView) Selected() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// LoadGames fills the game picker.
func (v *AchievementsView) LoadGames(ctx context.Context) error {
	v.mu.Lock()
	v.picker.startLoading()
	v.mu.Unlock()

	games, err := v.games.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.logger.Error().Err(err).Msg("fetch games failed")
		v.picker.fail(MsgFetchGamesFailed)
		return err
	}
	v.picker.succeed(games)
	return nil
}

// SelectGame switches to gameID and loads its achievements. Switching drops the
// previous game's list; an empty id leaves the selection and the list empty.
func (v *AchievementsView) SelectGame(ctx context.Context, gameID string) error {
	v.mu.Lock()
	if gameID != v.selected {
		v.list = ListState[tracker.Achievement]{}
	}
	v.selected = gameID
	if gameID == "" {
		v.mu.Unlock()
		return nil
	}
	v.mu.Unlock()

	return v.Load(ctx)
}

// Load fetches the achievements of the selected game. Without a selection it does nothing.
func (v *AchievementsView) Load(ctx context.Context) error {
	return v.fetch(ctx, "", MsgFetchAchievementsFailed)
}

// Search replaces the list with the matches for keyword. It does nothing, and sends no
// request, when no game is selected or the keyword is blank.
func (v *AchievementsView) Search(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	return v.fetch(ctx, keyword, MsgSearchFailed)
}

func (v *AchievementsView) fetch(ctx context.Context, keyword, failMsg string) error {
	v.mu.Lock()
	gameID := v.selected
	if gameID == "" {
		v.mu.Unlock()
		return nil
	}
	v.list.startLoading()
	v.mu.Unlock()

	var (
		items []tracker.Achievement
		err   error
	)
	if keyword == "" {
		items, err = v.api.List(ctx, gameID)
	} else {
		items, err = v.api.Search(ctx, gameID, keyword)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected != gameID {
		// The selection changed while the request was in flight.
		return nil
	}
	if err != nil {
		v.logger.Error().Err(err).Str("game_id", gameID).Str("keyword", keyword).Msg("fetch achievements failed")
		v.list.fail(failMsg)
		return err
	}
	v.list.succeed(items)
	return nil
}

// OpenCreate opens a blank form for the selected game dated today.
func (v *AchievementsView) OpenCreate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog.openCreate(tracker.NewAchievementInput(v.selected, v.now()))
}

// OpenEdit opens the dialog pre-populated with a.
func (v *AchievementsView) OpenEdit(a tracker.Achievement) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog.openEdit(a.ID, tracker.InputFromAchievement(a))
}

// SetForm replaces the form of an open dialog.
func (v *AchievementsView) SetForm(in tracker.AchievementInput) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dialog.Open() {
		v.dialog.form = in
	}
}

func (v *AchievementsView) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog.close()
}

// Submit saves the dialog form. A blank title returns tracker.ErrTitleRequired and a
// missing game tracker.ErrGameRequired, both without a request. On success the dialog
// closes and the selected game's list is fetched again.
func (v *AchievementsView) Submit(ctx context.Context) error {
	v.mu.Lock()
	if !v.dialog.Open() {
		v.mu.Unlock()
		return nil
	}
	mode, id, form := v.dialog.mode, v.dialog.editingID, v.dialog.form.Normalize()
	if err := form.Validate(); err != nil {
		v.mu.Unlock()
		return err
	}
	if err := v.list.startSubmitting(); err != nil {
		v.mu.Unlock()
		return err
	}
	v.mu.Unlock()

	var err error
	if mode == DialogEdit {
		_, err = v.api.Update(ctx, id, form)
	} else {
		_, err = v.api.Create(ctx, form)
	}

	v.mu.Lock()
	if err != nil {
		v.logger.Error().Err(err).Str("mode", mode.String()).Msg("save achievement failed")
		v.list.fail(saveMessage(client.Message(err)))
		v.mu.Unlock()
		return err
	}
	v.list.settle()
	v.dialog.close()
	v.mu.Unlock()

	return v.Load(ctx)
}

// Delete removes the achievement after the user confirms. It reports whether a delete
// happened.
func (v *AchievementsView) Delete(ctx context.Context, id string) (bool, error) {
	if !v.confirm.Confirm(ctx, PromptDeleteAchievement) {
		return false, nil
	}

	v.mu.Lock()
	if err := v.list.startSubmitting(); err != nil {
		v.mu.Unlock()
		return false, err
	}
	v.mu.Unlock()

	err := v.api.Delete(ctx, id)

	v.mu.Lock()
	if err != nil {
		v.logger.Error().Err(err).Str("achievement_id", id).Msg("delete achievement failed")
		v.list.fail(MsgDeleteAchievementFailed)
		v.mu.Unlock()
		return false, err
	}
	v.list.settle()
	v.mu.Unlock()

	return true, v.Load(ctx)
}
