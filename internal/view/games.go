package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"gametracker/internal/app/tracker"
	"gametracker/internal/client"
	"gametracker/internal/pkg/logx"
)

// GamesAPI is what the games screen calls. *client.GamesAPI satisfies it.
type GamesAPI interface {
	List(ctx context.Context) ([]tracker.Game, error)
	Create(ctx context.Context, in tracker.GameInput) (tracker.Game, error)
	Update(ctx context.Context, id string, in tracker.GameInput) (tracker.Game, error)
	Delete(ctx context.Context, id string) error
}

// GamesView is the game list with its create/edit dialog.
type GamesView struct {
	mu      sync.Mutex
	api     GamesAPI
	confirm Confirmer
	list    ListState[tracker.Game]
	dialog  Dialog[tracker.GameInput]
	logger  zerolog.Logger
}

func NewGamesView(api GamesAPI, confirm Confirmer) *GamesView {
	return &GamesView{api: api, confirm: confirm, logger: logx.Component("view.games")}
}

func (v *GamesView) State() ListState[tracker.Game] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list
}

func (v *GamesView) Dialog() Dialog[tracker.GameInput] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dialog
}

// Load fetches the list. On failure the previous items stay visible behind the error.
func (v *GamesView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.list.startLoading()
	v.mu.Unlock()

	games, err := v.api.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.logger.Error().Err(err).Msg("fetch games failed")
		v.list.fail(MsgFetchGamesFailed)
		return err
	}
	v.list.succeed(games)
	return nil
}

func (v *GamesView) OpenCreate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog.openCreate(tracker.GameInput{})
}

// OpenEdit opens the dialog pre-populated with g.
func (v *GamesView) OpenEdit(g tracker.Game) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog.openEdit(g.ID, tracker.InputFromGame(g))
}

// SetForm replaces the form of an open dialog.
func (v *GamesView) SetForm(in tracker.GameInput) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dialog.Open() {
		v.dialog.form = in
	}
}

func (v *GamesView) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dialog.close()
}

// Submit saves the dialog form. A blank name returns tracker.ErrNameRequired without a
// request. On success the dialog closes and the list is fetched again; on failure the
// dialog stays open with its form.
func (v *GamesView) Submit(ctx context.Context) error {
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
		v.logger.Error().Err(err).Str("mode", mode.String()).Msg("save game failed")
		v.list.fail(saveMessage(client.Message(err)))
		v.mu.Unlock()
		return err
	}
	v.list.settle()
	v.dialog.close()
	v.mu.Unlock()

	return v.Load(ctx)
}

// Delete removes the game after the user confirms. It reports whether a delete happened.
func (v *GamesView) Delete(ctx context.Context, id string) (bool, error) {
	if !v.confirm.Confirm(ctx, PromptDeleteGame) {
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
		v.logger.Error().Err(err).Str("game_id", id).Msg("delete game failed")
		v.list.fail(MsgDeleteGameFailed)
		v.mu.Unlock()
		return false, err
	}
	v.list.settle()
	v.mu.Unlock()

	return true, v.Load(ctx)
}
