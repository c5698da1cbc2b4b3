package handler

import (
	"net/http"
	"time"

	"gametracker/internal/app/tracker"
	"gametracker/internal/pkg/errs"
	"gametracker/internal/pkg/logx"
	"gametracker/internal/pkg/randx"
	"gametracker/internal/pkg/req"
	"gametracker/internal/pkg/resp"
)

// HandleListGames returns the caller's games, newest first.
func HandleListGames(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := deps.Store.ListGames(r.Context(), ownerID(r))
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "list games"))
			return
		}
		if games == nil {
			games = []tracker.Game{}
		}
		resp.RespondSuccess(w, r, games)
	}
}

func HandleGetGame(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", errs.ErrGameNotFound)
		if !ok {
			return
		}

		game, err := deps.Store.GetGame(r.Context(), ownerID(r), id)
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "get game"))
			return
		}
		resp.RespondSuccess(w, r, game)
	}
}

func HandleCreateGame(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input tracker.GameInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input = input.Normalize()
		if err := input.Validate(); err != nil {
			resp.RespondError(w, r, validationError(err))
			return
		}

		game, err := deps.Store.CreateGame(r.Context(), tracker.Game{
			ID:        randx.ID(),
			Name:      input.Name,
			Genre:     input.Genre,
			Platform:  input.Platform,
			Owner:     ownerID(r),
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "create game"))
			return
		}

		logx.Debug("game created", "game_id", game.ID, "user_id", game.Owner)
		resp.RespondCreated(w, r, game)
	}
}

func HandleUpdateGame(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", errs.ErrGameNotFound)
		if !ok {
			return
		}

		var input tracker.GameInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input = input.Normalize()
		if err := input.Validate(); err != nil {
			resp.RespondError(w, r, validationError(err))
			return
		}

		game, err := deps.Store.UpdateGame(r.Context(), tracker.Game{
			ID:       id,
			Name:     input.Name,
			Genre:    input.Genre,
			Platform: input.Platform,
			Owner:    ownerID(r),
		})
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "update game"))
			return
		}
		resp.RespondSuccess(w, r, game)
	}
}

// HandleDeleteGame removes a game together with its achievements.
func HandleDeleteGame(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", errs.ErrGameNotFound)
		if !ok {
			return
		}

		if err := deps.Store.DeleteGame(r.Context(), ownerID(r), id); err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "delete game"))
			return
		}

		logx.Debug("game deleted", "game_id", id, "user_id", ownerID(r))
		resp.RespondMessage(w, r, "Game deleted successfully")
	}
}
