package handler

import (
	"net/http"
	"strings"
	"time"

	"gametracker/internal/app/tracker"
	"gametracker/internal/pkg/errs"
	"gametracker/internal/pkg/randx"
	"gametracker/internal/pkg/req"
	"gametracker/internal/pkg/resp"
)

// HandleListAchievements returns the achievements of the game in the path, most recent
// first. An unknown game is a 404, not an empty list.
func HandleListAchievements(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := pathID(w, r, "id", errs.ErrGameNotFound)
		if !ok {
			return
		}

		list, err := deps.Store.ListAchievements(r.Context(), ownerID(r), gameID)
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "list achievements"))
			return
		}
		respondAchievements(w, r, list)
	}
}

// HandleSearchAchievements filters a game's achievements by the keyword query parameter.
func HandleSearchAchievements(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, ok := pathID(w, r, "gameId", errs.ErrGameNotFound)
		if !ok {
			return
		}

		keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
		if keyword == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrKeywordRequired))
			return
		}

		list, err := deps.Store.SearchAchievements(r.Context(), ownerID(r), gameID, keyword)
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "search achievements"))
			return
		}
		respondAchievements(w, r, list)
	}
}

func HandleGetAchievement(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", errs.ErrAchievementNotFound)
		if !ok {
			return
		}

		a, err := deps.Store.GetAchievement(r.Context(), ownerID(r), id)
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrAchievementNotFound, "get achievement"))
			return
		}
		resp.RespondSuccess(w, r, a)
	}
}

func HandleCreateAchievement(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input tracker.AchievementInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input = input.Normalize()
		now := time.Now().UTC()
		date, customErr := checkAchievementInput(input, now)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		a, err := deps.Store.CreateAchievement(r.Context(), tracker.Achievement{
			ID:           randx.ID(),
			Title:        input.Title,
			Description:  input.Description,
			Game:         input.Game,
			DateAchieved: date,
			CreatedAt:    now,
			Owner:        ownerID(r),
		})
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "create achievement"))
			return
		}
		resp.RespondCreated(w, r, a)
	}
}

// HandleUpdateAchievement replaces the editable fields. An omitted game keeps the current
// one.
func HandleUpdateAchievement(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", errs.ErrAchievementNotFound)
		if !ok {
			return
		}

		var input tracker.AchievementInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		input = input.Normalize()

		current, err := deps.Store.GetAchievement(r.Context(), ownerID(r), id)
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrAchievementNotFound, "get achievement"))
			return
		}
		if input.Game == "" {
			input.Game = current.Game
		}

		date, customErr := checkAchievementInput(input, time.Now().UTC())
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		a, err := deps.Store.UpdateAchievement(r.Context(), tracker.Achievement{
			ID:           id,
			Title:        input.Title,
			Description:  input.Description,
			Game:         input.Game,
			DateAchieved: date,
			Owner:        ownerID(r),
		})
		if err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrGameNotFound, "update achievement"))
			return
		}
		resp.RespondSuccess(w, r, a)
	}
}

func HandleDeleteAchievement(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id", errs.ErrAchievementNotFound)
		if !ok {
			return
		}

		if err := deps.Store.DeleteAchievement(r.Context(), ownerID(r), id); err != nil {
			resp.RespondError(w, r, storeError(r, err, errs.ErrAchievementNotFound, "delete achievement"))
			return
		}
		resp.RespondMessage(w, r, "Achievement deleted successfully")
	}
}

// checkAchievementInput validates a normalized form and resolves its date.
func checkAchievementInput(input tracker.AchievementInput, now time.Time) (time.Time, *errs.CustomError) {
	if err := input.Validate(); err != nil {
		return time.Time{}, validationError(err)
	}
	if !randx.IsValidID(input.Game) {
		return time.Time{}, errs.NewError(errs.ErrGameNotFound)
	}

	date, err := tracker.ParseDate(input.DateAchieved, now)
	if err != nil {
		return time.Time{}, validationError(err)
	}
	return date, nil
}

func respondAchievements(w http.ResponseWriter, r *http.Request, list []tracker.Achievement) {
	if list == nil {
		list = []tracker.Achievement{}
	}
	resp.RespondSuccess(w, r, list)
}
