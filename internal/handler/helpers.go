package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gametracker/internal/app/tracker"
	"gametracker/internal/pkg/auth/jwt"
	"gametracker/internal/pkg/errs"
	"gametracker/internal/pkg/logx"
	"gametracker/internal/pkg/randx"
	"gametracker/internal/pkg/resp"
)

// ownerID returns the caller's user id. Routes using it sit behind jwt.RequireAuth.
func ownerID(r *http.Request) string {
	if payload := jwt.GetPayloadFromContext(r); payload != nil {
		return payload.UserID
	}
	return ""
}

// pathID reads a UUID path parameter. Malformed ids are answered with notFoundCode.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFoundCode int) (string, bool) {
	id := chi.URLParam(r, name)
	if !randx.IsValidID(id) {
		resp.RespondError(w, r, errs.NewError(notFoundCode))
		return "", false
	}
	return id, true
}

// storeError maps a tracker.Store error onto a response error. Unexpected errors are
// logged and reported as ErrUnknown.
func storeError(r *http.Request, err error, notFoundCode int, op string) *errs.CustomError {
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		return errs.NewError(notFoundCode)
	case errors.Is(err, tracker.ErrUserExists):
		return errs.NewError(errs.ErrUserAlreadyExists)
	default:
		logx.Error(err, op+" failed", "uri", r.RequestURI)
		return errs.NewError(errs.ErrUnknown)
	}
}

// validationError maps input validation errors onto response errors.
func validationError(err error) *errs.CustomError {
	switch {
	case errors.Is(err, tracker.ErrNameRequired):
		return errs.NewError(errs.ErrGameNameRequired)
	case errors.Is(err, tracker.ErrTitleRequired):
		return errs.NewError(errs.ErrAchievementTitleRequired)
	case errors.Is(err, tracker.ErrGameRequired):
		return errs.NewError(errs.ErrAchievementGameRequired)
	case errors.Is(err, tracker.ErrInvalidDate):
		return errs.NewError(errs.ErrInvalidDate)
	default:
		return errs.NewError(errs.ErrInvalidParams)
	}
}
