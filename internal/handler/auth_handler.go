/*
Package handler provides the HTTP handlers and routing for the game tracker API.
*/
package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"gametracker/internal/app/tracker"
	"gametracker/internal/pkg/auth/jwt"
	"gametracker/internal/pkg/errs"
	"gametracker/internal/pkg/logx"
	"gametracker/internal/pkg/randx"
	"gametracker/internal/pkg/req"
	"gametracker/internal/pkg/resp"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	minPasswordRunes = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// HandleRegister creates an account and signs the caller in.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input tracker.Registration
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		username := strings.TrimSpace(input.Username)
		email := strings.ToLower(strings.TrimSpace(input.Email))

		if !usernameRegex.MatchString(username) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUsername))
			return
		}
		if len(email) > 254 || !emailRegex.MatchString(email) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidEmail))
			return
		}
		if utf8.RuneCountInString(input.Password) < minPasswordRunes || len(input.Password) > maxPasswordBytes {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		acct, err := deps.Store.CreateUser(r.Context(), tracker.Account{
			User: tracker.User{
				ID:       randx.ID(),
				Username: username,
				Email:    email,
			},
			PasswordHash: string(hashedPassword),
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			if errors.Is(err, tracker.ErrUserExists) {
				logx.Warn("registration conflict: username or email already exists", "username", username)
			}
			resp.RespondError(w, r, storeError(r, err, errs.ErrUserNotFound, "create user"))
			return
		}

		respondWithToken(w, r, deps, acct.User, http.StatusCreated)
	}
}

// HandleLogin verifies the email and password and issues a JWT.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input tracker.Credentials
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))
		if email == "" || input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		acct, err := deps.Store.GetUserByEmail(r.Context(), email)
		if err != nil {
			if !errors.Is(err, tracker.ErrNotFound) {
				resp.RespondError(w, r, storeError(r, err, errs.ErrInvalidCredentials, "login lookup"))
				return
			}
			logx.Warn("login: unknown email")
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(input.Password)); err != nil {
			logx.Warn("login: password mismatch", "user_id", acct.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		respondWithToken(w, r, deps, acct.User, http.StatusOK)
	}
}

// HandleMe returns the account the bearer token belongs to.
func HandleMe(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct, err := deps.Store.GetUserByID(r.Context(), ownerID(r))
		if err != nil {
			if errors.Is(err, tracker.ErrNotFound) {
				logx.Warn("me: token refers to a missing user", "user_id", ownerID(r))
			}
			resp.RespondError(w, r, storeError(r, err, errs.ErrUserNotFound, "get user"))
			return
		}

		resp.RespondSuccess(w, r, acct.User)
	}
}

func respondWithToken(w http.ResponseWriter, r *http.Request, deps *AppDeps, user tracker.User, status int) {
	token, err := jwt.GenerateToken(&jwt.Payload{
		UserID:   user.ID,
		Username: user.Username,
	}, deps.Config.JWTSecret, jwt.AccessTokenExpiration)
	if err != nil {
		logx.Error(err, "jwt generation failed", "user_id", user.ID)
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	resp.RespondJSON(w, r, status, tracker.AuthResult{Token: token, User: user})
}
