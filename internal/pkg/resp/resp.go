/*
Package resp writes JSON responses.

Successful responses carry the bare payload (a game, a list of achievements, a token and
user pair); failures carry ErrorBody with the business code and a user-facing message.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"gametracker/internal/pkg/errs"
	"gametracker/internal/pkg/logx"
)

// ErrorBody is the payload of every non-2xx response.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON encodes payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "resp: encoding JSON response", "http_status", httpStatus, "uri", r.RequestURI)
		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(httpStatus)
	_, _ = w.Write(body)
}

// RespondSuccess writes data with 200 OK.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, data)
}

// RespondCreated writes data with 201 Created.
func RespondCreated(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusCreated, data)
}

// RespondMessage writes {"message": msg} with 200 OK.
func RespondMessage(w http.ResponseWriter, r *http.Request, msg string) {
	RespondJSON(w, r, http.StatusOK, map[string]string{"message": msg})
}

// RespondError writes customErr with its HTTP status. A nil error is reported as ErrUnknown.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, ErrorBody{
		Code:    customErr.Code,
		Message: customErr.Message,
	})
}
