/*
Package req decodes request bodies into handler input structs.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gametracker/internal/pkg/errs"
)

// MaxBodySize caps JSON request bodies at 64 KB.
const MaxBodySize int64 = 64 << 10

// BindJSON decodes a single JSON document from the request body into dst. Unknown
// fields are rejected.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
