/*
Package randx generates and validates the identifiers used for users, games and
achievements.
*/
package randx

import "github.com/google/uuid"

// ID returns a new random (v4) UUID string.
func ID() string {
	return uuid.NewString()
}

// IsValidID reports whether id is a canonical UUID string. Handlers use it to answer
// malformed path parameters with 404 before touching storage.
func IsValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
