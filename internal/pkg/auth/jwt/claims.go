package jwt

import "github.com/golang-jwt/jwt"

// Payload is the claim set carried by a tracker access token.
type Payload struct {
	jwt.StandardClaims

	// UserID is the id of the account the token was issued to.
	UserID string `json:"uid"`

	// Username is informational; handlers always resolve the account by UserID.
	Username string `json:"username"`
}
