/*
Package errs defines the application error codes and the CustomError type returned by
the HTTP handlers.

Codes are stable integers shared with clients: 1xxx request handling, 2xxx games,
achievements and the chatbot, 3xxx accounts and sessions, 5xxx internal faults.
*/
package errs

// 1xxx: request handling
const (
	// ErrInvalidParams indicates that a path or query parameter failed validation.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates a request body that is not application/json.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates a body that could not be decoded.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing data after the JSON document.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates a body above the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates the caller exhausted its request budget.
	ErrRateLimitExceeded = 1007

	// ErrNotFound indicates an unknown route.
	ErrNotFound = 1008
)

// 2xxx: games, achievements and chatbot
const (
	ErrGameNameRequired = 2101
	ErrGameNotFound     = 2102

	ErrAchievementTitleRequired = 2201
	ErrAchievementGameRequired  = 2202
	ErrAchievementNotFound      = 2203
	ErrInvalidDate              = 2204
	ErrKeywordRequired          = 2205

	ErrQuestionRequired = 2301
)

// 3xxx: accounts and sessions
const (
	// ErrUnauthorized indicates a missing, malformed or expired bearer token.
	ErrUnauthorized = 3001

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = 3002

	// ErrUserAlreadyExists indicates the username or email is taken.
	ErrUserAlreadyExists = 3003

	ErrInvalidUsername = 3004
	ErrInvalidEmail    = 3005
	ErrInvalidPassword = 3006

	// ErrUserNotFound indicates a valid token whose user no longer exists.
	ErrUserNotFound = 3007
)

// 5xxx: internal faults
const (
	// ErrUnknown is an unclassified server fault. The cause is logged, never returned.
	ErrUnknown = 5000

	// ErrChatbotUnavailable indicates the assistant backend failed to answer.
	ErrChatbotUnavailable = 5001
)
