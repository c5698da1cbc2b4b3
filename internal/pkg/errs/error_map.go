package errs

import "net/http"

// errorMap holds the user-facing message and HTTP status for every code.
var errorMap = map[int]CustomError{
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Malformed JSON body.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},
	ErrNotFound:              {Code: ErrNotFound, Message: "Resource not found.", Status: http.StatusNotFound},

	ErrGameNameRequired:         {Code: ErrGameNameRequired, Message: "Game name is required.", Status: http.StatusBadRequest},
	ErrGameNotFound:             {Code: ErrGameNotFound, Message: "Game not found.", Status: http.StatusNotFound},
	ErrAchievementTitleRequired: {Code: ErrAchievementTitleRequired, Message: "Achievement title is required.", Status: http.StatusBadRequest},
	ErrAchievementGameRequired:  {Code: ErrAchievementGameRequired, Message: "Achievement must belong to a game.", Status: http.StatusBadRequest},
	ErrAchievementNotFound:      {Code: ErrAchievementNotFound, Message: "Achievement not found.", Status: http.StatusNotFound},
	ErrInvalidDate:              {Code: ErrInvalidDate, Message: "Invalid date, expected YYYY-MM-DD.", Status: http.StatusBadRequest},
	ErrKeywordRequired:          {Code: ErrKeywordRequired, Message: "Search keyword is required.", Status: http.StatusBadRequest},
	ErrQuestionRequired:         {Code: ErrQuestionRequired, Message: "Please ask a question.", Status: http.StatusBadRequest},

	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Invalid email or password.", Status: http.StatusUnauthorized},
	ErrUserAlreadyExists:  {Code: ErrUserAlreadyExists, Message: "User already exists.", Status: http.StatusConflict},
	ErrInvalidUsername:    {Code: ErrInvalidUsername, Message: "Username must be 3-30 letters, digits or underscores.", Status: http.StatusBadRequest},
	ErrInvalidEmail:       {Code: ErrInvalidEmail, Message: "Invalid email address.", Status: http.StatusBadRequest},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Password must be 6-72 characters.", Status: http.StatusBadRequest},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "Account not found.", Status: http.StatusUnauthorized},

	ErrUnknown:            {Code: ErrUnknown, Message: "Server error. Please try again.", Status: http.StatusInternalServerError},
	ErrChatbotUnavailable: {Code: ErrChatbotUnavailable, Message: "The gaming assistant is unavailable right now.", Status: http.StatusServiceUnavailable},
}
