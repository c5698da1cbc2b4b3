package tracker

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by login and registration.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChatQuestion is the body of POST /chatbot.
type ChatQuestion struct {
	Question string `json:"question"`
}

// ChatAnswer is the reply of POST /chatbot.
type ChatAnswer struct {
	Answer string `json:"answer"`
}

// Message is the reply of delete endpoints.
type Message struct {
	Message string `json:"message"`
}
