package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"contactemail"`
	Password string `json:"password" validate:"min=6"`
}

type RegisterResult struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the identity carried by a session token.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResult struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"accessToken"`
	ExpiresAt   int64       `json:"expiresAt"`
	User        SessionUser `json:"user"`
}

type SessionResponse struct {
	User      SessionUser `json:"user"`
	ExpiresAt int64       `json:"expiresAt"`
}
