package dto

// RegisterRequest is the payload for creating a new account
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Avatar   *string `json:"avatar"`
}

// LoginRequest is the payload for issuing a token for an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest mutates name and avatar; absent fields are left untouched
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// AuthResponse carries a bearer token together with the authenticated user
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse wraps a user for /auth/me and update-profile
type ProfileResponse struct {
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}
