package api

// AuthRequest is the credential login payload
type AuthRequest struct {
	EmailOrUsername string `json:"emailOrUsername"` // login handle, email or username
	Password        string `json:"password"`
}

// SignupRequest is the registration payload
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by the login, register and refresh endpoints.
// Refresh responses carry only the token fields; identity fields keep
// their previous values on the client.
type AuthResponse struct {
	Token        string   `json:"token"`        // JWT access token
	RefreshToken string   `json:"refreshToken"` // opaque refresh token
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles,omitempty"`
	Permissions  []string `json:"permissions,omitempty"`
}

// RefreshRequest carries the refresh token used to mint a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest is the authenticated password-change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ErrorResponse is the error body returned by the backend
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
