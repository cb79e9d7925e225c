package dto

// RegisterUserRequest binds the multipart form fields of a registration
// request. The avatar and coverImage files arrive alongside and are read
// off the multipart form directly by the handler.
type RegisterUserRequest struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

// LoginRequest binds the JSON body of a login request. Either username
// or email identifies the user; the handler enforces that at least one
// is present.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the data payload of a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenRequest binds the optional JSON body of a token refresh.
// The cookie takes precedence when both are present.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPairResponse is the data payload of a successful token refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
