package domain

// TokenPair bundles the access and refresh credentials issued at login.
// Both are signed JWTs bound to a user ID; only the refresh token is
// persisted server-side.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
