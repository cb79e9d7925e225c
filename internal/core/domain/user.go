package domain

import "time"

// User represents a registered user of the platform.
type User struct {
	UserID        string `json:"userID"` // Primary key (UUID)
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	PasswordHash  string `json:"-"`
	AvatarURL     string `json:"avatar"`
	CoverImageURL string `json:"coverImage,omitempty"`

	// RefreshToken is the currently active refresh token, empty when the
	// user is logged out. A new login overwrites it, it is never appended.
	RefreshToken string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
