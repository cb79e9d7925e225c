package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for a user.
// Username is stored lowercase; username and email carry unique indexes.
type User struct {
	UserID        string `json:"userID" db:"user_id"`
	Username      string `json:"username" db:"username"`
	Email         string `json:"email" db:"email"`
	FullName      string `json:"fullName" db:"full_name"`
	PasswordHash  string `json:"-" db:"password_hash"`
	AvatarURL     string `json:"avatar" db:"avatar_url"`
	CoverImageURL string `json:"coverImage" db:"cover_image_url"`

	// RefreshToken is NULL when no session is active.
	RefreshToken sql.NullString `json:"-" db:"refresh_token"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
