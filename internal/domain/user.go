package domain

import "time"

const (
	LevelAdmin = "Admin"
	LevelUser  = "User"
	LevelGuest = "Guest"
)

// TokenUser is the identity carried in an access token. Tokens are minted
// by the auth server; this system only verifies and reads them.
type TokenUser struct {
	UserID    int64  `json:"user_id"`
	LevelName string `json:"level_name"`
}

func (u TokenUser) IsAdmin() bool {
	return u.LevelName == LevelAdmin
}

// CanModify is the single ownership rule applied before every mutating
// operation: admins may touch anything, everyone else only their own rows.
func (u TokenUser) CanModify(ownerID int64) bool {
	return u.IsAdmin() || u.UserID == ownerID
}

// User rows live in the shared database but are owned by the auth server;
// this service reads them for display names and notification emails only.
type User struct {
	ID        int64     `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	LevelName string    `json:"level_name" db:"level_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
