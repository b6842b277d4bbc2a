package models

import "time"

type User struct {
	UserID       string    `json:"userid" bson:"userid"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         []string  `json:"role" bson:"role"`
	Favorites    []string  `json:"favorites" bson:"favorites"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin    time.Time `json:"last_login" bson:"last_login"`
	RefreshToken string    `json:"-" bson:"refreshtoken,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	for _, r := range u.Role {
		if r == "admin" {
			return true
		}
	}
	return false
}

// UserProfileResponse is what GET /api/users/profile returns.
type UserProfileResponse struct {
	UserID        string    `json:"userid"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	IsAdmin       bool      `json:"isAdmin"`
	CreatedAt     time.Time `json:"created_at"`
	OrderCount    int64     `json:"orderCount"`
	FavoriteCount int       `json:"favoriteCount"`
}
