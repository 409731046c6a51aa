// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account that can publish articles, follow authors,
// and favorite articles.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Articles []Article `gorm:"foreignKey:AuthorID" json:"-"`
}

// Profile is the public view of a user, relative to a viewer. It never
// carries the email or credential fields.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// Profile returns the user's public profile with the viewer-relative
// following flag.
func (u *User) Profile(following bool) Profile {
	return Profile{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}
