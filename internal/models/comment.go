package models

import (
	"time"
)

// Comment is a reader's comment on an article.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"not null" json:"body"`
	ArticleID uint      `gorm:"not null;index" json:"-"`
	AuthorID  uint      `gorm:"not null" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
