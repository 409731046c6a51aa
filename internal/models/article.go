package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// TagList is an ordered sequence of tag names stored as a single
// comma-joined column, matching the original schema ("coffe,dragons").
// It is never null: an article without tags stores the empty string and
// marshals as [].
type TagList []string

// Value implements driver.Valuer.
func (l TagList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

// Scan implements sql.Scanner.
func (l *TagList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*l = TagList{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}
	if raw == "" {
		*l = TagList{}
		return nil
	}
	*l = TagList(strings.Split(raw, ","))
	return nil
}

// Contains reports whether the list holds the exact tag.
func (l TagList) Contains(tag string) bool {
	for _, t := range l {
		if t == tag {
			return true
		}
	}
	return false
}

// Article is a published piece identified by a unique slug derived from
// its title. FavoritesCount is a denormalized counter kept equal to the
// number of Favorite rows referencing the article; every mutation of the
// relation updates both inside one transaction.
type Article struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Slug           string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        TagList   `gorm:"type:text;not null" json:"tagList"`
	FavoritesCount int       `gorm:"not null;default:0" json:"favoritesCount"`
	AuthorID       uint      `gorm:"not null;index" json:"-"`
	Author         User      `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Favorited indicates whether the requesting viewer favorited this
	// article; overlaid at query time, not persisted.
	Favorited bool `gorm:"-" json:"favorited"`
}
