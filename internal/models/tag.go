package models

// Tag is a registry entry for a known topic name. Articles embed their
// tag list directly; this table only backs the global tags listing.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
