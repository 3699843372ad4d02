package models

import "time"

// Comment is stored and cascaded on post deletion but not surfaced by any
// endpoint yet.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	PostID    uint   `gorm:"index;not null"`
	Text      string `gorm:"size:280"`
	CreatedAt time.Time
}
