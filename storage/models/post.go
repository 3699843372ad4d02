package models

import "time"

// Post holds a denormalized like count. The column is never incremented in
// place: every like/unlike recomputes it from the likes table.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	User      User   `gorm:"foreignKey:UserID"`
	Text      string `gorm:"size:280"`
	LikeCount int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
}
