package models

import "time"

// Like is unique per (user, post); the composite index is what makes
// concurrent duplicate likes lose at the database instead of racing us.
type Like struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_likes_user_post;not null"`
	PostID    uint `gorm:"uniqueIndex:idx_likes_user_post;not null"`
	CreatedAt time.Time
}
