package models

import "time"

type Follow struct {
	ID         uint `gorm:"primaryKey"`
	FollowerID uint `gorm:"uniqueIndex:idx_follows_pair;not null"`
	FolloweeID uint `gorm:"uniqueIndex:idx_follows_pair;not null"`
	CreatedAt  time.Time
}
