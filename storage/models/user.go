package models

import (
	"strings"
	"time"
)

type User struct {
	ID            uint    `gorm:"primaryKey"`
	Username      string  `gorm:"uniqueIndex;size:64"`
	Email         string  `gorm:"size:255"`
	FirstName     string  `gorm:"size:150"`
	LastName      string  `gorm:"size:150"`
	Bio           string  `gorm:"size:160"`
	ProfileImage  string  `gorm:"size:512"`
	ProfileBanner *string `gorm:"size:512"`
	CreatedAt     time.Time
}

// FullName joins the name parts the way profile pages display them.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
