package feeds

import (
	"time"

	"microblog/storage/models"
)

// PostView is the per-post payload shared by every feed scope. Timestamps
// marshal as RFC 3339 across all endpoints.
type PostView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	UserID       uint      `json:"userId"`
	Text         string    `json:"text"`
	Timestamp    time.Time `json:"timestamp"`
	LikeNumber   int64     `json:"likeNumber"`
	IsFaved      bool      `json:"is_faved"`
	ProfileImage string    `json:"profile_image"`
}

type UserSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image"`
}

// SummarizeUser serializes the user attributes the follower lists and feed
// headers expose.
func SummarizeUser(user *models.User) UserSummary {
	return UserSummary{
		ID:           user.ID,
		Name:         user.FullName(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		ProfileImage: user.ProfileImage,
	}
}

type Feed struct {
	PostCount int64      `json:"postCount"`
	Posts     []PostView `json:"posts"`
}

// FeedPage reports the page actually served, which may differ from the page
// requested when the request was clamped.
type FeedPage struct {
	PostCount int64      `json:"postCount"`
	Page      int        `json:"page"`
	NumPages  int        `json:"num_pages"`
	Posts     []PostView `json:"posts"`
}

// HomeFeed is the following-scope feed plus the viewer's own summary.
type HomeFeed struct {
	PostCount int64       `json:"postCount"`
	Posts     []PostView  `json:"posts"`
	Info      UserSummary `json:"info"`
}

type ProfileInfo struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	DateJoined     time.Time `json:"date_joined"`
	PostCount      int64     `json:"postCount"`
	FollowerCount  int64     `json:"followerCount"`
	FollowingCount int64     `json:"followingCount"`
	Following      bool      `json:"following"`
	ProfileImage   string    `json:"profile_image"`
	ProfileBanner  *string   `json:"profile_banner"`
}

// UserProfile combines a profile summary with the target's posts.
// ContentType is "userProfile" when the viewer looks at their own profile,
// "profile" otherwise.
type UserProfile struct {
	PostCount   int64       `json:"postCount"`
	Posts       []PostView  `json:"posts"`
	ContentType string      `json:"contentType"`
	Info        ProfileInfo `json:"info"`
}
