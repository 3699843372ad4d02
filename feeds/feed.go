package feeds

import (
	"microblog/storage"
	"microblog/storage/models"
)

const PageSize = 10

// Anonymous is the viewer id for unauthenticated requests. Anonymous viewers
// always see is_faved=false.
const Anonymous uint = 0

// Service assembles time-ordered post lists for one of four scopes, annotated
// with the viewer's like state. It holds no state between calls.
type Service struct {
	storage *storage.Manager
}

func NewService(storageManager *storage.Manager) *Service {
	return &Service{storage: storageManager}
}

// GlobalFeed returns every post, newest first.
func (s *Service) GlobalFeed(viewer uint) (*Feed, error) {
	posts, err := s.storage.GetAllPosts()
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(posts, viewer)
	if err != nil {
		return nil, err
	}
	return &Feed{PostCount: int64(len(posts)), Posts: views}, nil
}

// GlobalFeedPage serves fixed pages of 10. Out-of-range page numbers clamp to
// the nearest valid page instead of erroring.
func (s *Service) GlobalFeedPage(viewer uint, page int) (*FeedPage, error) {
	count, err := s.storage.CountPosts()
	if err != nil {
		return nil, err
	}
	pages := numPages(count)
	page = clampPage(page, pages)

	posts, err := s.storage.GetPostsPage((page-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(posts, viewer)
	if err != nil {
		return nil, err
	}
	return &FeedPage{PostCount: count, Page: page, NumPages: pages, Posts: views}, nil
}

// FollowingFeed returns posts authored by the viewer and everyone the viewer
// follows, plus the viewer's own summary.
func (s *Service) FollowingFeed(viewer uint) (*HomeFeed, error) {
	user, err := s.storage.GetUser(viewer)
	if err != nil {
		return nil, err
	}

	scope, err := s.followingScope(viewer, true)
	if err != nil {
		return nil, err
	}
	posts, err := s.storage.GetPostsByUsers(scope)
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(posts, viewer)
	if err != nil {
		return nil, err
	}

	return &HomeFeed{
		PostCount: int64(len(posts)),
		Posts:     views,
		Info:      SummarizeUser(user),
	}, nil
}

// FollowingTimeline is the paginated variant scoped to followees only; the
// viewer's own posts are excluded.
func (s *Service) FollowingTimeline(viewer uint, page int) (*FeedPage, error) {
	if _, err := s.storage.GetUser(viewer); err != nil {
		return nil, err
	}

	scope, err := s.followingScope(viewer, false)
	if err != nil {
		return nil, err
	}

	count, err := s.storage.CountPostsByUsers(scope)
	if err != nil {
		return nil, err
	}
	pages := numPages(count)
	page = clampPage(page, pages)

	posts, err := s.storage.GetPostsByUsersPage(scope, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(posts, viewer)
	if err != nil {
		return nil, err
	}
	return &FeedPage{PostCount: count, Page: page, NumPages: pages, Posts: views}, nil
}

// UserTimeline returns the target user's posts only.
func (s *Service) UserTimeline(targetID, viewer uint) (*Feed, error) {
	if _, err := s.storage.GetUser(targetID); err != nil {
		return nil, err
	}

	posts, err := s.storage.GetPostsByUser(targetID)
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(posts, viewer)
	if err != nil {
		return nil, err
	}
	return &Feed{PostCount: int64(len(posts)), Posts: views}, nil
}

// UserInfo returns the target's profile summary together with their posts.
func (s *Service) UserInfo(targetID, viewer uint) (*UserProfile, error) {
	user, err := s.storage.GetUser(targetID)
	if err != nil {
		return nil, err
	}

	posts, err := s.storage.GetPostsByUser(targetID)
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(posts, viewer)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.storage.CountFollowers(targetID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.storage.CountFollowing(targetID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewer != Anonymous && viewer != targetID {
		following, err = s.storage.FollowExists(viewer, targetID)
		if err != nil {
			return nil, err
		}
	}

	contentType := "profile"
	if viewer == targetID && viewer != Anonymous {
		contentType = "userProfile"
	}

	postCount := int64(len(posts))
	return &UserProfile{
		PostCount:   postCount,
		Posts:       views,
		ContentType: contentType,
		Info: ProfileInfo{
			ID:             user.ID,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			Username:       user.Username,
			Bio:            user.Bio,
			DateJoined:     user.CreatedAt,
			PostCount:      postCount,
			FollowerCount:  followerCount,
			FollowingCount: followingCount,
			Following:      following,
			ProfileImage:   user.ProfileImage,
			ProfileBanner:  user.ProfileBanner,
		},
	}, nil
}

// BuildPostView serializes a single post for the given viewer, with the like
// state looked up on the spot.
func (s *Service) BuildPostView(post *models.Post, viewer uint) (*PostView, error) {
	faved := false
	if viewer != Anonymous {
		var err error
		faved, err = s.storage.LikeExists(viewer, post.ID)
		if err != nil {
			return nil, err
		}
	}
	view := newPostView(post, faved)
	return &view, nil
}

// followingScope expands the viewer's follow edges into the set of author ids
// populating a following-scoped feed.
func (s *Service) followingScope(viewer uint, includeSelf bool) ([]uint, error) {
	followees, err := s.storage.GetFolloweeIDs(viewer)
	if err != nil {
		return nil, err
	}
	if !includeSelf {
		return followees, nil
	}
	return append([]uint{viewer}, followees...), nil
}

func (s *Service) buildViews(posts []models.Post, viewer uint) ([]PostView, error) {
	liked := map[uint]bool{}
	if viewer != Anonymous && len(posts) > 0 {
		ids := make([]uint, len(posts))
		for i, post := range posts {
			ids[i] = post.ID
		}
		var err error
		liked, err = s.storage.GetLikedPostIDs(viewer, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]PostView, len(posts))
	for i, post := range posts {
		views[i] = newPostView(&post, liked[post.ID])
	}
	return views, nil
}

func newPostView(post *models.Post, faved bool) PostView {
	return PostView{
		ID:           post.ID,
		Name:         post.User.FullName(),
		Username:     post.User.Username,
		UserID:       post.UserID,
		Text:         post.Text,
		Timestamp:    post.CreatedAt,
		LikeNumber:   post.LikeCount,
		IsFaved:      faved,
		ProfileImage: post.User.ProfileImage,
	}
}

// numPages mirrors the standard paginator: an empty result set still has one
// (empty) page.
func numPages(count int64) int {
	pages := int((count + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}

func clampPage(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}
