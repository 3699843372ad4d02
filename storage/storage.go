package storage

import (
	"errors"

	"microblog/storage/models"

	"gorm.io/gorm"
)

// FeedOrder sorts posts newest first; posts sharing a timestamp keep their
// insertion order.
const FeedOrder = "created_at DESC, id"

// Manager wraps the gorm connection and classifies driver errors into the
// package taxonomy at the point they happen. The connection must be opened
// with gorm's TranslateError option so unique violations surface as
// gorm.ErrDuplicatedKey.
type Manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

// Users

func (m *Manager) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := m.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (m *Manager) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := m.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (m *Manager) CreateUser(user *models.User) error {
	return translate(m.db.Create(user).Error)
}

func (m *Manager) SaveUser(user *models.User) error {
	return translate(m.db.Save(user).Error)
}

// Posts

func (m *Manager) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := m.db.Preload("User").First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (m *Manager) CreatePost(post *models.Post) error {
	return translate(m.db.Create(post).Error)
}

// UpdatePostText overwrites the text column only; created_at and like_count
// are untouched.
func (m *Manager) UpdatePostText(postID uint, text string) error {
	return translate(
		m.db.Model(&models.Post{}).Where("id = ?", postID).Update("text", text).Error,
	)
}

// DeletePost removes the post together with every like and comment edge
// referencing it, in one transaction.
func (m *Manager) DeletePost(postID uint) error {
	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
	return translate(err)
}

func (m *Manager) CountPosts() (int64, error) {
	var count int64
	err := m.db.Model(&models.Post{}).Count(&count).Error
	return count, translate(err)
}

func (m *Manager) CountPostsByUser(userID uint) (int64, error) {
	var count int64
	err := m.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, translate(err)
}

func (m *Manager) CountPostsByUsers(userIDs []uint) (int64, error) {
	var count int64
	err := m.db.Model(&models.Post{}).Where("user_id IN ?", userIDs).Count(&count).Error
	return count, translate(err)
}

func (m *Manager) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := m.db.Preload("User").Order(FeedOrder).Find(&posts).Error
	return posts, translate(err)
}

func (m *Manager) GetPostsPage(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := m.db.Preload("User").Order(FeedOrder).
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, translate(err)
}

func (m *Manager) GetPostsByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := m.db.Preload("User").Where("user_id = ?", userID).
		Order(FeedOrder).
		Find(&posts).Error
	return posts, translate(err)
}

func (m *Manager) GetPostsByUsers(userIDs []uint) ([]models.Post, error) {
	var posts []models.Post
	err := m.db.Preload("User").Where("user_id IN ?", userIDs).
		Order(FeedOrder).
		Find(&posts).Error
	return posts, translate(err)
}

func (m *Manager) GetPostsByUsersPage(userIDs []uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := m.db.Preload("User").Where("user_id IN ?", userIDs).
		Order(FeedOrder).
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, translate(err)
}

func (m *Manager) GetPostIDs() ([]uint, error) {
	var ids []uint
	err := m.db.Model(&models.Post{}).Order("id").Pluck("id", &ids).Error
	return ids, translate(err)
}

// Likes

// CreateLike relies on the unique (user_id, post_id) index: a concurrent
// duplicate comes back as ErrConflict instead of a second edge.
func (m *Manager) CreateLike(userID, postID uint) error {
	like := models.Like{UserID: userID, PostID: postID}
	return translate(m.db.Create(&like).Error)
}

// DeleteLike reports whether an edge existed; deleting a missing edge is not
// an error.
func (m *Manager) DeleteLike(userID, postID uint) (bool, error) {
	result := m.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	return result.RowsAffected > 0, translate(result.Error)
}

func (m *Manager) LikeExists(userID, postID uint) (bool, error) {
	var count int64
	err := m.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, translate(err)
}

// GetLikedPostIDs returns the subset of postIDs the user has liked. One query
// per feed; the observable result is identical to a point lookup per post.
func (m *Manager) GetLikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := m.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// RecountLikes recomputes the post's like count from the likes table and
// persists it. Counting instead of incrementing keeps the column from
// drifting when edges are created or removed through any other path.
func (m *Manager) RecountLikes(postID uint) (int64, error) {
	var count int64
	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("like_count", count).Error
	})
	return count, translate(err)
}

// Follows

func (m *Manager) CreateFollow(followerID, followeeID uint) error {
	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	return translate(m.db.Create(&follow).Error)
}

func (m *Manager) DeleteFollow(followerID, followeeID uint) (bool, error) {
	result := m.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	return result.RowsAffected > 0, translate(result.Error)
}

func (m *Manager) FollowExists(followerID, followeeID uint) (bool, error) {
	var count int64
	err := m.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, translate(err)
}

// GetFolloweeIDs lists the users followerID follows.
func (m *Manager) GetFolloweeIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := m.db.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Order("id").
		Pluck("followee_id", &ids).Error
	return ids, translate(err)
}

func (m *Manager) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := m.db.
		Joins("INNER JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.id").
		Find(&users).Error
	return users, translate(err)
}

func (m *Manager) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := m.db.
		Joins("INNER JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.id").
		Find(&users).Error
	return users, translate(err)
}

func (m *Manager) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := m.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count).Error
	return count, translate(err)
}

func (m *Manager) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := m.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, translate(err)
}

// Comments

// Comments are stored and cascaded on post deletion; nothing serves them yet.

func (m *Manager) CreateComment(comment *models.Comment) error {
	return translate(m.db.Create(comment).Error)
}

func (m *Manager) CountCommentsForPost(postID uint) (int64, error) {
	var count int64
	err := m.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, translate(err)
}

func (m *Manager) CountLikesForPost(postID uint) (int64, error) {
	var count int64
	err := m.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, translate(err)
}
