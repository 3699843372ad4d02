// Package social manages the like and follow edges of the graph.
package social

import (
	"errors"
	"fmt"

	"microblog/storage"
	"microblog/storage/models"
)

type Service struct {
	storage *storage.Manager
}

func NewService(storageManager *storage.Manager) *Service {
	return &Service{storage: storageManager}
}

// Like creates the (viewer, post) edge and recomputes the post's like count.
// Liking an already-liked post is a conflict; the uniqueness index makes the
// check-then-insert race-free.
func (s *Service) Like(viewer, postID uint) (int64, error) {
	if _, err := s.storage.GetPost(postID); err != nil {
		return 0, err
	}

	if err := s.storage.CreateLike(viewer, postID); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return 0, fmt.Errorf("%w: post already liked", storage.ErrConflict)
		}
		return 0, err
	}

	return s.storage.RecountLikes(postID)
}

// Unlike removes the edge if present. A missing edge is a no-op success so
// the operation stays idempotent; the count is recomputed either way.
func (s *Service) Unlike(viewer, postID uint) (int64, error) {
	if _, err := s.storage.GetPost(postID); err != nil {
		return 0, err
	}

	if _, err := s.storage.DeleteLike(viewer, postID); err != nil {
		return 0, err
	}

	return s.storage.RecountLikes(postID)
}

// Follow creates the (follower, target) edge. Self-follows and duplicate
// follows are conflicts.
func (s *Service) Follow(follower, targetID uint) error {
	if _, err := s.storage.GetUser(targetID); err != nil {
		return err
	}
	if follower == targetID {
		return fmt.Errorf("%w: users cannot follow themselves", storage.ErrConflict)
	}

	if err := s.storage.CreateFollow(follower, targetID); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("%w: user already followed", storage.ErrConflict)
		}
		return err
	}
	return nil
}

// Unfollow removes the edge and reports whether one existed. Unfollowing a
// user who was never followed is a no-op success.
func (s *Service) Unfollow(follower, targetID uint) (bool, error) {
	if _, err := s.storage.GetUser(targetID); err != nil {
		return false, err
	}
	return s.storage.DeleteFollow(follower, targetID)
}

// Followers lists the users following the target.
func (s *Service) Followers(targetID uint) ([]models.User, error) {
	if _, err := s.storage.GetUser(targetID); err != nil {
		return nil, err
	}
	return s.storage.GetFollowers(targetID)
}

// Following lists the users the target follows.
func (s *Service) Following(targetID uint) ([]models.User, error) {
	if _, err := s.storage.GetUser(targetID); err != nil {
		return nil, err
	}
	return s.storage.GetFollowing(targetID)
}
