// Package posts covers the post lifecycle: create, edit, delete.
package posts

import (
	"fmt"
	"unicode/utf8"

	"microblog/feeds"
	"microblog/storage"
	"microblog/storage/models"
)

const MaxTextLength = 280

type Service struct {
	storage *storage.Manager
	feeds   *feeds.Service
}

func NewService(storageManager *storage.Manager, feedsService *feeds.Service) *Service {
	return &Service{storage: storageManager, feeds: feedsService}
}

// CreateResult carries the new post and the author's current view of the
// global post count.
type CreateResult struct {
	PostCount int64          `json:"postCount"`
	Post      feeds.PostView `json:"post"`
}

// Create persists a new post with like count zero.
func (s *Service) Create(author uint, text string) (*CreateResult, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	if _, err := s.storage.GetUser(author); err != nil {
		return nil, err
	}

	post := models.Post{UserID: author, Text: text}
	if err := s.storage.CreatePost(&post); err != nil {
		return nil, err
	}

	created, err := s.storage.GetPost(post.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.storage.CountPosts()
	if err != nil {
		return nil, err
	}

	view, err := s.feeds.BuildPostView(created, author)
	if err != nil {
		return nil, err
	}
	return &CreateResult{PostCount: count, Post: *view}, nil
}

// Edit overwrites the text of the caller's own post; created_at and the like
// count stay as they were.
func (s *Service) Edit(caller, postID uint, text string) (*feeds.PostView, error) {
	post, err := s.storage.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != caller {
		return nil, fmt.Errorf("%w: only the author can edit a post", storage.ErrForbidden)
	}
	if err := validateText(text); err != nil {
		return nil, err
	}

	if err := s.storage.UpdatePostText(postID, text); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetPost(postID)
	if err != nil {
		return nil, err
	}
	return s.feeds.BuildPostView(updated, caller)
}

// Delete removes the caller's own post and every like and comment edge
// referencing it.
func (s *Service) Delete(caller, postID uint) error {
	post, err := s.storage.GetPost(postID)
	if err != nil {
		return err
	}
	if post.UserID != caller {
		return fmt.Errorf("%w: only the author can delete a post", storage.ErrForbidden)
	}
	return s.storage.DeletePost(postID)
}

func validateText(text string) error {
	if text == "" {
		return fmt.Errorf("%w: text is required", storage.ErrValidation)
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return fmt.Errorf("%w: text exceeds %d characters", storage.ErrValidation, MaxTextLength)
	}
	return nil
}
