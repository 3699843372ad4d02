package posts

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"microblog/feeds"
	"microblog/storage"
	"microblog/storage/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *storage.Manager) {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	manager := storage.NewManager(db)
	return NewService(manager, feeds.NewService(manager)), manager
}

func createUser(t *testing.T, m *storage.Manager, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, FirstName: "Test", LastName: username}
	if err := m.CreateUser(&user); err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return &user
}

func TestCreate(t *testing.T) {
	service, manager := newTestService(t)
	alice := createUser(t, manager, "alice")

	result, err := service.Create(alice.ID, "first!")
	if err != nil {
		t.Fatalf("creating post: %v", err)
	}
	if result.PostCount != 1 {
		t.Errorf("got postCount %d, want 1", result.PostCount)
	}
	if result.Post.Text != "first!" || result.Post.Username != "alice" {
		t.Errorf("got post %+v", result.Post)
	}
	if result.Post.LikeNumber != 0 || result.Post.IsFaved {
		t.Errorf("new post should start unliked, got %+v", result.Post)
	}

	result, err = service.Create(alice.ID, "second")
	if err != nil {
		t.Fatalf("creating second post: %v", err)
	}
	if result.PostCount != 2 {
		t.Errorf("got postCount %d, want 2", result.PostCount)
	}
}

func TestCreateValidation(t *testing.T) {
	service, manager := newTestService(t)
	alice := createUser(t, manager, "alice")

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("a", MaxTextLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Create(alice.ID, tt.text); !errors.Is(err, storage.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}

	// Length is counted in runes, not bytes.
	if _, err := service.Create(alice.ID, strings.Repeat("é", MaxTextLength)); err != nil {
		t.Errorf("multibyte text at the limit rejected: %v", err)
	}
}

func TestCreateUnknownAuthor(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.Create(999, "hello"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestEdit(t *testing.T) {
	service, manager := newTestService(t)
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")

	result, err := service.Create(alice.ID, "original")
	if err != nil {
		t.Fatalf("creating post: %v", err)
	}
	postID := result.Post.ID

	if err := manager.CreateLike(bob.ID, postID); err != nil {
		t.Fatalf("liking: %v", err)
	}
	if _, err := manager.RecountLikes(postID); err != nil {
		t.Fatalf("recounting: %v", err)
	}

	view, err := service.Edit(alice.ID, postID, "revised")
	if err != nil {
		t.Fatalf("editing: %v", err)
	}
	if view.Text != "revised" {
		t.Errorf("got text %q, want revised", view.Text)
	}
	if !view.Timestamp.Equal(result.Post.Timestamp) {
		t.Errorf("edit changed timestamp from %v to %v", result.Post.Timestamp, view.Timestamp)
	}
	if view.LikeNumber != 1 {
		t.Errorf("edit changed like count to %d, want 1", view.LikeNumber)
	}

	if _, err := service.Edit(bob.ID, postID, "hijacked"); !errors.Is(err, storage.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	if _, err := service.Edit(alice.ID, 999, "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if _, err := service.Edit(alice.ID, postID, ""); !errors.Is(err, storage.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestDelete(t *testing.T) {
	service, manager := newTestService(t)
	alice := createUser(t, manager, "alice")
	bob := createUser(t, manager, "bob")

	result, err := service.Create(alice.ID, "doomed")
	if err != nil {
		t.Fatalf("creating post: %v", err)
	}
	postID := result.Post.ID

	if err := manager.CreateLike(bob.ID, postID); err != nil {
		t.Fatalf("liking: %v", err)
	}

	if err := service.Delete(bob.ID, postID); !errors.Is(err, storage.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}

	if err := service.Delete(alice.ID, postID); err != nil {
		t.Fatalf("deleting: %v", err)
	}
	if _, err := manager.GetPost(postID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v after delete, want ErrNotFound", err)
	}
	likes, err := manager.CountLikesForPost(postID)
	if err != nil {
		t.Fatalf("counting likes: %v", err)
	}
	if likes != 0 {
		t.Errorf("got %d orphaned likes, want 0", likes)
	}

	if err := service.Delete(alice.ID, postID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v deleting twice, want ErrNotFound", err)
	}
}
