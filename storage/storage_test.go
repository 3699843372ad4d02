package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"microblog/storage/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return NewManager(db)
}

func mustCreateUser(t *testing.T, m *Manager, username string) *models.User {
	t.Helper()
	user := models.User{Username: username}
	if err := m.CreateUser(&user); err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return &user
}

func mustCreatePost(t *testing.T, m *Manager, author uint, text string) *models.Post {
	t.Helper()
	post := models.Post{UserID: author, Text: text}
	if err := m.CreatePost(&post); err != nil {
		t.Fatalf("creating post: %v", err)
	}
	return &post
}

func TestGetUserNotFound(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.GetUser(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	m := newTestManager(t)
	mustCreateUser(t, m, "alice")

	err := m.CreateUser(&models.User{Username: "alice"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("got %v, want ErrConflict", err)
	}
}

func TestCreateLikeDuplicate(t *testing.T) {
	m := newTestManager(t)
	user := mustCreateUser(t, m, "alice")
	post := mustCreatePost(t, m, user.ID, "hello")

	if err := m.CreateLike(user.ID, post.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if err := m.CreateLike(user.ID, post.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("got %v, want ErrConflict", err)
	}
}

func TestDeleteLikeAbsent(t *testing.T) {
	m := newTestManager(t)
	user := mustCreateUser(t, m, "alice")
	post := mustCreatePost(t, m, user.ID, "hello")

	removed, err := m.DeleteLike(user.ID, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("reported a removed edge where none existed")
	}
}

func TestRecountLikes(t *testing.T) {
	m := newTestManager(t)
	alice := mustCreateUser(t, m, "alice")
	bob := mustCreateUser(t, m, "bob")
	post := mustCreatePost(t, m, alice.ID, "hello")

	for _, user := range []uint{alice.ID, bob.ID} {
		if err := m.CreateLike(user, post.ID); err != nil {
			t.Fatalf("liking: %v", err)
		}
	}

	count, err := m.RecountLikes(post.ID)
	if err != nil {
		t.Fatalf("recounting: %v", err)
	}
	if count != 2 {
		t.Errorf("got count %d, want 2", count)
	}

	stored, err := m.GetPost(post.ID)
	if err != nil {
		t.Fatalf("reloading post: %v", err)
	}
	if stored.LikeCount != 2 {
		t.Errorf("got persisted count %d, want 2", stored.LikeCount)
	}
}

func TestCreateFollowDuplicate(t *testing.T) {
	m := newTestManager(t)
	alice := mustCreateUser(t, m, "alice")
	bob := mustCreateUser(t, m, "bob")

	if err := m.CreateFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if err := m.CreateFollow(alice.ID, bob.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("got %v, want ErrConflict", err)
	}
	// Reverse direction is a distinct edge.
	if err := m.CreateFollow(bob.ID, alice.ID); err != nil {
		t.Errorf("reverse follow: %v", err)
	}
}

func TestDeletePostCascades(t *testing.T) {
	m := newTestManager(t)
	alice := mustCreateUser(t, m, "alice")
	bob := mustCreateUser(t, m, "bob")
	post := mustCreatePost(t, m, alice.ID, "hello")

	if err := m.CreateLike(bob.ID, post.ID); err != nil {
		t.Fatalf("liking: %v", err)
	}
	comment := models.Comment{UserID: bob.ID, PostID: post.ID, Text: "hi"}
	if err := m.CreateComment(&comment); err != nil {
		t.Fatalf("commenting: %v", err)
	}

	if err := m.DeletePost(post.ID); err != nil {
		t.Fatalf("deleting post: %v", err)
	}

	if _, err := m.GetPost(post.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("post still present: %v", err)
	}
	likes, err := m.CountLikesForPost(post.ID)
	if err != nil || likes != 0 {
		t.Errorf("got %d orphaned likes (err %v), want 0", likes, err)
	}
	comments, err := m.CountCommentsForPost(post.ID)
	if err != nil || comments != 0 {
		t.Errorf("got %d orphaned comments (err %v), want 0", comments, err)
	}
}

func TestGetLikedPostIDs(t *testing.T) {
	m := newTestManager(t)
	alice := mustCreateUser(t, m, "alice")
	first := mustCreatePost(t, m, alice.ID, "one")
	second := mustCreatePost(t, m, alice.ID, "two")

	if err := m.CreateLike(alice.ID, second.ID); err != nil {
		t.Fatalf("liking: %v", err)
	}

	liked, err := m.GetLikedPostIDs(alice.ID, []uint{first.ID, second.ID})
	if err != nil {
		t.Fatalf("looking up likes: %v", err)
	}
	if liked[first.ID] || !liked[second.ID] {
		t.Errorf("got %v, want only post %d liked", liked, second.ID)
	}
}
