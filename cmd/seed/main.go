// Seeds a database with fake users, posts, likes and follows for local
// development. Defaults to a local sqlite file; pass -postgres to seed the
// configured postgres instance instead.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"microblog/config"
	"microblog/storage"
	"microblog/storage/models"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	var (
		usePostgres = flag.Bool("postgres", false, "seed the configured postgres database")
		sqlitePath  = flag.String("sqlite", "microblog.db", "sqlite file to seed")
		numUsers    = flag.Int("users", 25, "number of users")
		numPosts    = flag.Int("posts", 200, "number of posts")
		numLikes    = flag.Int("likes", 400, "number of like attempts")
		numFollows  = flag.Int("follows", 80, "number of follow attempts")
	)
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	var db *gorm.DB
	var err error
	if *usePostgres {
		db, err = config.Load().OpenDB()
	} else {
		db, err = gorm.Open(sqlite.Open(*sqlitePath), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	manager := storage.NewManager(db)

	users := make([]models.User, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		user := models.User{
			Username:     fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:        gofakeit.Email(),
			FirstName:    gofakeit.FirstName(),
			LastName:     gofakeit.LastName(),
			Bio:          gofakeit.Sentence(8),
			ProfileImage: gofakeit.ImageURL(400, 400),
		}
		if err := manager.CreateUser(&user); err != nil {
			log.Errorf("Error creating user: %v", err)
			continue
		}
		users = append(users, user)
	}

	postIDs := make([]uint, 0, *numPosts)
	for i := 0; i < *numPosts; i++ {
		author := users[rand.Intn(len(users))]
		post := models.Post{
			UserID: author.ID,
			Text:   gofakeit.SentenceSimple(),
		}
		if err := manager.CreatePost(&post); err != nil {
			log.Errorf("Error creating post: %v", err)
			continue
		}
		postIDs = append(postIDs, post.ID)
	}

	// Duplicate attempts just hit the unique indexes and are skipped.
	liked := 0
	for i := 0; i < *numLikes; i++ {
		user := users[rand.Intn(len(users))]
		postID := postIDs[rand.Intn(len(postIDs))]
		if err := manager.CreateLike(user.ID, postID); err != nil {
			continue
		}
		if _, err := manager.RecountLikes(postID); err != nil {
			log.Errorf("Error recounting likes: %v", err)
		}
		liked++
	}

	followed := 0
	for i := 0; i < *numFollows; i++ {
		follower := users[rand.Intn(len(users))]
		followee := users[rand.Intn(len(users))]
		if follower.ID == followee.ID {
			continue
		}
		if err := manager.CreateFollow(follower.ID, followee.ID); err != nil {
			continue
		}
		followed++
	}

	log.Infof(
		"Seeded %d users, %d posts, %d likes, %d follows",
		len(users), len(postIDs), liked, followed,
	)
}
