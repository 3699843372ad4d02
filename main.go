package main

import (
	"math"

	"microblog/config"
	"microblog/feeds"
	"microblog/posts"
	"microblog/ratelimit"
	"microblog/server"
	"microblog/social"
	"microblog/storage"
	"microblog/tasks"
	"microblog/users"
	"microblog/utils"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func runBackgroundTasks(storageManager *storage.Manager, cfg *config.Config) {
	// Like-count drift repair
	go utils.Recoverer(math.MaxInt, 1, func() {
		reconciler := tasks.NewReconciler(storageManager, cfg.ReconcileInterval)
		reconciler.Run()
	})
}

func main() {
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()

	db, err := cfg.OpenDB()
	if err != nil {
		panic(err)
	}
	if err := storage.Migrate(db); err != nil {
		panic(err)
	}
	storageManager := storage.NewManager(db)

	var limiter *ratelimit.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: "", // no password set
			DB:       0,  // use default DB
		})
		limiter = ratelimit.New(client, int64(cfg.RateLimit), cfg.RateLimitWindow)
	}

	feedsService := feeds.NewService(storageManager)
	socialService := social.NewService(storageManager)
	postsService := posts.NewService(storageManager, feedsService)
	usersService := users.NewService(storageManager)

	s := server.NewServer(feedsService, socialService, postsService, usersService, limiter)

	// Run background tasks
	runBackgroundTasks(storageManager, cfg)

	log.Infof("Listening on %s", cfg.ServerAddr)
	s.Run(cfg.ServerAddr)
}
