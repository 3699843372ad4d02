// Package server is the HTTP boundary: it extracts the viewer identity,
// dispatches to the services, and maps tagged failures to status codes.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"microblog/feeds"
	"microblog/monitoring/middleware"
	"microblog/posts"
	"microblog/ratelimit"
	"microblog/social"
	"microblog/users"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	feeds   *feeds.Service
	social  *social.Service
	posts   *posts.Service
	users   *users.Service
	limiter *ratelimit.Limiter
}

// NewServer wires the service layer behind the routes. limiter may be nil
// when no redis instance is configured.
func NewServer(
	feedsService *feeds.Service,
	socialService *social.Service,
	postsService *posts.Service,
	usersService *users.Service,
	limiter *ratelimit.Limiter,
) *Server {
	return &Server{
		feeds:   feedsService,
		social:  socialService,
		posts:   postsService,
		users:   usersService,
		limiter: limiter,
	}
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	// Identity
	router.HandleFunc("/users", s.register).Methods("POST")
	router.HandleFunc("/users/profile", s.updateProfile).Methods("PUT")

	// Feeds
	router.HandleFunc("/users/posts", s.globalFeed).Methods("GET")
	router.HandleFunc("/users/posts/following", s.followingFeed).Methods("GET")
	router.HandleFunc("/users/timeline/following", s.followingTimeline).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/posts", s.userTimeline).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/info", s.userInfo).Methods("GET")

	// Social graph
	router.HandleFunc("/users/{id:[0-9]+}/followers", s.listFollowers).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/following", s.listFollowing).Methods("GET")
	router.HandleFunc("/users/following", s.throttled(s.follow)).Methods("POST")
	router.HandleFunc("/users/following/{id:[0-9]+}", s.unfollow).Methods("DELETE")
	router.HandleFunc("/users/likes", s.throttled(s.like)).Methods("POST")
	router.HandleFunc("/users/likes/{id:[0-9]+}", s.unlike).Methods("DELETE")

	// Post lifecycle
	router.HandleFunc("/posts", s.throttled(s.createPost)).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}", s.editPost).Methods("PUT")
	router.HandleFunc("/posts/{id:[0-9]+}", s.deletePost).Methods("DELETE")

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return middleware.NewServerMiddleware(router)
}

func (s *Server) Run(addr string) {
	err := http.ListenAndServe(addr, s.Handler())
	if errors.Is(err, http.ErrServerClosed) {
		fmt.Printf("server closed\n")
	} else if err != nil {
		fmt.Printf("error starting server: %s\n", err)
		os.Exit(1)
	}
}

// throttled keys the write-path rate limiter by viewer, falling back to the
// remote address for anonymous callers.
func (s *Server) throttled(next http.HandlerFunc) http.HandlerFunc {
	return s.limiter.Middleware(func(r *http.Request) string {
		if viewer := viewerID(r); viewer != feeds.Anonymous {
			return fmt.Sprintf("user:%d", viewer)
		}
		return "addr:" + r.RemoteAddr
	}, next)
}
