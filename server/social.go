package server

import (
	"encoding/json"
	"net/http"

	"microblog/feeds"
	"microblog/monitoring"
	"microblog/storage/models"
)

func (s *Server) like(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var requestData struct {
		PostID uint `json:"post_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	likeNumber, err := s.social.Like(viewer, requestData.PostID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	monitoring.LikesCreated.Inc()

	sendJson(w, http.StatusCreated, map[string]any{
		"message":    "Post liked successfully.",
		"likeNumber": likeNumber,
	})
}

func (s *Server) unlike(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	likeNumber, err := s.social.Unlike(viewer, pathID(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJson(w, http.StatusOK, map[string]any{
		"message":    "Post unliked successfully.",
		"likeNumber": likeNumber,
	})
}

func (s *Server) follow(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var requestData struct {
		UserID uint `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := s.social.Follow(viewer, requestData.UserID); err != nil {
		sendServiceError(w, err)
		return
	}
	monitoring.FollowsCreated.Inc()

	sendJson(w, http.StatusCreated, map[string]string{
		"message": "User followed successfully.",
	})
}

func (s *Server) unfollow(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	removed, err := s.social.Unfollow(viewer, pathID(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}

	message := "User unfollowed successfully."
	if !removed {
		message = "User was not followed."
	}
	sendJson(w, http.StatusOK, map[string]string{"message": message})
}

func (s *Server) listFollowers(w http.ResponseWriter, r *http.Request) {
	followers, err := s.social.Followers(pathID(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, summarize(followers))
}

func (s *Server) listFollowing(w http.ResponseWriter, r *http.Request) {
	following, err := s.social.Following(pathID(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, summarize(following))
}

func summarize(list []models.User) []feeds.UserSummary {
	summaries := make([]feeds.UserSummary, len(list))
	for i := range list {
		summaries[i] = feeds.SummarizeUser(&list[i])
	}
	return summaries
}
