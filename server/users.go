package server

import (
	"encoding/json"
	"net/http"

	"microblog/feeds"
	"microblog/users"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Bio      string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := s.users.Register(
		requestData.Username, requestData.Email, requestData.Name, requestData.Bio,
	)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusCreated, feeds.SummarizeUser(user))
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var requestData struct {
		Bio           string  `json:"bio"`
		Email         string  `json:"email"`
		ProfileImage  *string `json:"profile_image"`
		ProfileBanner *string `json:"profile_banner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := s.users.UpdateProfile(viewer, users.ProfileUpdate{
		Bio:           requestData.Bio,
		Email:         requestData.Email,
		ProfileImage:  requestData.ProfileImage,
		ProfileBanner: requestData.ProfileBanner,
	})
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJson(w, http.StatusOK, map[string]any{
		"bio":            user.Bio,
		"email":          user.Email,
		"profile_image":  user.ProfileImage,
		"profile_banner": user.ProfileBanner,
	})
}
