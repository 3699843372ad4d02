package server

import (
	"encoding/json"
	"net/http"

	"microblog/monitoring"
)

type postBody struct {
	Text string `json:"text"`
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var requestData postBody
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	result, err := s.posts.Create(viewer, requestData.Text)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	monitoring.PostsCreated.Inc()

	sendJson(w, http.StatusCreated, result)
}

func (s *Server) editPost(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	var requestData postBody
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		sendError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	view, err := s.posts.Edit(viewer, pathID(r), requestData.Text)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, view)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	if err := s.posts.Delete(viewer, pathID(r)); err != nil {
		sendServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
