package server

import (
	"errors"
	"net/http"
	"strconv"

	"microblog/feeds"
	"microblog/storage"
	"microblog/utils"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// ViewerHeader carries the authenticated user id, set by the upstream
// authenticator. Absent header means anonymous.
const ViewerHeader = "X-User-ID"

func viewerID(r *http.Request) uint {
	value := r.Header.Get(ViewerHeader)
	if value == "" {
		return feeds.Anonymous
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return feeds.Anonymous
	}
	return uint(id)
}

// requireViewer rejects anonymous requests on endpoints that act on behalf of
// a user.
func requireViewer(w http.ResponseWriter, r *http.Request) (uint, bool) {
	viewer := viewerID(r)
	if viewer == feeds.Anonymous {
		sendError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return viewer, true
}

func pathID(r *http.Request) uint {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id)
}

// pageParam parses ?page=; malformed or missing values fall back to page 1,
// matching the paginator's clamping behavior.
func pageParam(r *http.Request) int {
	return utils.IntFromString(r.URL.Query().Get("page"), 1)
}

func sendJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(utils.ToJson(value))
}

func sendError(w http.ResponseWriter, errorCode int, message string) {
	log.Info(message)
	sendJson(w, errorCode, map[string]string{"error": message})
}

// sendServiceError maps the failure taxonomy onto status codes. Anything
// outside the taxonomy is an unmodeled fault.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sendError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrConflict):
		sendError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrForbidden):
		sendError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrValidation):
		sendError(w, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("Internal error: %v", err)
		sendError(w, http.StatusInternalServerError, "internal server error")
	}
}
