package server

import "net/http"

// globalFeed serves every post; with ?page= it serves fixed pages of 10 and
// reports the total page count.
func (s *Server) globalFeed(w http.ResponseWriter, r *http.Request) {
	viewer := viewerID(r)

	if r.URL.Query().Has("page") {
		page, err := s.feeds.GlobalFeedPage(viewer, pageParam(r))
		if err != nil {
			sendServiceError(w, err)
			return
		}
		sendJson(w, http.StatusOK, page)
		return
	}

	feed, err := s.feeds.GlobalFeed(viewer)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, feed)
}

func (s *Server) followingFeed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	feed, err := s.feeds.FollowingFeed(viewer)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, feed)
}

func (s *Server) followingTimeline(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireViewer(w, r)
	if !ok {
		return
	}

	page, err := s.feeds.FollowingTimeline(viewer, pageParam(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, page)
}

func (s *Server) userTimeline(w http.ResponseWriter, r *http.Request) {
	feed, err := s.feeds.UserTimeline(pathID(r), viewerID(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, feed)
}

func (s *Server) userInfo(w http.ResponseWriter, r *http.Request) {
	profile, err := s.feeds.UserInfo(pathID(r), viewerID(r))
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJson(w, http.StatusOK, profile)
}
