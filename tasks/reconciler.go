package tasks

import (
	"time"

	"microblog/monitoring"
	"microblog/storage"

	log "github.com/sirupsen/logrus"
)

// Reconciler periodically recomputes every post's like count from the likes
// table. Writes already recount on every mutation; this repairs drift from
// edges touched outside the service.
type Reconciler struct {
	storage  *storage.Manager
	interval time.Duration
}

func NewReconciler(storageManager *storage.Manager, interval time.Duration) *Reconciler {
	return &Reconciler{
		storage:  storageManager,
		interval: interval,
	}
}

func (r *Reconciler) Run() {
	for {
		r.reconcile()
		time.Sleep(r.interval)
	}
}

func (r *Reconciler) reconcile() {
	postIDs, err := r.storage.GetPostIDs()
	if err != nil {
		log.Errorf("Error listing posts for reconciliation: %v", err)
		return
	}

	repaired := 0
	for _, postID := range postIDs {
		post, err := r.storage.GetPost(postID)
		if err != nil {
			continue // deleted since listing
		}
		count, err := r.storage.RecountLikes(postID)
		if err != nil {
			log.Errorf("Error recounting likes for post %d: %v", postID, err)
			continue
		}
		if count != post.LikeCount {
			repaired++
			monitoring.LikeCountRepairs.Inc()
		}
	}
	if repaired > 0 {
		log.Infof("Repaired like count on %d posts", repaired)
	}
}
