package services

import (
	"sync"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"gorm.io/gorm/clause"
)

var (
	postViewQueue   []models.PostView
	postViewQueueMu sync.Mutex
)

// AddPostView only queues; the queue is drained in batches by FlushPostViews
// so a burst of reads never turns into a burst of writes.
func AddPostView(post models.Post, account uint) {
	postViewQueueMu.Lock()
	defer postViewQueueMu.Unlock()
	postViewQueue = append(postViewQueue, models.PostView{
		AccountID: account,
		PostID:    post.ID,
	})
}

func FlushPostViews() {
	postViewQueueMu.Lock()
	if len(postViewQueue) == 0 {
		postViewQueueMu.Unlock()
		return
	}
	workingQueue := postViewQueue
	postViewQueue = nil
	postViewQueueMu.Unlock()

	updateRequiredPost := make(map[uint]bool)
	for _, item := range workingQueue {
		updateRequiredPost[item.PostID] = true
	}

	// Repeat views collapse onto the composite key instead of erroring out.
	_ = database.C.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(workingQueue, 1000).Error
	for k := range updateRequiredPost {
		var count int64
		if err := database.C.Model(&models.PostView{}).Where("post_id = ?", k).Count(&count).Error; err != nil {
			continue
		}
		database.C.Model(&models.Post{}).Where("id = ?", k).Update("total_views", count)
	}
}
