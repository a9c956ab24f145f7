package job

import (
	"Inkwell/internal/service"
	"context"
	log "log/slog"
	"time"
)

// ScheduledPublishJob 定时发布到期的草稿
type ScheduledPublishJob struct {
	postService service.PostService
}

func NewScheduledPublishJob(postService service.PostService) *ScheduledPublishJob {
	return &ScheduledPublishJob{postService: postService}
}

func (s *ScheduledPublishJob) Run() {
	ctx := context.Background()

	published, err := s.postService.PublishDueScheduled(ctx, time.Now())
	if err != nil {
		log.Error("scheduled publish job failed", "err", err)
		return
	}
	if published > 0 {
		log.Info("scheduled publish job finished", "published_count", published)
	}
}
