package kafka

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// ViewsHandler 消费浏览事件，落库总阅读量与按天统计
type ViewsHandler struct {
	postRepo repository.PostRepo
	statRepo repository.DailyStatRepo
}

func NewViewsHandler(postRepo repository.PostRepo, statRepo repository.DailyStatRepo) *ViewsHandler {
	return &ViewsHandler{
		postRepo: postRepo,
		statRepo: statRepo,
	}
}

func (s *ViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer setup")
	return nil
}

func (s *ViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer cleanup")
	return nil
}

func (s *ViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToViewEvent(msg)
	if err != nil {
		// 无法解析的消息跳过，重试无意义
		return nil
	}
	if event.PostID == 0 {
		return nil
	}

	if err = s.postRepo.IncrementViewCount(ctx, event.PostID); err != nil {
		return errors.Wrap(err, "increment view count")
	}

	statDate := time.UnixMilli(event.ViewedAt).UTC().Format(consts.StatDateLayout)
	if err = s.statRepo.IncrementView(ctx, event.PostID, statDate); err != nil {
		return errors.Wrap(err, "increment daily stat")
	}
	return nil
}
