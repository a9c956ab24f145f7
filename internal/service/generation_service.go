package service

import (
	"Inkwell/internal/pkg/llm"
	"Inkwell/internal/pkg/mongo"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"
)

const (
	GenerationKindGenerate = "generate"
	GenerationKindImprove  = "improve"
)

type GenerationService interface {
	GenerateArticle(ctx context.Context, userID uint64, title, category string, tags []string) (*llm.Result, error)
	ImproveArticle(ctx context.Context, userID uint64, content, mode string) (*llm.Result, error)
	GetHistory(ctx context.Context, userID uint64, limit int) ([]*mongo.GenerationRecord, error)
}

type GenerationServiceImpl struct {
	generator *llm.Generator
	genRepo   mongo.GenerationRepo
}

func NewGenerationService(generator *llm.Generator, genRepo mongo.GenerationRepo) GenerationService {
	return &GenerationServiceImpl{
		generator: generator,
		genRepo:   genRepo,
	}
}

// GenerateArticle 按标题生成文章正文
func (s *GenerationServiceImpl) GenerateArticle(ctx context.Context, userID uint64, title, category string, tags []string) (*llm.Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrParamInvalid
	}

	result, err := s.generator.GenerateArticle(ctx, title, category, tags)
	s.audit(ctx, userID, GenerationKindGenerate, "", title, result, err)
	if err != nil {
		return nil, s.toServiceError(ctx, err)
	}
	return result, nil
}

// ImproveArticle 按指定模式润色正文
func (s *GenerationServiceImpl) ImproveArticle(ctx context.Context, userID uint64, content, mode string) (*llm.Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrParamInvalid
	}

	result, err := s.generator.ImproveArticle(ctx, content, mode)
	s.audit(ctx, userID, GenerationKindImprove, mode, "", result, err)
	if err != nil {
		return nil, s.toServiceError(ctx, err)
	}
	return result, nil
}

func (s *GenerationServiceImpl) GetHistory(ctx context.Context, userID uint64, limit int) ([]*mongo.GenerationRecord, error) {
	return s.genRepo.GetHistory(ctx, userID, limit)
}

// audit 生成结果落审计记录，失败只记日志
func (s *GenerationServiceImpl) audit(ctx context.Context, userID uint64, kind, mode, title string, result *llm.Result, genErr error) {
	record := &mongo.GenerationRecord{
		UserID:    userID,
		Kind:      kind,
		Mode:      mode,
		Title:     title,
		Success:   genErr == nil,
		CreatedAt: time.Now(),
	}
	if result != nil {
		record.Model = result.Model
		record.LatencyMs = result.Latency.Milliseconds()
	}
	var provErr *llm.ProviderError
	if errors.As(genErr, &provErr) {
		record.ErrorKind = provErr.KindName()
	}

	if err := s.genRepo.SaveRecord(ctx, record); err != nil {
		log.WarnContext(ctx, "generation audit write failed", "userID", userID, "err", err)
	}
}

// toServiceError 将结构化的供应商错误映射为用户可见错误。
// 未分类错误原样透出报文。
func (s *GenerationServiceImpl) toServiceError(ctx context.Context, err error) error {
	var provErr *llm.ProviderError
	if !errors.As(err, &provErr) {
		return err
	}

	switch provErr.Kind {
	case llm.KindConfig:
		log.ErrorContext(ctx, "llm provider misconfigured", "err", provErr.Err)
		return ErrAIConfig
	case llm.KindThrottled:
		log.WarnContext(ctx, "llm provider throttled", "err", provErr.Err)
		return ErrAIThrottled
	default:
		return provErr.Err
	}
}
