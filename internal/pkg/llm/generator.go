package llm

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"
)

// MinContentLength 低于该长度的生成结果视为质量不达标
const MinContentLength = 100

// CompleteFunc 对单个模型发起一次补全
type CompleteFunc func(ctx context.Context, model string, prompt string) (string, error)

// Generator 按顺序在候选模型间降级的文本生成器。
// 每个模型只尝试一次，第一个成功的结果即为最终结果。
type Generator struct {
	models         []string
	attemptTimeout time.Duration
	complete       CompleteFunc
}

// Result 一次生成的结果与归属模型
type Result struct {
	Content string
	Model   string
	Latency time.Duration
}

func NewGenerator(models []string, attemptTimeout time.Duration, complete CompleteFunc) *Generator {
	return &Generator{
		models:         models,
		attemptTimeout: attemptTimeout,
		complete:       complete,
	}
}

// GenerateArticle 按标题生成完整文章，低于长度下限视为质量不达标
func (g *Generator) GenerateArticle(ctx context.Context, title string, category string, tags []string) (*Result, error) {
	return g.run(ctx, buildGeneratePrompt(title, category, tags), MinContentLength)
}

// ImproveArticle 按指定模式润色已有内容。
// simplify 模式的合法结果可以很短，不做长度校验。
func (g *Generator) ImproveArticle(ctx context.Context, content string, mode string) (*Result, error) {
	prompt, err := buildImprovePrompt(content, mode)
	if err != nil {
		return nil, err
	}
	return g.run(ctx, prompt, 0)
}

func (g *Generator) run(ctx context.Context, prompt string, minLength int) (*Result, error) {
	if len(g.models) == 0 {
		return nil, &ProviderError{Kind: KindConfig, Err: errors.New("no models configured")}
	}

	start := time.Now()
	var lastErr error

	for _, model := range g.models {
		content, err := g.attempt(ctx, model, prompt)
		if err != nil {
			log.Warn("模型调用失败，尝试降级", "model", model, "err", err)
			lastErr = err
			continue
		}

		content = strings.TrimSpace(content)
		if minLength > 0 && len(content) < minLength {
			return nil, qualityError(len(content))
		}
		return &Result{
			Content: content,
			Model:   model,
			Latency: time.Since(start),
		}, nil
	}

	return nil, classify(lastErr)
}

func (g *Generator) attempt(ctx context.Context, model string, prompt string) (string, error) {
	attemptCtx := ctx
	if g.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, g.attemptTimeout)
		defer cancel()
	}

	content, err := g.complete(attemptCtx, model, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", errors.New("empty response from model " + model)
	}
	return content, nil
}
