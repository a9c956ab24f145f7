package llm

import (
	"Inkwell/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

// InitLLM 初始化底层模型客户端并构建默认生成器
func InitLLM() (*Generator, error) {
	cfg := config.Cfg.LLM

	client, err := openai.New(
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}

	llmClient = client

	timeout := time.Duration(cfg.AttemptTimeout) * time.Second
	return NewGenerator(cfg.Models, timeout, fetchModel), nil
}

// fetchModel 对指定模型发起一次补全请求
func fetchModel(ctx context.Context, model string, prompt string) (string, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}
