package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var longContent = strings.Repeat("a good paragraph. ", 20)

func TestGeneratorFirstModelWins(t *testing.T) {
	var calls []string
	g := NewGenerator([]string{"m1", "m2", "m3"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		calls = append(calls, model)
		return longContent, nil
	})

	result, err := g.GenerateArticle(context.Background(), "title", "", nil)
	require.NoError(t, err)
	require.Equal(t, "m1", result.Model)
	require.Equal(t, []string{"m1"}, calls)
}

func TestGeneratorFallsBackInOrder(t *testing.T) {
	var calls []string
	g := NewGenerator([]string{"m1", "m2", "m3"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		calls = append(calls, model)
		if model != "m3" {
			return "", errors.New("boom")
		}
		return longContent, nil
	})

	result, err := g.GenerateArticle(context.Background(), "title", "tech", []string{"go"})
	require.NoError(t, err)
	require.Equal(t, "m3", result.Model)
	require.Equal(t, []string{"m1", "m2", "m3"}, calls)
}

func TestGeneratorExhaustionClassifiesLastError(t *testing.T) {
	g := NewGenerator([]string{"m1", "m2"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		return "", errors.New("you exceeded your current quota")
	})

	_, err := g.GenerateArticle(context.Background(), "title", "", nil)
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, KindThrottled, provErr.Kind)
}

func TestGeneratorConfigErrorKind(t *testing.T) {
	g := NewGenerator([]string{"m1"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		return "", errors.New("invalid API key provided")
	})

	_, err := g.GenerateArticle(context.Background(), "title", "", nil)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, KindConfig, provErr.Kind)
}

func TestGeneratorShortContentFailsQuality(t *testing.T) {
	var calls int
	g := NewGenerator([]string{"m1", "m2"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		calls++
		return "too short", nil
	})

	_, err := g.GenerateArticle(context.Background(), "title", "", nil)
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, KindQuality, provErr.Kind)
	// 质量不达标不触发降级
	require.Equal(t, 1, calls)
}

func TestGeneratorEmptyResponseTriggersFallback(t *testing.T) {
	var calls []string
	g := NewGenerator([]string{"m1", "m2"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		calls = append(calls, model)
		if model == "m1" {
			return "   ", nil
		}
		return longContent, nil
	})

	result, err := g.GenerateArticle(context.Background(), "title", "", nil)
	require.NoError(t, err)
	require.Equal(t, "m2", result.Model)
	require.Equal(t, []string{"m1", "m2"}, calls)
}

func TestImproveShortResultAccepted(t *testing.T) {
	g := NewGenerator([]string{"m1"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		return "A short, punchy version.", nil
	})

	// 润色结果不受生成长度下限约束
	result, err := g.ImproveArticle(context.Background(), longContent, ImproveModeSimplify)
	require.NoError(t, err)
	require.Equal(t, "A short, punchy version.", result.Content)
}

func TestImproveUnknownModeRejected(t *testing.T) {
	g := NewGenerator([]string{"m1"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		return longContent, nil
	})

	_, err := g.ImproveArticle(context.Background(), "content", "rewrite-everything")
	require.Error(t, err)
}

func TestImprovePromptCarriesMode(t *testing.T) {
	var gotPrompt string
	g := NewGenerator([]string{"m1"}, time.Second, func(ctx context.Context, model, prompt string) (string, error) {
		gotPrompt = prompt
		return longContent, nil
	})

	_, err := g.ImproveArticle(context.Background(), "my draft", ImproveModeSimplify)
	require.NoError(t, err)
	require.Contains(t, gotPrompt, "Simplify")
	require.Contains(t, gotPrompt, "my draft")
}
