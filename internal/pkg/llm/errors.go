package llm

import (
	"fmt"
	"strings"
)

// ErrorKind 供应商错误的结构化分类。
// 分类只发生在这一处适配层，上层不做错误文本匹配。
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindConfig
	KindThrottled
	KindQuality
)

// ProviderError 带分类的供应商错误
type ProviderError struct {
	Kind ErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// KindName 分类名，用于审计记录
func (e *ProviderError) KindName() string {
	switch e.Kind {
	case KindConfig:
		return "config"
	case KindThrottled:
		return "throttled"
	case KindQuality:
		return "quality"
	default:
		return "generic"
	}
}

// classify 将供应商返回的原始错误归类。
// 供应商 SDK 不暴露稳定的错误类型，只能依据报文内容判定。
func classify(err error) *ProviderError {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api key"):
		return &ProviderError{Kind: KindConfig, Err: err}
	case strings.Contains(msg, "quota"), strings.Contains(msg, "limit"):
		return &ProviderError{Kind: KindThrottled, Err: err}
	default:
		return &ProviderError{Kind: KindGeneric, Err: err}
	}
}

func qualityError(length int) *ProviderError {
	return &ProviderError{
		Kind: KindQuality,
		Err:  fmt.Errorf("generated content is too short or empty (%d chars)", length),
	}
}
