package llm

import (
	"fmt"
	"strings"
)

// 润色模式
const (
	ImproveModeEnhance  = "enhance"
	ImproveModeExpand   = "expand"
	ImproveModeSimplify = "simplify"
)

func buildGeneratePrompt(title string, category string, tags []string) string {
	var b strings.Builder
	b.WriteString("You are a professional blog writer. Write a complete, well-structured blog post in Markdown.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", title)
	if category != "" {
		fmt.Fprintf(&b, "Category: %s\n", category)
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(tags, ", "))
	}
	b.WriteString("\nRequirements:\n")
	b.WriteString("- Start with a short engaging introduction.\n")
	b.WriteString("- Use section headings to organize the body.\n")
	b.WriteString("- End with a concise conclusion.\n")
	b.WriteString("- Do not repeat the title as a heading.\n")
	return b.String()
}

func buildImprovePrompt(content string, mode string) (string, error) {
	var instruction string
	switch mode {
	case ImproveModeEnhance:
		instruction = "Improve the writing quality, clarity and flow of the following blog post while keeping its meaning and structure."
	case ImproveModeExpand:
		instruction = "Expand the following blog post with more detail, examples and depth while keeping its tone."
	case ImproveModeSimplify:
		instruction = "Simplify the following blog post so it is easier to read, keeping the key points intact."
	default:
		return "", fmt.Errorf("unknown improve mode: %s", mode)
	}
	return fmt.Sprintf("%s Return only the improved Markdown content.\n\n%s", instruction, content), nil
}
