package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/llm"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	genSvc service.GenerationService
}

func NewAIHandler(genSvc service.GenerationService) *AIHandler {
	return &AIHandler{genSvc: genSvc}
}

// GenerateArticle 按标题生成文章
func (s *AIHandler) GenerateArticle(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.GenerateArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.genSvc.GenerateArticle(c.Request.Context(), userID, req.Title, req.Category, req.Tags)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.GenerationResp{
		Content:   result.Content,
		Model:     result.Model,
		LatencyMs: result.Latency.Milliseconds(),
	})
}

// ImproveArticle 润色文章
func (s *AIHandler) ImproveArticle(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.ImproveArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Mode == "" {
		req.Mode = llm.ImproveModeEnhance
	}

	result, err := s.genSvc.ImproveArticle(c.Request.Context(), userID, req.Content, req.Mode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.GenerationResp{
		Content:   result.Content,
		Model:     result.Model,
		LatencyMs: result.Latency.Milliseconds(),
	})
}

// GetHistory 生成历史
func (s *AIHandler) GetHistory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := s.genSvc.GetHistory(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}
