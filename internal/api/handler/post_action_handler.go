package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

// ToggleLike 切换点赞状态
func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}

	liked, err := s.actionSvc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"liked": liked})
}

// GetLikeState 当前用户的点赞状态与总数
func (s *PostActionHandler) GetLikeState(c *gin.Context) {
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}
	userID := c.GetUint64("user_id")

	liked := false
	if userID != 0 {
		var err error
		liked, err = s.actionSvc.GetLikeStatus(c.Request.Context(), userID, postID)
		if err != nil {
			response.Error(c, err)
			return
		}
	}

	count, err := s.actionSvc.GetLikeCount(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]interface{}{
		"liked": liked,
		"count": count,
	})
}

// TrackView 记录一次浏览
func (s *PostActionHandler) TrackView(c *gin.Context) {
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}
	viewerID := c.GetUint64("user_id")

	if err := s.actionSvc.TrackPostView(c.Request.Context(), viewerID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetStats 文章按天统计，仅作者可见
func (s *PostActionHandler) GetStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}

	fromDate := c.Query("from")
	toDate := c.Query("to")

	stats, err := s.actionSvc.GetPostStats(c.Request.Context(), userID, postID, fromDate, toDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// GetAuthorStats 当前用户名下全部文章的按天统计
func (s *PostActionHandler) GetAuthorStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	fromDate := c.Query("from")
	toDate := c.Query("to")

	stats, err := s.actionSvc.GetAuthorStats(c.Request.Context(), userID, fromDate, toDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
