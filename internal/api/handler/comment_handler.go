package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// CreateComment 创建评论，支持匿名
func (s *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	var authorID *uint64
	if userID := c.GetUint64("user_id"); userID != 0 {
		authorID = &userID
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), req.PostID, authorID, req.AuthorName, req.AuthorEmail, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// ListComments 文章评论列表
func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}
	viewerID := c.GetUint64("user_id")
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), viewerID, postID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// ListPending 作者的待审核评论队列
func (s *CommentHandler) ListPending(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}

	comments, err := s.commentSvc.ListPendingComments(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// ModerateComment 审核评论
func (s *CommentHandler) ModerateComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	commentID, ok := pathUint64(c, "comment_id")
	if !ok {
		return
	}

	var req dto.ModerateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.commentSvc.ModerateComment(c.Request.Context(), userID, commentID, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteComment 删除评论
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	commentID, ok := pathUint64(c, "comment_id")
	if !ok {
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
