package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// CreatePost 创建文章，可选择立即发布
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post := &model.Post{
		AuthorID:      userID,
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		CoverImageURL: req.CoverImageURL,
		Category:      req.Category,
		Tags:          req.Tags,
	}
	created, err := s.postSvc.CreatePost(c.Request.Context(), post, req.Publish)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostResp(created))
}

// GetPost 文章详情
func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}
	viewerID := c.GetUint64("user_id")

	post, err := s.postSvc.GetPostByID(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostResp(post))
}

// UpdatePost 更新文章
func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}

	var req dto.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.CoverImageURL != nil {
		updates["cover_image_url"] = *req.CoverImageURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		// map 更新不走 serializer，手动序列化
		tagsJSON, err := json.Marshal(*req.Tags)
		if err != nil {
			response.Error(c, err)
			return
		}
		updates["tags"] = string(tagsJSON)
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, updates); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeletePost 删除文章
func (s *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PublishPost 发布草稿
func (s *PostHandler) PublishPost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}

	post, err := s.postSvc.PublishPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostResp(post))
}

// SchedulePost 设置定时发布
func (s *PostHandler) SchedulePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	postID, ok := pathUint64(c, "post_id")
	if !ok {
		return
	}

	var req dto.SchedulePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.SchedulePost(c.Request.Context(), userID, postID, req.ScheduledAt); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListPublished 已发布文章列表
func (s *PostHandler) ListPublished(c *gin.Context) {
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}
	category := c.Query("category")

	posts, err := s.postSvc.ListPublished(c.Request.Context(), category, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostRespList(posts))
}

// ListByAuthor 指定作者的文章列表
func (s *PostHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := pathUint64(c, "user_id")
	if !ok {
		return
	}
	viewerID := c.GetUint64("user_id")
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}
	status := c.Query("status")

	posts, err := s.postSvc.ListByAuthor(c.Request.Context(), viewerID, authorID, status, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostRespList(posts))
}

// ListSelf 当前用户的文章列表，含草稿
func (s *PostHandler) ListSelf(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}
	status := c.Query("status")

	posts, err := s.postSvc.ListByAuthor(c.Request.Context(), userID, userID, status, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostRespList(posts))
}

// ListFeed 关注流
func (s *PostHandler) ListFeed(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}

	posts, err := s.postSvc.ListFeed(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostRespList(posts))
}

// SearchPost 全文检索
func (s *PostHandler) SearchPost(c *gin.Context) {
	keyword := c.Query("keyword")
	size, from, ok := getPagination(c)
	if !ok {
		return
	}

	posts, err := s.postSvc.SearchPosts(c.Request.Context(), keyword, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toPostRespList(posts))
}

func toPostResp(post *model.Post) *dto.PostResp {
	resp := &dto.PostResp{}
	_ = copier.Copy(resp, post)
	return resp
}

func toPostRespList(posts []*model.Post) []*dto.PostResp {
	resps := make([]*dto.PostResp, 0, len(posts))
	for _, post := range posts {
		resps = append(resps, toPostResp(post))
	}
	return resps
}
