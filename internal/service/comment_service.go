package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

const (
	MaxCommentLength   = 2000
	moderationPostScan = 500
)

type CommentService interface {
	CreateComment(ctx context.Context, postID uint64, authorID *uint64, authorName, authorEmail, content string) (*model.Comment, error)
	ListComments(ctx context.Context, viewerID, postID uint64, limit, offset int) ([]*model.Comment, error)
	ListPendingComments(ctx context.Context, userID uint64, limit, offset int) ([]*model.Comment, error)
	ModerateComment(ctx context.Context, userID, commentID uint64, status string) error
	DeleteComment(ctx context.Context, userID, commentID uint64) error
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment 创建评论，进入待审核状态。
// 登录用户取账号名和邮箱，匿名用户取传入昵称，缺省为 Anonymous。
func (s *CommentServiceImpl) CreateComment(ctx context.Context, postID uint64, authorID *uint64, authorName, authorEmail, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > MaxCommentLength {
		return nil, ErrParamInvalid
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Status != consts.PostStatusPublished {
		return nil, ErrPostNotPublished
	}

	name := strings.TrimSpace(authorName)
	email := strings.TrimSpace(authorEmail)
	if authorID != nil {
		user, userErr := s.userRepo.GetUserByID(ctx, *authorID)
		if userErr != nil {
			return nil, userErr
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		name = user.Username
		email = user.Email
	}
	if name == "" {
		name = consts.AnonymousName
	}

	comment := &model.Comment{
		PostID:     postID,
		AuthorID:   authorID,
		AuthorName: name,
		Content:    content,
		Status:     consts.CommentStatusPending,
	}
	if email != "" {
		comment.AuthorEmail = &email
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments 获取文章评论。
// 文章作者可见全部状态，其他人只能看到已通过的。
func (s *CommentServiceImpl) ListComments(ctx context.Context, viewerID, postID uint64, limit, offset int) ([]*model.Comment, error) {
	limit, offset = normalizePage(limit, offset)

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if viewerID != 0 && viewerID == post.AuthorID {
		return s.commentRepo.ListByPost(ctx, postID, limit, offset)
	}
	return s.commentRepo.ListApprovedByPost(ctx, postID, limit, offset)
}

// ListPendingComments 作者的待审核队列
func (s *CommentServiceImpl) ListPendingComments(ctx context.Context, userID uint64, limit, offset int) ([]*model.Comment, error) {
	limit, offset = normalizePage(limit, offset)

	posts, err := s.postRepo.ListByAuthor(ctx, userID, "", moderationPostScan, 0)
	if err != nil {
		return nil, err
	}
	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}
	return s.commentRepo.ListPendingByPosts(ctx, postIDs, limit, offset)
}

// ModerateComment 审核评论，仅文章作者可操作。
// 评论数只统计已通过的评论，状态迁移时同步增减。
func (s *CommentServiceImpl) ModerateComment(ctx context.Context, userID, commentID uint64, status string) error {
	if status != consts.CommentStatusApproved && status != consts.CommentStatusRejected {
		return ErrParamInvalid
	}

	comment, post, err := s.commentWithPost(ctx, commentID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrCommentForbidden
	}
	if comment.Status == status {
		return nil
	}

	if err = s.commentRepo.UpdateStatus(ctx, commentID, status); err != nil {
		return err
	}

	delta := 0
	if status == consts.CommentStatusApproved {
		delta = 1
	} else if comment.Status == consts.CommentStatusApproved {
		delta = -1
	}
	if delta != 0 {
		if err = s.postRepo.AdjustCommentCount(ctx, comment.PostID, delta); err != nil {
			log.ErrorContext(ctx, "comment count adjust failed", "postID", comment.PostID, "err", err)
		}
	}
	return nil
}

// DeleteComment 删除评论，评论作者或文章作者可操作
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, post, err := s.commentWithPost(ctx, commentID)
	if err != nil {
		return err
	}

	isCommentAuthor := comment.AuthorID != nil && *comment.AuthorID == userID
	if !isCommentAuthor && post.AuthorID != userID {
		return ErrCommentForbidden
	}

	if err = s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	if comment.Status == consts.CommentStatusApproved {
		if err = s.postRepo.AdjustCommentCount(ctx, comment.PostID, -1); err != nil {
			log.ErrorContext(ctx, "comment count adjust failed", "postID", comment.PostID, "err", err)
		}
	}
	return nil
}

func (s *CommentServiceImpl) commentWithPost(ctx context.Context, commentID uint64) (*model.Comment, *model.Post, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, nil, err
	}
	if comment == nil {
		return nil, nil, ErrCommentNotFound
	}

	post, err := s.postRepo.GetPostByID(ctx, comment.PostID)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrPostNotFound
	}
	return comment, post, nil
}
