package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) CommentService {
	return NewCommentService(repository.NewCommentRepo(db), repository.NewPostRepo(db), repository.NewUserRepo(db))
}

func seedPublishedPost(t *testing.T, db *gorm.DB, authorID uint64) *model.Post {
	post := &model.Post{
		AuthorID: authorID,
		Title:    "post",
		Content:  "content",
		Status:   consts.PostStatusPublished,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestCreateCommentAnonymousNameFallback(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	post := seedPublishedPost(t, db, 1)

	comment, err := svc.CreateComment(ctx, post.ID, nil, "  ", "", "nice post")
	require.NoError(t, err)
	require.Nil(t, comment.AuthorID)
	require.Equal(t, consts.AnonymousName, comment.AuthorName)
	require.Equal(t, consts.CommentStatusPending, comment.Status)
}

func TestCreateCommentAnonymousKeepsProvidedName(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	post := seedPublishedPost(t, db, 1)

	comment, err := svc.CreateComment(ctx, post.ID, nil, "visitor42", "v42@example.com", "hello")
	require.NoError(t, err)
	require.Equal(t, "visitor42", comment.AuthorName)
	require.NotNil(t, comment.AuthorEmail)
	require.Equal(t, "v42@example.com", *comment.AuthorEmail)
}

func TestCreateCommentAuthenticatedUsesAccountName(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	post := seedPublishedPost(t, db, alice.ID)

	comment, err := svc.CreateComment(ctx, post.ID, &alice.ID, "ignored-name", "ignored@example.com", "hello")
	require.NoError(t, err)
	require.NotNil(t, comment.AuthorID)
	require.Equal(t, alice.ID, *comment.AuthorID)
	require.Equal(t, "alice", comment.AuthorName)
	// 登录用户忽略传入的昵称和邮箱
	require.NotNil(t, comment.AuthorEmail)
	require.Equal(t, "alice@example.com", *comment.AuthorEmail)
}

func TestCreateCommentRequiresPublishedPost(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	draft := &model.Post{AuthorID: 1, Title: "d", Content: "c", Status: consts.PostStatusDraft}
	require.NoError(t, db.Create(draft).Error)

	_, err := svc.CreateComment(ctx, draft.ID, nil, "", "", "hello")
	require.ErrorIs(t, err, ErrPostNotPublished)

	_, err = svc.CreateComment(ctx, 9999, nil, "", "", "hello")
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestModerationVisibility(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	post := seedPublishedPost(t, db, author.ID)

	comment, err := svc.CreateComment(ctx, post.ID, nil, "visitor", "", "pending comment")
	require.NoError(t, err)

	// 路人只看到已通过的
	visible, err := svc.ListComments(ctx, 0, post.ID, 20, 0)
	require.NoError(t, err)
	require.Empty(t, visible)

	// 作者看到全部
	all, err := svc.ListComments(ctx, author.ID, post.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// 审核通过后对外可见，计数加一
	require.NoError(t, svc.ModerateComment(ctx, author.ID, comment.ID, consts.CommentStatusApproved))

	visible, err = svc.ListComments(ctx, 0, post.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, visible, 1)

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 1, got.CommentsCount)

	// 改判拒绝后计数回退
	require.NoError(t, svc.ModerateComment(ctx, author.ID, comment.ID, consts.CommentStatusRejected))
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, 0, got.CommentsCount)
}

func TestModerateCommentOnlyPostAuthor(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	stranger := seedUser(t, db, "stranger")
	post := seedPublishedPost(t, db, author.ID)

	comment, err := svc.CreateComment(ctx, post.ID, nil, "visitor", "", "hello")
	require.NoError(t, err)

	err = svc.ModerateComment(ctx, stranger.ID, comment.ID, consts.CommentStatusApproved)
	require.ErrorIs(t, err, ErrCommentForbidden)
}

func TestDeleteCommentPermissions(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	stranger := seedUser(t, db, "stranger")
	post := seedPublishedPost(t, db, author.ID)

	comment, err := svc.CreateComment(ctx, post.ID, &commenter.ID, "", "", "mine")
	require.NoError(t, err)

	// 无关用户不能删
	err = svc.DeleteComment(ctx, stranger.ID, comment.ID)
	require.ErrorIs(t, err, ErrCommentForbidden)

	// 评论作者可删
	require.NoError(t, svc.DeleteComment(ctx, commenter.ID, comment.ID))

	// 文章作者可删他人评论
	another, err := svc.CreateComment(ctx, post.ID, &commenter.ID, "", "", "again")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComment(ctx, author.ID, another.ID))
}
