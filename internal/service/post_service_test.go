package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/es"
	"Inkwell/internal/repository"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakePostIndex 内存版搜索索引
type fakePostIndex struct {
	docs map[uint64]*es.PostDoc
}

func newFakePostIndex() *fakePostIndex {
	return &fakePostIndex{docs: make(map[uint64]*es.PostDoc)}
}

func (f *fakePostIndex) SearchPosts(ctx context.Context, keyword string, from, size int) ([]*es.PostDoc, error) {
	docs := make([]*es.PostDoc, 0, len(f.docs))
	for _, doc := range f.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (f *fakePostIndex) IndexPost(ctx context.Context, doc *es.PostDoc) error {
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakePostIndex) DeletePost(ctx context.Context, id uint64) error {
	delete(f.docs, id)
	return nil
}

func newPostService(db *gorm.DB, index es.PostRepo) PostService {
	return NewPostService(repository.NewPostRepo(db), repository.NewUserFollowRepo(db), index)
}

func TestCreatePostDraftByDefault(t *testing.T) {
	db := setupServiceDB(t)
	index := newFakePostIndex()
	svc := newPostService(db, index)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{
		AuthorID: 1,
		Title:    "draft title",
		Content:  "draft body",
	}, false)
	require.NoError(t, err)
	require.Equal(t, consts.PostStatusDraft, post.Status)
	require.Nil(t, post.PublishedAt)
	require.Empty(t, index.docs)
}

func TestCreatePostPublishNowIndexes(t *testing.T) {
	db := setupServiceDB(t)
	index := newFakePostIndex()
	svc := newPostService(db, index)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{
		AuthorID: 1,
		Title:    "live title",
		Content:  "live body",
		Tags:     []string{"go", "web"},
	}, true)
	require.NoError(t, err)
	require.Equal(t, consts.PostStatusPublished, post.Status)
	require.NotNil(t, post.PublishedAt)
	require.Contains(t, index.docs, post.ID)
}

func TestPublishPostOnlyOnce(t *testing.T) {
	db := setupServiceDB(t)
	index := newFakePostIndex()
	svc := newPostService(db, index)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "t", Content: "c"}, false)
	require.NoError(t, err)

	published, err := svc.PublishPost(ctx, 1, post.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	// 重复发布被拒绝，发布时间不被覆盖
	_, err = svc.PublishPost(ctx, 1, post.ID)
	require.ErrorIs(t, err, ErrPostAlreadyLive)

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.NotNil(t, got.PublishedAt)
	require.WithinDuration(t, firstPublishedAt, *got.PublishedAt, time.Second)
}

func TestPublishPostRequiresOwnership(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db, newFakePostIndex())
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "t", Content: "c"}, false)
	require.NoError(t, err)

	_, err = svc.PublishPost(ctx, 2, post.ID)
	require.ErrorIs(t, err, ErrNotPostOwner)
}

func TestUpdatePostRejectsEmptyTitleAndContent(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db, newFakePostIndex())
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "t", Content: "c"}, false)
	require.NoError(t, err)

	err = svc.UpdatePost(ctx, 1, post.ID, map[string]interface{}{"title": ""})
	require.ErrorIs(t, err, ErrParamInvalid)

	err = svc.UpdatePost(ctx, 1, post.ID, map[string]interface{}{"content": ""})
	require.ErrorIs(t, err, ErrParamInvalid)

	err = svc.UpdatePost(ctx, 1, post.ID, map[string]interface{}{"title": strings.Repeat("x", MaxTitleLength+1)})
	require.ErrorIs(t, err, ErrParamInvalid)

	require.NoError(t, svc.UpdatePost(ctx, 1, post.ID, map[string]interface{}{"title": "new title"}))

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	require.Equal(t, "new title", got.Title)
}

func TestDraftHiddenFromOthers(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db, newFakePostIndex())
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "t", Content: "c"}, false)
	require.NoError(t, err)

	// 作者可见
	got, err := svc.GetPostByID(ctx, 1, post.ID)
	require.NoError(t, err)
	require.Equal(t, post.ID, got.ID)

	// 其他人不可见
	_, err = svc.GetPostByID(ctx, 2, post.ID)
	require.ErrorIs(t, err, ErrPostNotFound)

	// 匿名不可见
	_, err = svc.GetPostByID(ctx, 0, post.ID)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestSchedulePostRejectsPast(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db, newFakePostIndex())
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "t", Content: "c"}, false)
	require.NoError(t, err)

	err = svc.SchedulePost(ctx, 1, post.ID, time.Now().Add(-time.Hour))
	require.ErrorIs(t, err, ErrScheduleInPast)
}

func TestPublishDueScheduled(t *testing.T) {
	db := setupServiceDB(t)
	index := newFakePostIndex()
	svc := newPostService(db, index)
	ctx := context.Background()

	due, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "due", Content: "c"}, false)
	require.NoError(t, err)
	notDue, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "later", Content: "c"}, false)
	require.NoError(t, err)

	require.NoError(t, svc.SchedulePost(ctx, 1, due.ID, time.Now().Add(time.Minute)))
	require.NoError(t, svc.SchedulePost(ctx, 1, notDue.ID, time.Now().Add(time.Hour)))

	published, err := svc.PublishDueScheduled(ctx, time.Now().Add(10*time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, published)

	var got model.Post
	require.NoError(t, db.First(&got, due.ID).Error)
	require.Equal(t, consts.PostStatusPublished, got.Status)
	require.Contains(t, index.docs, due.ID)

	require.NoError(t, db.First(&got, notDue.ID).Error)
	require.Equal(t, consts.PostStatusDraft, got.Status)
}

func TestListFeedOnlyFollowedAuthors(t *testing.T) {
	db := setupServiceDB(t)
	svc := newPostService(db, newFakePostIndex())
	followRepo := repository.NewUserFollowRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := followRepo.AddFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, &model.Post{AuthorID: bob.ID, Title: "from bob", Content: "c"}, true)
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, &model.Post{AuthorID: carol.ID, Title: "from carol", Content: "c"}, true)
	require.NoError(t, err)
	// 未发布的不进流
	_, err = svc.CreatePost(ctx, &model.Post{AuthorID: bob.ID, Title: "bob draft", Content: "c"}, false)
	require.NoError(t, err)

	feed, err := svc.ListFeed(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, "from bob", feed[0].Title)
}

func TestDeletePostRemovesFromIndex(t *testing.T) {
	db := setupServiceDB(t)
	index := newFakePostIndex()
	svc := newPostService(db, index)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &model.Post{AuthorID: 1, Title: "t", Content: "c"}, true)
	require.NoError(t, err)
	require.Contains(t, index.docs, post.ID)

	require.NoError(t, svc.DeletePost(ctx, 1, post.ID))
	require.NotContains(t, index.docs, post.ID)

	_, err = svc.GetPostByID(ctx, 1, post.ID)
	require.ErrorIs(t, err, ErrPostNotFound)
}
