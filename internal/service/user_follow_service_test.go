package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	user := &model.User{
		TokenIdentifier: "idp|" + username,
		Username:        username,
		Email:           username + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newFollowService(db *gorm.DB) UserFollowService {
	return NewUserFollowService(repository.NewUserFollowRepo(db), repository.NewUserRepo(db))
}

func TestToggleFollowRejectsSelf(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newFollowService(db)

	alice := seedUser(t, db, "alice")

	_, err := svc.ToggleFollow(context.Background(), alice.ID, alice.ID)
	require.ErrorIs(t, err, ErrUserFollowSelf)
}

func TestToggleFollowRejectsMissingTarget(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newFollowService(db)

	alice := seedUser(t, db, "alice")

	_, err := svc.ToggleFollow(context.Background(), alice.ID, 9999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleFollowFlipsState(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newFollowService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	following, err := svc.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, following)

	isFollowing, err := svc.GetSomeoneIsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, isFollowing)

	// 计数同步
	var gotBob model.User
	require.NoError(t, db.First(&gotBob, bob.ID).Error)
	require.Equal(t, 1, gotBob.FollowersCount)
	var gotAlice model.User
	require.NoError(t, db.First(&gotAlice, alice.ID).Error)
	require.Equal(t, 1, gotAlice.FollowingCount)

	// 再次切换取消关注
	following, err = svc.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, following)

	require.NoError(t, db.First(&gotBob, bob.ID).Error)
	require.Equal(t, 0, gotBob.FollowersCount)

	isFollowing, err = svc.GetSomeoneIsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, isFollowing)
}

func TestFollowerListReturnsProfiles(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newFollowService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := svc.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)

	followers, err := svc.GetUserFollowers(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	usernames := []string{followers[0].Username, followers[1].Username}
	require.ElementsMatch(t, []string{"bob", "carol"}, usernames)

	following, err := svc.GetUserFollowing(ctx, bob.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, alice.ID, following[0].ID)
}

func TestFollowCountsCached(t *testing.T) {
	db := setupServiceDB(t)
	setupMiniRedis(t)
	svc := newFollowService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := svc.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	count, err := svc.GetUserFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = svc.GetUserFollowingCount(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
