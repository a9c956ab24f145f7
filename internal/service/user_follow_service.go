package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"
)

const MaxFollowingCount = 1000
const followCountTTL = 10 * time.Minute

type UserFollowService interface {
	GetUserFollowers(ctx context.Context, userId uint64, limit, offset int) ([]*model.User, error)
	GetUserFollowing(ctx context.Context, userId uint64, limit, offset int) ([]*model.User, error)
	GetUserFollowerCount(ctx context.Context, userId uint64) (int64, error)
	GetUserFollowingCount(ctx context.Context, userId uint64) (int64, error)
	GetSomeoneIsFollowing(ctx context.Context, userId, followingId uint64) (bool, error)
	ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
}

type UserFollowServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	userRepo       repository.UserRepo
}

func NewUserFollowService(userFollowRepo repository.UserFollowRepo, userRepo repository.UserRepo) UserFollowService {
	return &UserFollowServiceImpl{
		userFollowRepo: userFollowRepo,
		userRepo:       userRepo,
	}
}

type fetchCountFunc func(ctx context.Context, userId uint64) (int64, error)

// GetUserFollowers 粉丝列表，返回按关注时间倒序的用户资料
func (s *UserFollowServiceImpl) GetUserFollowers(ctx context.Context, userId uint64, limit, offset int) ([]*model.User, error) {
	follows, err := s.userFollowRepo.GetUserFollowers(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowerID)
	}
	return s.hydrateUsers(ctx, ids)
}

// GetUserFollowing 关注列表，返回按关注时间倒序的用户资料
func (s *UserFollowServiceImpl) GetUserFollowing(ctx context.Context, userId uint64, limit, offset int) ([]*model.User, error) {
	follows, err := s.userFollowRepo.GetUserFollowing(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowingID)
	}
	return s.hydrateUsers(ctx, ids)
}

// hydrateUsers 批量取回用户并保持传入ID的顺序
func (s *UserFollowServiceImpl) hydrateUsers(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users, err := s.userRepo.GetUserByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	ordered := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := byID[id]; ok {
			ordered = append(ordered, user)
		}
	}
	return ordered, nil
}

func (s *UserFollowServiceImpl) GetUserFollowerCount(ctx context.Context, userId uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userId,
		consts.UserFollowerCountKey,
		s.userFollowRepo.GetUserFollowerCount,
	)
}

func (s *UserFollowServiceImpl) GetUserFollowingCount(ctx context.Context, userId uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userId,
		consts.UserFollowingCountKey,
		s.userFollowRepo.GetUserFollowingCount,
	)
}

// getCountCommon 计数缓存的 cache-aside 通用逻辑
func (s *UserFollowServiceImpl) getCountCommon(ctx context.Context, userId uint64, keyPrefix string, fetch fetchCountFunc) (int64, error) {
	key := keyPrefix + strconv.FormatUint(userId, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}

	count, err = fetch(ctx, userId)
	if err != nil {
		return 0, err
	}

	if cacheErr := redis.SetWithExpiration(ctx, key, count, followCountTTL); cacheErr != nil {
		log.WarnContext(ctx, "follow count cache write failed", "key", key, "err", cacheErr)
	}
	return count, nil
}

func (s *UserFollowServiceImpl) GetSomeoneIsFollowing(ctx context.Context, userId, followingId uint64) (bool, error) {
	userFollow, err := s.userFollowRepo.GetUserFollow(ctx, userId, followingId)
	if err != nil {
		return false, err
	}
	return userFollow != nil, nil
}

// ToggleFollow 切换关注状态，返回切换后是否处于关注中。
// 写入与计数在仓储层同一事务内完成，这里只做业务校验和缓存失效。
func (s *UserFollowServiceImpl) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if followerID == followingID {
		return false, ErrUserFollowSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, followingID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrUserNotFound
	}

	created, err := s.userFollowRepo.AddFollow(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}

	following := created
	if !created {
		if _, err = s.userFollowRepo.RemoveFollow(ctx, followerID, followingID); err != nil {
			return false, err
		}
		following = false
	} else {
		count, countErr := s.userFollowRepo.GetUserFollowingCount(ctx, followerID)
		if countErr == nil && count > MaxFollowingCount {
			// 超限回滚
			if _, err = s.userFollowRepo.RemoveFollow(ctx, followerID, followingID); err != nil {
				return false, err
			}
			return false, ErrUserFollowLimit
		}
	}

	s.invalidateCountCache(ctx, followerID, followingID)
	return following, nil
}

func (s *UserFollowServiceImpl) invalidateCountCache(ctx context.Context, followerID, followingID uint64) {
	keys := []string{
		consts.UserFollowingCountKey + strconv.FormatUint(followerID, 10),
		consts.UserFollowerCountKey + strconv.FormatUint(followingID, 10),
	}
	for _, key := range keys {
		if err := redis.DeleteKey(ctx, key); err != nil && !errors.Is(err, context.Canceled) {
			log.WarnContext(ctx, "follow count cache invalidate failed", "key", key, "err", err)
		}
	}
}
