package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const syncLockTTL = 5 * time.Second

type UserService interface {
	SyncUser(ctx context.Context, claims *security.IdentityClaims) (*model.User, error)
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uint64, name, bio, avatarURL string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// SyncUser 按身份令牌同步用户，幂等。
// 已存在则比对资料字段增量更新，不存在则在分布式锁内创建。
// 锁竞争失败后重查，数据库唯一索引兜底并发重复创建。
func (s *UserServiceImpl) SyncUser(ctx context.Context, claims *security.IdentityClaims) (*model.User, error) {
	tokenIdentifier := claims.TokenIdentifier()
	if tokenIdentifier == "" {
		return nil, ErrParamInvalid
	}

	existing, err := s.userRepo.GetUserByTokenIdentifier(ctx, tokenIdentifier)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.refreshProfile(ctx, existing, claims)
	}

	lockKey := consts.UserSyncLock + tokenIdentifier
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, lockKey, lockValue, syncLockTTL, 3)
	if err != nil {
		return nil, err
	}
	if !locked {
		// 竞争方可能已完成创建
		existing, err = s.userRepo.GetUserByTokenIdentifier(ctx, tokenIdentifier)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
		return nil, ErrUserSyncConflict
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	existing, err = s.userRepo.GetUserByTokenIdentifier(ctx, tokenIdentifier)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	name := claims.Name
	if name == "" {
		name = consts.AnonymousName
	}
	user := &model.User{
		TokenIdentifier: tokenIdentifier,
		Username:        deriveUsername(claims),
		Email:           claims.Email,
		Name:            name,
		AvatarURL:       claims.AvatarURL,
		LastActiveAt:    time.Now(),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			log.InfoContext(ctx, "user sync lost create race, refetching", "tokenIdentifier", tokenIdentifier)
			return s.userRepo.GetUserByTokenIdentifier(ctx, tokenIdentifier)
		}
		return nil, err
	}
	return user, nil
}

// refreshProfile 身份提供方资料变更时同步到本地，每次同步刷新活跃时间
func (s *UserServiceImpl) refreshProfile(ctx context.Context, user *model.User, claims *security.IdentityClaims) (*model.User, error) {
	now := time.Now()
	updates := map[string]interface{}{"last_active_at": now}
	user.LastActiveAt = now
	if claims.Email != "" && claims.Email != user.Email {
		updates["email"] = claims.Email
		user.Email = claims.Email
	}
	if claims.Name != "" && claims.Name != user.Name {
		updates["name"] = claims.Name
		user.Name = claims.Name
	}
	if claims.AvatarURL != "" && claims.AvatarURL != user.AvatarURL {
		updates["avatar_url"] = claims.AvatarURL
		user.AvatarURL = claims.AvatarURL
	}
	if err := s.userRepo.UpdateUser(ctx, user.ID, updates); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, name, bio, avatarURL string) error {
	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if bio != "" {
		updates["bio"] = bio
	}
	if avatarURL != "" {
		updates["avatar_url"] = avatarURL
	}
	if len(updates) == 0 {
		return nil
	}
	return s.userRepo.UpdateUser(ctx, userID, updates)
}

func deriveUsername(claims *security.IdentityClaims) string {
	if claims.Username != "" {
		return claims.Username
	}
	if at := strings.Index(claims.Email, "@"); at > 0 {
		return claims.Email[:at]
	}
	return claims.TokenIdentifier()
}
