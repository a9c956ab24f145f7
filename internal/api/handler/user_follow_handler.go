package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) GetUserFollowers(c *gin.Context) {
	userId, ok := pathUint64(c, "user_id")
	if !ok {
		return
	}
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}

	followers, err := s.userFollowSvc.GetUserFollowers(c, userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	resps, err := toPublicProfiles(followers)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resps)
}

func (s *UserFollowHandler) GetUserFollowings(c *gin.Context) {
	userId, ok := pathUint64(c, "user_id")
	if !ok {
		return
	}
	limit, offset, ok := getPagination(c)
	if !ok {
		return
	}

	followings, err := s.userFollowSvc.GetUserFollowing(c, userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	resps, err := toPublicProfiles(followings)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resps)
}

// toPublicProfiles 转换为对外资料，不暴露邮箱
func toPublicProfiles(users []*model.User) ([]*dto.UserProfileResp, error) {
	resps := make([]*dto.UserProfileResp, 0, len(users))
	if err := copier.Copy(&resps, &users); err != nil {
		return nil, err
	}
	for _, resp := range resps {
		resp.Email = ""
	}
	return resps, nil
}

func (s *UserFollowHandler) GetUserFollowersCount(c *gin.Context) {
	userId, ok := pathUint64(c, "user_id")
	if !ok {
		return
	}
	count, err := s.userFollowSvc.GetUserFollowerCount(c, userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *UserFollowHandler) GetUserFollowingCount(c *gin.Context) {
	userId, ok := pathUint64(c, "user_id")
	if !ok {
		return
	}
	count, err := s.userFollowSvc.GetUserFollowingCount(c, userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *UserFollowHandler) GetSomeoneIsFollowing(c *gin.Context) {
	userId, ok := requireUser(c)
	if !ok {
		return
	}
	followingId, ok := pathUint64(c, "following_id")
	if !ok {
		return
	}

	isFollowing, err := s.userFollowSvc.GetSomeoneIsFollowing(c, userId, followingId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"following": isFollowing})
}

// ToggleFollow 切换关注状态
func (s *UserFollowHandler) ToggleFollow(c *gin.Context) {
	userId, ok := requireUser(c)
	if !ok {
		return
	}
	followingId, ok := pathUint64(c, "following_id")
	if !ok {
		return
	}

	following, err := s.userFollowSvc.ToggleFollow(c, userId, followingId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"following": following})
}
