package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Sync 身份同步，幂等
func (s *UserHandler) Sync(c *gin.Context) {
	value, exists := c.Get(middleware.CtxClaimsKey)
	if !exists {
		response.Fail(c, response.Unauthorized, "missing identity")
		return
	}
	claims, ok := value.(*security.IdentityClaims)
	if !ok {
		response.Fail(c, response.Unauthorized, "missing identity")
		return
	}

	user, err := s.userSvc.SyncUser(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := &dto.UserProfileResp{}
	if err = copier.Copy(resp, user); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// GetMe 当前用户资料
func (s *UserHandler) GetMe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := s.userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := &dto.UserProfileResp{}
	if err = copier.Copy(resp, user); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// GetUserByID 按ID查看用户公开资料
func (s *UserHandler) GetUserByID(c *gin.Context) {
	userID, ok := pathUint64(c, "user_id")
	if !ok {
		return
	}

	user, err := s.userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := &dto.UserProfileResp{}
	if err = copier.Copy(resp, user); err != nil {
		response.Error(c, err)
		return
	}
	resp.Email = "" // 邮箱不对外
	response.Success(c, resp)
}

// GetUserByUsername 按用户名查看用户公开资料
func (s *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	user, err := s.userSvc.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := &dto.UserProfileResp{}
	if err = copier.Copy(resp, user); err != nil {
		response.Error(c, err)
		return
	}
	resp.Email = ""
	response.Success(c, resp)
}

// UpdateProfile 更新个人资料
func (s *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.UpdateProfile(c.Request.Context(), userID, req.Name, req.Bio, req.AvatarURL); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
