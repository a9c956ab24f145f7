package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"strconv"

	"github.com/gin-gonic/gin"
)

// requireUser 取当前登录用户，未同步或未登录时直接失败
func requireUser(c *gin.Context) (uint64, bool) {
	userID := c.GetUint64("user_id")
	if userID == 0 {
		response.Fail(c, response.Unauthorized, "account not synced, call /users/sync first")
		return 0, false
	}
	return userID, true
}

// pathUint64 解析路径参数
func pathUint64(c *gin.Context, name string) (uint64, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		response.Fail(c, response.BadRequest, "invalid "+name)
		return 0, false
	}
	return value, true
}

// getPagination 解析分页参数，越界直接报参数错误
func getPagination(c *gin.Context) (int, int, bool) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return 0, 0, false
	}
	return page.Limit, page.Offset, true
}
