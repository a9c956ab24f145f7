package handler

import (
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// UploadImage 图片上传中转
func (s *MediaHandler) UploadImage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.BadRequest, "missing file field")
		return
	}

	// 显式传入的 fileName 优先于 multipart 自带的文件名
	fileName := c.PostForm("fileName")
	if fileName == "" {
		fileName = fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	result, err := s.mediaSvc.UploadImage(c.Request.Context(), userID, fileName, file, fileHeader.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
