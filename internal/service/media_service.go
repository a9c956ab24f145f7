package service

import (
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/pkg/util"
	"bytes"
	"context"
	"io"
	log "log/slog"
	"strings"
)

const MaxUploadSize = 10 << 20 // 10MB

// UploadResult 上传结果
type UploadResult struct {
	ObjectKey string `json:"objectKey"`
	URL       string `json:"url"`
	Name      string `json:"name"`
	MimeType  string `json:"mimeType"`
	Size      int64  `json:"size"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type MediaService interface {
	UploadImage(ctx context.Context, userID uint64, fileName string, reader io.Reader, size int64) (*UploadResult, error)
}

type MediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &MediaServiceImpl{}
}

// UploadImage 图片上传中转。
// 服务端嗅探真实类型，只放行图片，对象键带随机段防覆盖。
func (s *MediaServiceImpl) UploadImage(ctx context.Context, userID uint64, fileName string, reader io.Reader, size int64) (*UploadResult, error) {
	if size <= 0 || size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(reader, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	contentType, err := util.GetSafeContentType(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	width, height, err := util.GetImageDimensions(data)
	if err != nil {
		return nil, ErrFileNotSupported
	}

	objectKey := util.BuildObjectKey(consts.MediaFolder, userID, fileName)
	key, err := minio.UploadFile(ctx, objectKey, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		log.ErrorContext(ctx, "image upload failed", "objectKey", objectKey, "err", err)
		return nil, err
	}

	return &UploadResult{
		ObjectKey: key,
		URL:       minio.GetPublicURL(key),
		Name:      fileName,
		MimeType:  contentType,
		Size:      int64(len(data)),
		Width:     width,
		Height:    height,
	}, nil
}
