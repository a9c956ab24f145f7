package util

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// GetSafeContentType 嗅探真实的Content-Type，不信任客户端声明
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// SanitizeFileName 将 [A-Za-z0-9.-] 之外的字符替换为下划线
func SanitizeFileName(name string) string {
	if name == "" {
		return "upload"
	}
	out := []byte(name)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

// BuildObjectKey 生成对象键：调用者 + 时间戳 + 随机段 + 清洗后的文件名。
// 随机段保证同一毫秒内同名上传不会互相覆盖。
func BuildObjectKey(folder string, userID uint64, fileName string) string {
	return fmt.Sprintf("%s/%d/%d_%s_%s",
		folder,
		userID,
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		SanitizeFileName(fileName),
	)
}

// GetImageDimensions 解码图片头获取宽高
func GetImageDimensions(data []byte) (int, int, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
