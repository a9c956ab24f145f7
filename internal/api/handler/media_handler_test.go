package handler

import (
	"Inkwell/internal/service"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type fakeMediaService struct {
	gotFileName string
}

func (f *fakeMediaService) UploadImage(ctx context.Context, userID uint64, fileName string, reader io.Reader, size int64) (*service.UploadResult, error) {
	f.gotFileName = fileName
	return &service.UploadResult{
		ObjectKey: "blog_images/7/1_abcd1234_" + fileName,
		URL:       "https://cdn.example.com/" + fileName,
		Name:      fileName,
		MimeType:  "image/png",
		Size:      size,
		Width:     16,
		Height:    16,
	}, nil
}

func newMediaRouter(svc service.MediaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mediaHandler := NewMediaHandler(svc)
	router.POST("/upload", func(c *gin.Context) {
		c.Set("user_id", uint64(7))
	}, mediaHandler.UploadImage)
	return router
}

func newUploadRequest(t *testing.T, multipartName, formFileName string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", multipartName)
	require.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	require.NoError(t, err)
	if formFileName != "" {
		require.NoError(t, writer.WriteField("fileName", formFileName))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImagePrefersFormFileName(t *testing.T) {
	svc := &fakeMediaService{}
	router := newMediaRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newUploadRequest(t, "raw-upload.png", "cover.png"))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "cover.png", svc.gotFileName)

	var resp struct {
		Code int                    `json:"code"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, "cover.png", resp.Data["name"])
	require.EqualValues(t, 9, resp.Data["size"])
}

func TestUploadImageFallsBackToMultipartName(t *testing.T) {
	svc := &fakeMediaService{}
	router := newMediaRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, newUploadRequest(t, "raw-upload.png", ""))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "raw-upload.png", svc.gotFileName)
}
