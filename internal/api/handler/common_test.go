package handler

import (
	"Inkwell/internal/pkg/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func newPaginationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/items", func(c *gin.Context) {
		limit, offset, ok := getPagination(c)
		if !ok {
			return
		}
		response.Success(c, map[string]int{"limit": limit, "offset": offset})
	})
	return router
}

func decodeEnvelope(t *testing.T, body []byte) (int, map[string]int) {
	var resp struct {
		Code int            `json:"code"`
		Data map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Code, resp.Data
}

func TestGetPaginationDefaults(t *testing.T) {
	router := newPaginationRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items", nil))

	code, data := decodeEnvelope(t, recorder.Body.Bytes())
	require.Equal(t, response.Ok, code)
	require.Equal(t, 20, data["limit"])
	require.Equal(t, 0, data["offset"])
}

func TestGetPaginationRejectsOverCap(t *testing.T) {
	router := newPaginationRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items?limit=1000", nil))

	code, _ := decodeEnvelope(t, recorder.Body.Bytes())
	require.Equal(t, response.BadRequest, code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items?offset=-1", nil))

	code, _ = decodeEnvelope(t, recorder.Body.Bytes())
	require.Equal(t, response.BadRequest, code)
}
