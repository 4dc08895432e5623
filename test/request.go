package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"lab-website-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// DoRequest 以 JSON 请求体调用单个 handler，解析统一响应
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any, params ...gin.Param) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoGet 以查询串调用单个 handler
func DoGet(t *testing.T, handlerFunc gin.HandlerFunc, query string, params ...gin.Param) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	target := "/test"
	if query != "" {
		target += "?" + query
	}
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// FormFile 多部分表单中的一个文件
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

// DoMultipart 以 multipart 表单调用单个 handler
func DoMultipart(t *testing.T, handlerFunc gin.HandlerFunc, fields map[string]string, files []FormFile, params ...gin.Param) (resp response.ResponseBody) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(f.Content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	c.Params = params
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoRaw 调用 handler 但不解析响应体，用于 204 等空响应
func DoRaw(t *testing.T, handlerFunc gin.HandlerFunc, method string, body io.Reader, params ...gin.Param) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/test", body)
	c.Params = params
	handlerFunc(c)
	// 引擎在 handler 链结束后才冲刷状态码，直调 handler 需要手动冲刷
	c.Writer.WriteHeaderNow()
	return w
}
