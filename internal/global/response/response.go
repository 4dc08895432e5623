package response

import (
	"net/http"

	"lab-website-system/config"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 用于在 gin.Context 中存放错误对象，供日志与 Sentry 中间件读取
const ErrorContextKey = "error"

type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success 返回成功响应，data 最多一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，HTTP 状态码取自错误码前三位
func Fail(c *gin.Context, err error) {
	e := asError(err)

	c.Set(ErrorContextKey, e)

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// Origin 仅在调试模式返回
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}
	c.JSON(httpStatus(e.Code), body)
}

// NoContent 返回空体 204 响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Recovery 捕获 handler panic 并转换为统一错误响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = pkgerrors.Errorf("panic: %v", r)
		}
		Fail(c, ErrServerInternal.WithOrigin(err))
		c.Abort()
	}
}

func asError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return ErrServerInternal.WithOrigin(err)
}

func httpStatus(code int32) int {
	status := int(code) / 100
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
