package jwt

import (
	"github.com/gin-gonic/gin"
)

// PayloadContextKey 认证中间件写入 gin.Context 的键
const PayloadContextKey = "payload"

func GetUserPayload(c *gin.Context) (userPayload *Claims, exist bool) {
	payload, _ := c.Get(PayloadContextKey)
	userPayload, exist = payload.(*Claims)
	return
}
