package middleware

import (
	"strings"

	"lab-website-system/internal/global/jwt"
	"lab-website-system/internal/global/redis"
	"lab-website-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验 Bearer 令牌；adminOnly 为 true 时仅放行管理员
func Auth(adminOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 登出过的令牌在吊销名单里
		if redis.IsTokenDenied(c.Request.Context(), token) {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if adminOnly && !payload.IsAdmin {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		}

		c.Set(jwt.PayloadContextKey, payload)
		c.Set("token", token)
		c.Next()
	}
}
