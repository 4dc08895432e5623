package user

import (
	"time"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/jwt"
	"lab-website-system/internal/global/redis"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// User 登录与注册共用的请求结构体
type User struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 处理用户注册请求；用户名已存在时失败，不产生新行
func Register(c *gin.Context) {
	var req User
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	user := model.User{
		Username: req.Username,
		Password: tools.PasswordEncrypt(req.Password),
		IsAdmin:  false,
	}
	// 唯一索引兜底，并发重复注册不会穿过去
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("用户名已存在", "username", req.Username)
			response.Fail(c, response.ErrAlreadyExists.WithTips("username already taken"))
			return
		}
		log.Error("创建用户失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功", "username", user.Username)
	response.Success(c)
}

// Login 处理用户登录请求。
// 用户不存在与密码错误返回同一个错误，不向外泄露差异。
func Login(c *gin.Context) {
	var req User
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("username = ?", req.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("登录失败：用户不存在", "username", req.Username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("登录失败：密码错误", "username", req.Username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	log.Info("用户登录成功", "username", user.Username, "is_admin", user.IsAdmin)
	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		}),
		"username": user.Username,
		"is_admin": user.IsAdmin,
	})
}

// Logout 将当前令牌加入吊销名单直至自然过期。
// 未配置 Redis 时退化为客户端丢弃令牌。
func Logout(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	token := c.GetString("token")
	ttl := time.Until(time.Unix(payload.ExpiresAt, 0))
	if err := redis.DenyToken(c.Request.Context(), token, ttl); err != nil {
		log.Warn("令牌吊销写入失败", "error", err, "username", payload.Username)
	}

	log.Info("用户登出", "username", payload.Username)
	response.Success(c)
}

// GetMe 返回当前登录用户信息
func GetMe(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		log.Error("查询用户失败", "error", err, "username", payload.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}
