package jwt

import (
	"time"

	"lab-website-system/config"

	"github.com/golang-jwt/jwt"
)

// Payload 写入令牌的用户信息
type Payload struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// CreateToken 签发 HS256 访问令牌
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	now := time.Now()
	claims := Claims{
		Payload: payload,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.AccessExpire) * time.Second).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		// 密钥为空等配置错误才会走到这里
		panic(err)
	}
	return token
}

// ParseToken 校验并解析令牌
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
