package jwt

import (
	"time"

	"school-activities-system/config"
	"school-activities-system/tools"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Payload 写入令牌的业务字段
type Payload struct {
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

type Claims struct {
	Payload
	jwtlib.RegisteredClaims
}

// CreateToken 签发 HS256 令牌，有效期取配置 JWT.AccessExpire（秒）
func CreateToken(payload Payload) string {
	cfg := config.Get()
	now := time.Now()

	claims := Claims{
		Payload: payload,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   payload.Email,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Duration(cfg.JWT.AccessExpire) * time.Second)),
		},
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(cfg.JWT.AccessSecret))
	tools.PanicOnErr(err)
	return token
}

// ParseToken 校验并解析令牌，无效或过期时 valid 为 false
func ParseToken(token string) (payload *Claims, valid bool) {
	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (any, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, false
	}
	return claims, true
}
