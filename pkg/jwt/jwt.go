package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"VideoTube.com/config"
)

const accessTokenTTL = 24 * time.Hour

var (
	secret []byte
	issuer string
)

// AccessTokenJwtInit 从配置加载签名密钥
func AccessTokenJwtInit() {
	secret = []byte(config.ConfigInfo.Jwt.Secret)
	issuer = config.ConfigInfo.Jwt.Issuer
}

// GenerateAccessToken 签发access-token subject为用户ID
func GenerateAccessToken(userId int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userId, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessToken 校验token并返回其中的用户ID
func ParseAccessToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid access token")
	}
	userId, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "invalid subject in access token")
	}
	return userId, nil
}
