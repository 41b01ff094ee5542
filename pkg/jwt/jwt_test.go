package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VideoTube.com/config"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	config.ConfigInfo.Jwt.Secret = "test-secret"
	config.ConfigInfo.Jwt.Issuer = "videotube-test"
	AccessTokenJwtInit()

	token, err := GenerateAccessToken(1001)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userId, err := ParseAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1001), userId)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	config.ConfigInfo.Jwt.Secret = "test-secret"
	AccessTokenJwtInit()

	_, err := ParseAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongKey(t *testing.T) {
	config.ConfigInfo.Jwt.Secret = "key-a"
	AccessTokenJwtInit()
	token, err := GenerateAccessToken(7)
	assert.NoError(t, err)

	config.ConfigInfo.Jwt.Secret = "key-b"
	AccessTokenJwtInit()
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
