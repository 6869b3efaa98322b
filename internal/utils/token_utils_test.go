package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("owner", "s3cret", time.Hour, "wealth-tracker")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "s3cret", "wealth-tracker")
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)
	assert.Equal(t, "wealth-tracker", claims.Issuer)
}

func TestParseAndValidateJWT_Rejections(t *testing.T) {
	token, err := GenerateJWT("owner", "s3cret", time.Hour, "wealth-tracker")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other", "wealth-tracker")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT(token, "s3cret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	expired, err := GenerateJWT("owner", "s3cret", -time.Minute, "wealth-tracker")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "s3cret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseAndValidateJWT(token, "", "")
	assert.ErrorIs(t, err, ErrEmptySecret)
	_, err = GenerateJWT("owner", "", time.Hour, "")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
