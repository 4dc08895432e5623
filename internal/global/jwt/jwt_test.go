package jwt

import (
	"testing"

	"lab-website-system/config"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	token := CreateToken(Payload{Username: "alice", IsAdmin: true})
	require.NotEmpty(t, token)

	claims, valid := ParseToken(token)
	require.True(t, valid)
	require.Equal(t, "alice", claims.Username)
	require.True(t, claims.IsAdmin)
	require.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, valid := ParseToken("not.a.token")
	require.False(t, valid)

	_, valid = ParseToken("")
	require.False(t, valid)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token := CreateToken(Payload{Username: "alice"})
	_, valid := ParseToken(token + "x")
	require.False(t, valid)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := config.Get()
	original := cfg.JWT.AccessExpire
	cfg.JWT.AccessExpire = -60
	defer func() { cfg.JWT.AccessExpire = original }()

	token := CreateToken(Payload{Username: "alice"})
	_, valid := ParseToken(token)
	require.False(t, valid)
}
