package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lab-website-system/internal/global/jwt"
	"lab-website-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doAuth(t *testing.T, adminOnly bool, header string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	Auth(adminOnly)(c)
	return c, w
}

func failCode(t *testing.T, w *httptest.ResponseRecorder) int32 {
	var body response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Code
}

func TestAuthValidToken(t *testing.T) {
	token := jwt.CreateToken(jwt.Payload{Username: "alice", IsAdmin: false})

	c, _ := doAuth(t, false, "Bearer "+token)
	require.False(t, c.IsAborted())

	payload, exists := jwt.GetUserPayload(c)
	require.True(t, exists)
	require.Equal(t, "alice", payload.Username)
	require.Equal(t, token, c.GetString("token"))
}

func TestAuthAdminOnly(t *testing.T) {
	member := jwt.CreateToken(jwt.Payload{Username: "alice", IsAdmin: false})
	admin := jwt.CreateToken(jwt.Payload{Username: "boss", IsAdmin: true})

	c, w := doAuth(t, true, "Bearer "+member)
	require.True(t, c.IsAborted())
	require.Equal(t, response.ErrForbidden.Code, failCode(t, w))

	c, _ = doAuth(t, true, "Bearer "+admin)
	require.False(t, c.IsAborted())
}

func TestAuthMissingHeader(t *testing.T) {
	c, w := doAuth(t, false, "")
	require.True(t, c.IsAborted())
	require.Equal(t, response.ErrTokenInvalid.Code, failCode(t, w))
}

func TestAuthWrongScheme(t *testing.T) {
	token := jwt.CreateToken(jwt.Payload{Username: "alice"})
	c, w := doAuth(t, false, "Token "+token)
	require.True(t, c.IsAborted())
	require.Equal(t, response.ErrTokenInvalid.Code, failCode(t, w))
}

func TestAuthGarbageToken(t *testing.T) {
	c, w := doAuth(t, false, "Bearer garbage")
	require.True(t, c.IsAborted())
	require.Equal(t, response.ErrTokenInvalid.Code, failCode(t, w))
}
