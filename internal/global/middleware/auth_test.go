package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"school-activities-system/config"
	"school-activities-system/internal/global/jwt"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.InitTest()
	os.Exit(m.Run())
}

func doAuth(t *testing.T, minRoleID int, authHeader string) (int, response.ResponseBody, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	Auth(minRoleID)(c)

	var resp response.ResponseBody
	if w.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return w.Code, resp, c
}

func TestAuthMissingHeader(t *testing.T) {
	code, resp, _ := doAuth(t, model.RoleStudent, "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, response.ErrTokenInvalid.GetCode(), resp.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	code, _, _ := doAuth(t, model.RoleStudent, "Basic abc123")
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestAuthInvalidToken(t *testing.T) {
	code, resp, _ := doAuth(t, model.RoleStudent, "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, response.ErrTokenInvalid.GetCode(), resp.Code)
}

func TestAuthRoleTooLow(t *testing.T) {
	token := jwt.CreateToken(jwt.Payload{Email: "michael@mergington.edu", RoleID: model.RoleStudent})

	code, resp, c := doAuth(t, model.RoleAdmin, "Bearer "+token)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, response.ErrForbidden.GetCode(), resp.Code)
	require.True(t, c.IsAborted())
}

func TestAuthSetsPayload(t *testing.T) {
	token := jwt.CreateToken(jwt.Payload{Email: "principal@mergington.edu", RoleID: model.RoleAdmin})

	code, _, c := doAuth(t, model.RoleAdmin, "Bearer "+token)
	require.Equal(t, http.StatusOK, code)
	require.False(t, c.IsAborted())

	payload, exist := jwt.GetUserPayload(c)
	require.True(t, exist)
	require.Equal(t, "principal@mergington.edu", payload.Email)
	require.Equal(t, model.RoleAdmin, payload.RoleID)
}
