package user

import (
	"net/http"
	"os"
	"testing"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/jwt"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"
	"school-activities-system/test"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	test.Setup()
	(&ModuleUser{}).Init()
	os.Exit(m.Run())
}

func register(t *testing.T, email, password, nickName string) response.ResponseBody {
	return test.DoRequest(t, Register, http.MethodPost, "/auth/register", nil,
		RegisterReq{
			Credentials: Credentials{Email: email, Password: password},
			NickName:    nickName,
		})
}

func TestRegisterAndLogin(t *testing.T) {
	test.ResetDB()

	resp := register(t, "amelia@mergington.edu", "sketch2024", "Amelia")
	test.NoError(t, resp)
	data := test.Data(t, resp)
	require.Equal(t, "bearer", data["token_type"])
	require.NotEmpty(t, data["access_token"])

	resp = test.DoRequest(t, Login, http.MethodPost, "/auth/login", nil,
		Credentials{Email: "amelia@mergington.edu", Password: "sketch2024"})
	test.NoError(t, resp)
	data = test.Data(t, resp)

	token, ok := data["access_token"].(string)
	require.True(t, ok)
	claims, valid := jwt.ParseToken(token)
	require.True(t, valid)
	require.Equal(t, "amelia@mergington.edu", claims.Email)
	require.Equal(t, model.RoleStudent, claims.RoleID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	test.ResetDB()

	test.NoError(t, register(t, "amelia@mergington.edu", "sketch2024", "Amelia"))
	resp := register(t, "amelia@mergington.edu", "sketch2024", "Amelia Again")
	test.ErrorEqual(t, response.ErrEmailRegistered, resp)
}

func TestRegisterWeakPassword(t *testing.T) {
	test.ResetDB()

	resp := register(t, "weak@mergington.edu", "short1", "Weak")
	require.Equal(t, int32(400), resp.Code)

	resp = register(t, "weak@mergington.edu", "lettersonly", "Weak")
	require.Equal(t, int32(400), resp.Code)

	resp = register(t, "weak@mergington.edu", "12345678", "Weak")
	require.Equal(t, int32(400), resp.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	test.ResetDB()

	test.NoError(t, register(t, "amelia@mergington.edu", "sketch2024", "Amelia"))
	resp := test.DoRequest(t, Login, http.MethodPost, "/auth/login", nil,
		Credentials{Email: "amelia@mergington.edu", Password: "wrong1234"})
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)
}

func TestLoginUnknownEmail(t *testing.T) {
	test.ResetDB()

	resp := test.DoRequest(t, Login, http.MethodPost, "/auth/login", nil,
		Credentials{Email: "ghost@mergington.edu", Password: "whatever1"})
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)
}

func TestMe(t *testing.T) {
	test.ResetDB()

	test.NoError(t, register(t, "amelia@mergington.edu", "sketch2024", "Amelia"))

	resp := test.DoAuthedRequest(t, Me, http.MethodGet, "/auth/me", nil,
		&jwt.Claims{Payload: jwt.Payload{Email: "amelia@mergington.edu", RoleID: model.RoleStudent}}, nil)
	test.NoError(t, resp)

	data := test.Data(t, resp)
	require.Equal(t, "amelia@mergington.edu", data["email"])
	require.Equal(t, "Amelia", data["nick_name"])
	// 密码散列绝不能出现在响应里
	require.NotContains(t, data, "password")
}

func TestChangePassword(t *testing.T) {
	test.ResetDB()

	test.NoError(t, register(t, "amelia@mergington.edu", "sketch2024", "Amelia"))
	payload := &jwt.Claims{Payload: jwt.Payload{Email: "amelia@mergington.edu", RoleID: model.RoleStudent}}

	resp := test.DoAuthedRequest(t, ChangePassword, http.MethodPost, "/auth/change-password", nil,
		payload, ChangePasswordReq{OldPassword: "wrong1234", NewPassword: "newpass99"})
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)

	resp = test.DoAuthedRequest(t, ChangePassword, http.MethodPost, "/auth/change-password", nil,
		payload, ChangePasswordReq{OldPassword: "sketch2024", NewPassword: "newpass99"})
	test.NoError(t, resp)

	resp = test.DoRequest(t, Login, http.MethodPost, "/auth/login", nil,
		Credentials{Email: "amelia@mergington.edu", Password: "newpass99"})
	test.NoError(t, resp)
}

func TestPasswordStoredHashed(t *testing.T) {
	test.ResetDB()

	test.NoError(t, register(t, "amelia@mergington.edu", "sketch2024", "Amelia"))

	var user model.User
	require.NoError(t, database.DB.Where("email = ?", "amelia@mergington.edu").First(&user).Error)
	require.NotEqual(t, "sketch2024", user.Password)
	require.NotEmpty(t, user.Password)
}
