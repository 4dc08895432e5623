package user

import (
	"os"
	"testing"

	"lab-website-system/internal/global/database"
	"lab-website-system/internal/global/jwt"
	"lab-website-system/internal/global/response"
	"lab-website-system/internal/model"
	"lab-website-system/test"
	"lab-website-system/tools"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	(&ModuleUser{}).Init()
	os.Exit(m.Run())
}

func TestRegister(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, Register, User{Username: "alice", Password: "pw123"})
	test.NoError(t, resp)

	var user model.User
	require.NoError(t, database.DB.Where("username = ?", "alice").First(&user).Error)
	require.False(t, user.IsAdmin)
	require.True(t, tools.PasswordCompare("pw123", user.Password))
}

func TestRegisterDuplicate(t *testing.T) {
	test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, Register, User{Username: "alice", Password: "pw123"}))

	// 重复用户名由唯一索引拦截，映射为已存在错误而非数据库错误
	resp := test.DoRequest(t, Register, User{Username: "alice", Password: "other"})
	test.CodeEqual(t, response.ErrAlreadyExists, resp)

	// 失败的注册不产生新行
	var count int64
	require.NoError(t, database.DB.Model(&model.User{}).Where("username = ?", "alice").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	test.SetupDB(t)
	test.NoError(t, test.DoRequest(t, Register, User{Username: "alice", Password: "pw123"}))

	resp := test.DoRequest(t, Login, User{Username: "alice", Password: "pw123"})
	test.NoError(t, resp)

	var data struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		IsAdmin  bool   `json:"is_admin"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, "alice", data.Username)
	require.False(t, data.IsAdmin)

	claims, valid := jwt.ParseToken(data.Token)
	require.True(t, valid)
	require.Equal(t, "alice", claims.Username)
	require.False(t, claims.IsAdmin)
}

func TestLoginFailureIsUniform(t *testing.T) {
	test.SetupDB(t)
	test.NoError(t, test.DoRequest(t, Register, User{Username: "alice", Password: "pw123"}))

	// 用户不存在与密码错误返回同一个错误
	wrongPassword := test.DoRequest(t, Login, User{Username: "alice", Password: "nope"})
	unknownUser := test.DoRequest(t, Login, User{Username: "bob", Password: "pw123"})

	test.ErrorEqual(t, response.ErrInvalidCredentials, wrongPassword)
	test.ErrorEqual(t, response.ErrInvalidCredentials, unknownUser)
}

func TestLoginAdminFlag(t *testing.T) {
	test.SetupDB(t)
	admin := model.User{Username: "boss", Password: tools.PasswordEncrypt("secret"), IsAdmin: true}
	require.NoError(t, database.DB.Create(&admin).Error)

	resp := test.DoRequest(t, Login, User{Username: "boss", Password: "secret"})
	test.NoError(t, resp)

	var data struct {
		Token   string `json:"token"`
		IsAdmin bool   `json:"is_admin"`
	}
	test.DecodeData(t, resp, &data)
	require.True(t, data.IsAdmin)

	claims, valid := jwt.ParseToken(data.Token)
	require.True(t, valid)
	require.True(t, claims.IsAdmin)
}
