package user

import (
	"strings"
	"unicode"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/jwt"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"
	"school-activities-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Credentials 登录和注册共用的凭证字段
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterReq struct {
	Credentials
	NickName string `json:"nick_name" binding:"required"`
}

// validatePasswordStrength 至少 8 位且同时包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if !hasLetter {
		return errors.New("password must contain at least one letter")
	}
	if !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	return nil
}

func tokenResponse(user *model.User) gin.H {
	return gin.H{
		"access_token": jwt.CreateToken(jwt.Payload{
			Email:  user.Email,
			RoleID: user.RoleID,
		}),
		"token_type": "bearer",
		"email":      user.Email,
		"role_id":    user.RoleID,
	}
}

// Register 注册新用户并直接签发令牌
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	req.Email = strings.ToLower(req.Email)

	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("密码强度不足", "email", req.Email)
		response.Fail(c, response.ErrWeakPassword.WithTips(err.Error()))
		return
	}

	user := model.User{
		Email:    req.Email,
		Password: tools.PasswordEncrypt(req.Password),
		NickName: req.NickName,
		RoleID:   model.RoleStudent,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("邮箱已注册", "email", req.Email)
			response.Fail(c, response.ErrEmailRegistered)
			return
		}
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功", "email", user.Email, "role_id", user.RoleID)
	response.Success(c, tokenResponse(&user))
}

// Login 校验邮箱密码并签发令牌。
// 用户不存在和密码错误统一返回 401，不泄露哪个环节失败。
func Login(c *gin.Context) {
	var req Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	req.Email = strings.ToLower(req.Email)

	var user model.User
	err := database.DB.Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("登录失败：用户不存在", "email", req.Email)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("登录失败：密码错误", "email", req.Email)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	log.Info("用户登录成功", "email", user.Email, "role_id", user.RoleID)
	response.Success(c, tokenResponse(&user))
}

// Me 返回当前令牌对应的用户信息
func Me(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.Where("email = ?", payload.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrUnauthorized)
			return
		}
		log.Error("查询用户失败", "error", err, "email", payload.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, user)
}

type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword 校验旧密码后更新
func ChangePassword(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定修改密码请求失败", "error", err, "email", payload.Email)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validatePasswordStrength(req.NewPassword); err != nil {
		log.Warn("新密码强度不足", "email", payload.Email)
		response.Fail(c, response.ErrWeakPassword.WithTips(err.Error()))
		return
	}

	var user model.User
	if err := database.DB.Where("email = ?", payload.Email).First(&user).Error; err != nil {
		log.Error("查询用户失败", "error", err, "email", payload.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.OldPassword, user.Password) {
		log.Warn("旧密码错误", "email", payload.Email)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	newPassword := tools.PasswordEncrypt(req.NewPassword)
	if err := database.DB.Model(&user).Update("password", newPassword).Error; err != nil {
		log.Error("更新密码失败", "error", err, "email", payload.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户修改密码成功", "email", user.Email)
	response.Success(c)
}
