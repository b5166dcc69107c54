package activity

import (
	"fmt"

	"school-activities-system/config"
	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Signup 报名参加活动，email 来自查询参数。
// 检查和写入放在同一事务里，重复报名由 (activity_id, email) 唯一约束兜底。
func Signup(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("email is required"))
		return
	}

	pending := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		if err := tx.Where("name = ?", name).First(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrActivityNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		// 审批模式下报名只产生待审批申请，由管理员批准后才入册
		if config.Get().Features.RequireApproval {
			pending = true
			return createMembershipRequest(tx, &activity, email)
		}

		return enroll(tx, &activity, email)
	})
	if err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			response.Fail(c, e)
			return
		}
		log.Error("报名失败", "error", err, "name", name, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if pending {
		log.Info("报名申请已提交", "name", name, "email", email)
		response.Success(c, gin.H{
			"message": fmt.Sprintf("Signup request for %s submitted for approval", name),
		})
		return
	}

	log.Info("报名成功", "name", name, "email", email)
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// enroll 容量检查加写入，必须在事务内调用。
// 重复报名先于满员判定，唯一约束仍然兜底并发写入。
func enroll(tx *gorm.DB, activity *model.Activity, email string) error {
	var enrolled int64
	if err := tx.Model(&model.Participant{}).
		Where("activity_id = ? AND email = ?", activity.ID, email).
		Count(&enrolled).Error; err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	if enrolled > 0 {
		return response.ErrAlreadySignedUp
	}

	var count int64
	if err := tx.Model(&model.Participant{}).
		Where("activity_id = ?", activity.ID).Count(&count).Error; err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	if count >= int64(activity.MaxParticipants) {
		return response.ErrActivityFull
	}

	participant := model.Participant{
		ActivityID: activity.ID,
		Email:      email,
	}
	if err := tx.Create(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ErrAlreadySignedUp
		}
		return response.ErrDatabase.WithOrigin(err)
	}
	return nil
}

// createMembershipRequest 审批模式下的报名入口
func createMembershipRequest(tx *gorm.DB, activity *model.Activity, email string) error {
	var enrolled int64
	if err := tx.Model(&model.Participant{}).
		Where("activity_id = ? AND email = ?", activity.ID, email).
		Count(&enrolled).Error; err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	if enrolled > 0 {
		return response.ErrAlreadySignedUp
	}

	var pending int64
	if err := tx.Model(&model.MembershipRequest{}).
		Where("activity_id = ? AND email = ? AND status = ?", activity.ID, email, model.RequestPending).
		Count(&pending).Error; err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	if pending > 0 {
		return response.ErrRequestPending
	}

	request := model.MembershipRequest{
		ActivityID: activity.ID,
		Email:      email,
		Status:     model.RequestPending,
	}
	if err := tx.Create(&request).Error; err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	return nil
}

// Unregister 退出活动
func Unregister(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("email is required"))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		if err := tx.Where("name = ?", name).First(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrActivityNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		result := tx.Where("activity_id = ? AND email = ?", activity.ID, email).
			Delete(&model.Participant{})
		if result.Error != nil {
			return response.ErrDatabase.WithOrigin(result.Error)
		}
		// 删除行数为 0 说明本来就没报名
		if result.RowsAffected == 0 {
			return response.ErrNotSignedUp
		}
		return nil
	})
	if err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			response.Fail(c, e)
			return
		}
		log.Error("退出活动失败", "error", err, "name", name, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("退出活动成功", "name", name, "email", email)
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}
