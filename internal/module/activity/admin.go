package activity

import (
	"fmt"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ActivityCreateReq 创建活动请求
type ActivityCreateReq struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Schedule        string `json:"schedule"`
	MaxParticipants uint   `json:"max_participants" binding:"required"`
}

// ActivityUpdateReq 更新活动请求，指针字段支持部分更新
type ActivityUpdateReq struct {
	Description     *string `json:"description"`
	Schedule        *string `json:"schedule"`
	MaxParticipants *uint   `json:"max_participants"`
}

// CreateActivity 创建活动，重名由 name 唯一约束兜底
func CreateActivity(c *gin.Context) {
	var req ActivityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建活动请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.MaxParticipants < 1 {
		response.Fail(c, response.ErrInvalidCapacity)
		return
	}

	activity := model.Activity{
		Name:            req.Name,
		Description:     req.Description,
		Schedule:        req.Schedule,
		MaxParticipants: req.MaxParticipants,
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("活动已存在", "name", req.Name)
			response.Fail(c, response.ErrActivityExists)
			return
		}
		log.Error("创建活动失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动创建成功", "name", activity.Name, "max_participants", activity.MaxParticipants)
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Activity '%s' created successfully", activity.Name),
	})
}

// UpdateActivity 更新活动字段，缩容不能低于当前报名人数
func UpdateActivity(c *gin.Context) {
	name := c.Param("name")

	var req ActivityUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新活动请求失败", "error", err, "name", name)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
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

		if req.Description != nil {
			activity.Description = *req.Description
		}
		if req.Schedule != nil {
			activity.Schedule = *req.Schedule
		}
		if req.MaxParticipants != nil {
			if *req.MaxParticipants < 1 {
				return response.ErrInvalidCapacity
			}
			var count int64
			if err := tx.Model(&model.Participant{}).
				Where("activity_id = ?", activity.ID).Count(&count).Error; err != nil {
				return response.ErrDatabase.WithOrigin(err)
			}
			if int64(*req.MaxParticipants) < count {
				return response.ErrCapacityBelowCurrent
			}
			activity.MaxParticipants = *req.MaxParticipants
		}

		if err := tx.Save(&activity).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		return nil
	})
	if err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			response.Fail(c, e)
			return
		}
		log.Error("更新活动失败", "error", err, "name", name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动更新成功", "name", name)
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Activity '%s' updated successfully", name),
	})
}

// DeleteActivity 删除活动及其报名关系和场次。
// 物理删除，腾出活动名；审批申请记录保留作为历史。
func DeleteActivity(c *gin.Context) {
	name := c.Param("name")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		if err := tx.Where("name = ?", name).First(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrActivityNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.Where("activity_id = ?", activity.ID).
			Delete(&model.Participant{}).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}

		var eventIDs []uint
		if err := tx.Model(&model.Event{}).Where("activity_id = ?", activity.ID).
			Pluck("id", &eventIDs).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		if len(eventIDs) > 0 {
			if err := tx.Where("event_id IN ?", eventIDs).
				Delete(&model.EventAttendee{}).Error; err != nil {
				return response.ErrDatabase.WithOrigin(err)
			}
			if err := tx.Unscoped().Where("activity_id = ?", activity.ID).
				Delete(&model.Event{}).Error; err != nil {
				return response.ErrDatabase.WithOrigin(err)
			}
		}

		if err := tx.Unscoped().Delete(&activity).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		return nil
	})
	if err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			response.Fail(c, e)
			return
		}
		log.Error("删除活动失败", "error", err, "name", name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动删除成功", "name", name)
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Activity '%s' deleted successfully", name),
	})
}
