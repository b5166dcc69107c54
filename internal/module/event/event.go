package event

import (
	"fmt"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// EventCreateReq 创建场次请求
type EventCreateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Capacity    uint   `json:"capacity" binding:"required"`
}

// EventUpdateReq 更新场次请求，指针字段支持部分更新
type EventUpdateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Capacity    *uint   `json:"capacity"`
}

// ListEvents 列出活动下的全部场次
func ListEvents(c *gin.Context) {
	name := c.Param("name")

	var activity model.Activity
	if err := database.DB.Where("name = ?", name).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrActivityNotFound)
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var events []model.Event
	if err := database.DB.Preload("Attendees", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Where("activity_id = ?", activity.ID).Order("date, time").Find(&events).Error; err != nil {
		log.Error("查询场次列表失败", "error", err, "name", name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, events)
}

// CreateEvent 在活动下创建场次
func CreateEvent(c *gin.Context) {
	name := c.Param("name")

	var req EventCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建场次请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Capacity < 1 {
		response.Fail(c, response.ErrInvalidCapacity)
		return
	}

	var activity model.Activity
	if err := database.DB.Where("name = ?", name).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrActivityNotFound)
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	event := model.Event{
		ActivityID:  activity.ID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    req.Capacity,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		log.Error("创建场次失败", "error", err, "activity", name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("场次创建成功", "activity", name, "title", event.Title, "event_id", event.ID)
	response.Success(c, gin.H{"event_id": event.ID})
}

// UpdateEvent 更新场次字段，缩容不能低于当前出席人数
func UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var req EventUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新场次请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrEventNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if req.Title != nil {
			event.Title = *req.Title
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.Date != nil {
			event.Date = *req.Date
		}
		if req.Time != nil {
			event.Time = *req.Time
		}
		if req.Location != nil {
			event.Location = *req.Location
		}
		if req.Capacity != nil {
			if *req.Capacity < 1 {
				return response.ErrInvalidCapacity
			}
			var count int64
			if err := tx.Model(&model.EventAttendee{}).
				Where("event_id = ?", event.ID).Count(&count).Error; err != nil {
				return response.ErrDatabase.WithOrigin(err)
			}
			if int64(*req.Capacity) < count {
				return response.ErrCapacityBelowCurrent
			}
			event.Capacity = *req.Capacity
		}

		if err := tx.Save(&event).Error; err != nil {
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
		log.Error("更新场次失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("场次更新成功", "id", id)
	response.Success(c)
}

// DeleteEvent 删除场次及出席记录
func DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrEventNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		if err := tx.Where("event_id = ?", event.ID).
			Delete(&model.EventAttendee{}).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		if err := tx.Unscoped().Delete(&event).Error; err != nil {
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
		log.Error("删除场次失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("场次删除成功", "id", id)
	response.Success(c)
}

// Attend 报名出席场次，与活动报名走同样的事务加唯一约束套路
func Attend(c *gin.Context) {
	id := c.Param("id")
	email := c.Query("email")
	if email == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("email is required"))
		return
	}

	var title string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrEventNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}
		title = event.Title

		// 重复报名先于满员判定
		var attending int64
		if err := tx.Model(&model.EventAttendee{}).
			Where("event_id = ? AND email = ?", event.ID, email).
			Count(&attending).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		if attending > 0 {
			return response.ErrAlreadyAttending
		}

		var count int64
		if err := tx.Model(&model.EventAttendee{}).
			Where("event_id = ?", event.ID).Count(&count).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		if count >= int64(event.Capacity) {
			return response.ErrEventFull
		}

		attendee := model.EventAttendee{
			EventID: event.ID,
			Email:   email,
		}
		if err := tx.Create(&attendee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return response.ErrAlreadyAttending
			}
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
		log.Error("场次报名失败", "error", err, "id", id, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("场次报名成功", "id", id, "email", email)
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Signed up %s for event %s", email, title),
	})
}

// Unattend 取消出席
func Unattend(c *gin.Context) {
	id := c.Param("id")
	email := c.Query("email")
	if email == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("email is required"))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrEventNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}

		result := tx.Where("event_id = ? AND email = ?", event.ID, email).
			Delete(&model.EventAttendee{})
		if result.Error != nil {
			return response.ErrDatabase.WithOrigin(result.Error)
		}
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
		log.Error("取消场次报名失败", "error", err, "id", id, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("取消场次报名成功", "id", id, "email", email)
	response.Success(c)
}
