package activity

import (
	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ActivityView 对外暴露的活动信息，参与者只给邮箱列表
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants uint     `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func newActivityView(a *model.Activity) ActivityView {
	emails := make([]string, 0, len(a.Participants))
	for _, p := range a.Participants {
		emails = append(emails, p.Email)
	}
	return ActivityView{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    emails,
	}
}

// preloadParticipants 按报名顺序加载参与者
func preloadParticipants(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// ListActivities 获取全部活动，响应为 name -> 活动详情 的映射
func ListActivities(c *gin.Context) {
	var activities []model.Activity
	if err := database.DB.Preload("Participants", preloadParticipants).
		Order("name").Find(&activities).Error; err != nil {
		log.Error("获取活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make(map[string]ActivityView, len(activities))
	for i := range activities {
		result[activities[i].Name] = newActivityView(&activities[i])
	}

	response.Success(c, result)
}

// GetActivity 按名称获取单个活动
func GetActivity(c *gin.Context) {
	name := c.Param("name")

	var activity model.Activity
	err := database.DB.Preload("Participants", preloadParticipants).
		Where("name = ?", name).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrActivityNotFound)
			return
		}
		log.Error("查询活动失败", "error", err, "name", name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, newActivityView(&activity))
}
