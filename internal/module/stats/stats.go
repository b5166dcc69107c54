package stats

import (
	"math"
	"sort"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityStat 单个活动的占用情况
type ActivityStat struct {
	Name         string  `json:"name"`
	Participants int     `json:"participants"`
	Capacity     uint    `json:"capacity"`
	Utilization  float64 `json:"utilization"`
}

// ActivityReport 报表里的活动明细
type ActivityReport struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Schedule              string   `json:"schedule"`
	ParticipantsCount     int      `json:"participants_count"`
	MaxParticipants       uint     `json:"max_participants"`
	UtilizationPercentage float64  `json:"utilization_percentage"`
	Participants          []string `json:"participants"`
}

// utilization 计算占用率百分比，保留两位小数，容量为 0 时返回 0 避免除零
func utilization(participants int, capacity uint) float64 {
	if capacity == 0 {
		return 0
	}
	return round2(float64(participants) / float64(capacity) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadActivities() ([]model.Activity, error) {
	var activities []model.Activity
	err := database.DB.Preload("Participants", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Order("name").Find(&activities).Error
	return activities, err
}

// Statistics 全局统计：总量加各活动占用率，按占用率降序
func Statistics(c *gin.Context) {
	activities, err := loadActivities()
	if err != nil {
		log.Error("查询活动统计失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	totalParticipants := 0
	var totalCapacity uint
	details := make([]ActivityStat, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		count := len(a.Participants)
		totalParticipants += count
		totalCapacity += a.MaxParticipants
		details = append(details, ActivityStat{
			Name:         a.Name,
			Participants: count,
			Capacity:     a.MaxParticipants,
			Utilization:  utilization(count, a.MaxParticipants),
		})
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Utilization > details[j].Utilization
	})

	response.Success(c, gin.H{
		"total_activities":    len(activities),
		"total_participants":  totalParticipants,
		"total_capacity":      totalCapacity,
		"overall_utilization": utilization(totalParticipants, totalCapacity),
		"activity_details":    details,
	})
}

func buildReports(activities []model.Activity) []ActivityReport {
	reports := make([]ActivityReport, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		emails := make([]string, 0, len(a.Participants))
		for _, p := range a.Participants {
			emails = append(emails, p.Email)
		}
		reports = append(reports, ActivityReport{
			Name:                  a.Name,
			Description:           a.Description,
			Schedule:              a.Schedule,
			ParticipantsCount:     len(a.Participants),
			MaxParticipants:       a.MaxParticipants,
			UtilizationPercentage: utilization(len(a.Participants), a.MaxParticipants),
			Participants:          emails,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].UtilizationPercentage > reports[j].UtilizationPercentage
	})
	return reports
}

// Reports 完整报表：概要加活动明细，按占用率降序
func Reports(c *gin.Context) {
	activities, err := loadActivities()
	if err != nil {
		log.Error("查询活动报表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	totalParticipants := 0
	for i := range activities {
		totalParticipants += len(activities[i].Participants)
	}
	average := 0.0
	if len(activities) > 0 {
		average = round2(float64(totalParticipants) / float64(len(activities)))
	}

	response.Success(c, gin.H{
		"summary": gin.H{
			"total_activities":                  len(activities),
			"total_participants":                totalParticipants,
			"average_participants_per_activity": average,
		},
		"activities": buildReports(activities),
	})
}
