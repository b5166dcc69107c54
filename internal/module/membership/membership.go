package membership

import (
	"time"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListRequestsReq 查询参数，均可选
type ListRequestsReq struct {
	Status   string `form:"status"`
	Activity string `form:"activity"` // 活动名称
}

// RequestView 对外暴露的申请信息，活动以名称给出
type RequestView struct {
	ID        uint      `json:"id"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func newRequestViews(requests []model.MembershipRequest) ([]RequestView, error) {
	names := make(map[uint]string)
	if len(requests) > 0 {
		ids := make([]uint, 0, len(requests))
		for _, r := range requests {
			ids = append(ids, r.ActivityID)
		}
		var activities []model.Activity
		if err := database.DB.Where("id IN ?", ids).Find(&activities).Error; err != nil {
			return nil, err
		}
		for _, a := range activities {
			names[a.ID] = a.Name
		}
	}

	views := make([]RequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, RequestView{
			ID:        r.ID,
			Activity:  names[r.ActivityID], // 活动已删除时为空串，申请留作历史
			Email:     r.Email,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		})
	}
	return views, nil
}

// ListRequests 查询报名申请
func ListRequests(c *gin.Context) {
	var req ListRequestsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	query := database.DB.Model(&model.MembershipRequest{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Activity != "" {
		var activity model.Activity
		if err := database.DB.Where("name = ?", req.Activity).First(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.ErrActivityNotFound)
				return
			}
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		query = query.Where("activity_id = ?", activity.ID)
	}

	var requests []model.MembershipRequest
	if err := query.Order("id").Find(&requests).Error; err != nil {
		log.Error("查询报名申请失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	views, err := newRequestViews(requests)
	if err != nil {
		log.Error("查询申请关联活动失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, views)
}

// ApproveRequest 批准申请并入册，容量在事务内重新校验
func ApproveRequest(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var request model.MembershipRequest
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrRequestNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}
		if request.Status != model.RequestPending {
			return response.ErrRequestNotPending
		}

		var activity model.Activity
		if err := tx.First(&activity, "id = ?", request.ActivityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrActivityNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
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
			Email:      request.Email,
		}
		if err := tx.Create(&participant).Error; err != nil {
			// 申请挂起期间已经通过别的途径报上名，直接当作批准完成
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return response.ErrDatabase.WithOrigin(err)
			}
		}

		request.Status = model.RequestApproved
		if err := tx.Save(&request).Error; err != nil {
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
		log.Error("批准报名申请失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("报名申请已批准", "id", id)
	response.Success(c, gin.H{"message": "Membership request approved"})
}

// RejectRequest 驳回申请，名册不变
func RejectRequest(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var request model.MembershipRequest
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.ErrRequestNotFound
			}
			return response.ErrDatabase.WithOrigin(err)
		}
		if request.Status != model.RequestPending {
			return response.ErrRequestNotPending
		}

		request.Status = model.RequestRejected
		if err := tx.Save(&request).Error; err != nil {
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
		log.Error("驳回报名申请失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("报名申请已驳回", "id", id)
	response.Success(c, gin.H{"message": "Membership request rejected"})
}
