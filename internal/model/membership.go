package model

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// MembershipRequest 审批模式下的报名申请，只变更状态，从不删除
type MembershipRequest struct {
	Model
	ActivityID uint   `gorm:"index;not null" json:"activity_id"`
	Email      string `gorm:"type:varchar(255);not null" json:"email"`
	Status     string `gorm:"type:varchar(20);default:pending;not null" json:"status"`
}
