package model

import "time"

type Activity struct {
	Model
	Name            string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 活动名称，业务主键
	Description     string        `gorm:"type:varchar(255)" json:"description"`               // 活动描述
	Schedule        string        `gorm:"type:varchar(255)" json:"schedule"`                  // 活动时间安排
	MaxParticipants uint          `gorm:"not null" json:"max_participants"`                   // 容量上限，至少为 1
	Participants    []Participant `gorm:"foreignKey:ActivityID" json:"participants"`
}

// Participant 活动报名关系，(activity_id, email) 唯一约束兜底防止重复报名。
// 退出即物理删除，不走软删除，否则同一邮箱无法重新报名。
type Participant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActivityID uint      `gorm:"uniqueIndex:idx_activity_email;not null" json:"activity_id"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex:idx_activity_email;not null" json:"email"`
	JoinedAt   time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
