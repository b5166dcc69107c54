package model

import "time"

// Event 隶属于某个活动的线下场次
type Event struct {
	Model
	ActivityID  uint            `gorm:"index;not null" json:"activity_id"`
	Title       string          `gorm:"type:varchar(100);not null" json:"title"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	Date        string          `gorm:"type:varchar(20);not null" json:"date"` // YYYY-MM-DD
	Time        string          `gorm:"type:varchar(20)" json:"time"`          // HH:MM
	Location    string          `gorm:"type:varchar(100)" json:"location"`
	Capacity    uint            `gorm:"not null" json:"capacity"`
	Attendees   []EventAttendee `gorm:"foreignKey:EventID" json:"attendees"`
}

// EventAttendee 同 Participant，退出即物理删除
type EventAttendee struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	EventID  uint      `gorm:"uniqueIndex:idx_event_email;not null" json:"event_id"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex:idx_event_email;not null" json:"email"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
