package model

const (
	RoleStudent = 0
	RoleAdmin   = 1
)

type User struct {
	Model
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID   int    `gorm:"default:0;not null" json:"role_id"`
	NickName string `gorm:"type:varchar(50);not null" json:"nick_name"`
}
