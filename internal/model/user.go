package model

import "time"

// 用户角色
const (
    RoleOrganizer = "organizer"
    RoleStudent   = "student"
)

// User 账号（同一邮箱可分别注册 organizer / student 两个角色）
type User struct {
    ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Email    string `gorm:"type:varchar(255);not null;uniqueIndex:ux_user_email_role" json:"email"`
    Password string `gorm:"type:varchar(255);not null" json:"-"`
    Role     string `gorm:"type:varchar(16);not null;uniqueIndex:ux_user_email_role" json:"role"`
    // ux_user_email_role = (email, role)
    CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
