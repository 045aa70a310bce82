package model

import "time"

// Notification 通知收件箱项（按 user_id 切分）
type Notification struct {
    ID          string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
    UserID      string   `gorm:"type:varchar(36);index:idx_notif_user;uniqueIndex:ux_notif_user_event" json:"-"`
    EventID     string   `gorm:"type:varchar(36);index:idx_notif_event;uniqueIndex:ux_notif_user_event" json:"event_id"`
    // 复合唯一键，同一活动对同一学生至多通知一次
    // ux_notif_user_event = (user_id, event_id)
    Message     string    `gorm:"type:text" json:"message"`
    MatchedTags []string  `gorm:"serializer:json;type:text" json:"matched_tags"`
    IsRead      bool      `gorm:"not null;default:false" json:"is_read"`
    CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
