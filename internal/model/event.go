package model

import "time"

// Event 活动主体（tags 为定稿列表，匹配时按集合处理）
type Event struct {
    ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Title         string    `gorm:"type:varchar(255);not null" json:"title"`
    Description   string    `gorm:"type:text;not null" json:"description"`
    Location      string    `gorm:"type:varchar(255);not null" json:"location"`
    DateTime      time.Time `gorm:"index;not null" json:"date_time"`
    GoodsProvided []string  `gorm:"serializer:json;type:text" json:"goods_provided"`
    Tags          []string  `gorm:"serializer:json;type:text" json:"tags"`
    OrganizerID   string    `gorm:"type:varchar(36);index:idx_event_organizer;not null" json:"organizer_id"`
    CreatedAt     time.Time `json:"created_at"`
    UpdatedAt     time.Time `json:"updated_at"`
}

func (Event) TableName() string { return "events" }
