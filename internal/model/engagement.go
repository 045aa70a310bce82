package model

import "time"

// EventView 浏览记录，同一 (event, student) 只记首次
type EventView struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    EventID   string    `gorm:"type:varchar(36);index:idx_view_event;index:idx_view_pair,unique;not null"`
    StudentID string    `gorm:"type:varchar(36);not null;index:idx_view_pair,unique"`
    // idx_view_pair = (event_id, student_id)
    ViewedAt  time.Time `gorm:"index"`
}

func (EventView) TableName() string { return "event_views" }

// EventSave 收藏记录，存在即“感兴趣”，可幂等增删
type EventSave struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    EventID   string    `gorm:"type:varchar(36);index:idx_save_event;index:idx_save_pair,unique;not null"`
    StudentID string    `gorm:"type:varchar(36);not null;index:idx_save_pair,unique"`
    // idx_save_pair = (event_id, student_id)
    SavedAt   time.Time `gorm:"index"`
}

func (EventSave) TableName() string { return "event_saves" }
