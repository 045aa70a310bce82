package model

import "time"

// StudentInterest 学生对某个标签的订阅（整套随资料保存整体替换）
type StudentInterest struct {
    ID     string `gorm:"primaryKey;type:varchar(36)"`
    UserID string `gorm:"type:varchar(36);index:idx_interest_user;index:idx_interest_pair,unique;not null"`
    Tag    string `gorm:"type:varchar(64);not null;index:idx_interest_tag;index:idx_interest_pair,unique"`
    // 复合唯一键，同一标签不重复订阅
    // idx_interest_pair = (user_id, tag)
    // idx_interest_tag 供匹配器按标签反查候选学生
    CreatedAt time.Time
}

func (StudentInterest) TableName() string { return "student_interests" }
