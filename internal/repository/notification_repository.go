package repository

import (
    "context"

    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/campus-events/internal/model"
)

type NotificationRepository interface {
    // CreateIgnore 插入一条通知；(user, event) 已存在则静默跳过，返回是否新插入
    CreateIgnore(ctx context.Context, n *model.Notification) (bool, error)
    // ListByUser 按创建时间倒序返回最近 limit 条
    ListByUser(ctx context.Context, userID string, limit int) ([]*model.Notification, error)
    // MarkAllRead 将该学生当前未读的通知置为已读，返回更新行数
    MarkAllRead(ctx context.Context, userID string) (int64, error)
    // MarkRead 按 id 列表置已读，只作用于该学生自己的行
    MarkRead(ctx context.Context, userID string, ids []string) (int64, error)
    CountUnread(ctx context.Context, userID string) (int64, error)
}

type notificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
    return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateIgnore(ctx context.Context, n *model.Notification) (bool, error) {
    // 幂等靠 ux_notif_user_event，不在应用层预查
    res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(n)
    if res.Error != nil {
        return false, res.Error
    }
    return res.RowsAffected > 0, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Notification, error) {
    var rows []*model.Notification
    err := r.db.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at DESC, id DESC").
        Limit(limit).
        Find(&rows).Error
    return rows, err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
    // 只改本次可见的未读行；并发期间新插入的行不受影响
    res := r.db.WithContext(ctx).
        Model(&model.Notification{}).
        Where("user_id = ? AND is_read = ?", userID, false).
        Update("is_read", true)
    return res.RowsAffected, res.Error
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID string, ids []string) (int64, error) {
    if len(ids) == 0 {
        return 0, nil
    }
    // 按 user_id 限定范围，他人的通知 id 静默忽略
    res := r.db.WithContext(ctx).
        Model(&model.Notification{}).
        Where("user_id = ? AND id IN ?", userID, ids).
        Update("is_read", true)
    return res.RowsAffected, res.Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Notification{}).
        Where("user_id = ? AND is_read = ?", userID, false).
        Count(&cnt).Error
    return cnt, err
}
