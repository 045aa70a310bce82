package repository

import (
    "context"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/campus-events/internal/model"
)

type EngagementRepository interface {
    // CreateView 记录首次浏览；重复浏览为 no-op，返回是否新增
    CreateView(ctx context.Context, eventID, studentID string) (bool, error)
    // CreateSave 收藏；重复收藏为 no-op，返回是否新增
    CreateSave(ctx context.Context, eventID, studentID string) (bool, error)
    // DeleteSave 取消收藏；未收藏时为 no-op，返回是否删除了行
    DeleteSave(ctx context.Context, eventID, studentID string) (bool, error)
    // CountViews / CountSaves 从原始行现算，since 非零则只统计窗口内
    CountViews(ctx context.Context, eventID string, since time.Time) (int64, error)
    CountSaves(ctx context.Context, eventID string, since time.Time) (int64, error)
    // CountViewsByEvent / CountSavesByEvent 供组织者汇总，一次 group by 出全量
    CountViewsByEvent(ctx context.Context, eventIDs []string) (map[string]int64, error)
    CountSavesByEvent(ctx context.Context, eventIDs []string) (map[string]int64, error)
}

type engagementRepository struct{ db *gorm.DB }

func NewEngagementRepository(db *gorm.DB) EngagementRepository { return &engagementRepository{db: db} }

func (r *engagementRepository) CreateView(ctx context.Context, eventID, studentID string) (bool, error) {
    v := &model.EventView{ID: uuid.New().String(), EventID: eventID, StudentID: studentID, ViewedAt: time.Now()}
    res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(v)
    if res.Error != nil {
        return false, res.Error
    }
    return res.RowsAffected > 0, nil
}

func (r *engagementRepository) CreateSave(ctx context.Context, eventID, studentID string) (bool, error) {
    s := &model.EventSave{ID: uuid.New().String(), EventID: eventID, StudentID: studentID, SavedAt: time.Now()}
    res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(s)
    if res.Error != nil {
        return false, res.Error
    }
    return res.RowsAffected > 0, nil
}

func (r *engagementRepository) DeleteSave(ctx context.Context, eventID, studentID string) (bool, error) {
    res := r.db.WithContext(ctx).
        Where("event_id = ? AND student_id = ?", eventID, studentID).
        Delete(&model.EventSave{})
    if res.Error != nil {
        return false, res.Error
    }
    return res.RowsAffected > 0, nil
}

func (r *engagementRepository) CountViews(ctx context.Context, eventID string, since time.Time) (int64, error) {
    q := r.db.WithContext(ctx).Model(&model.EventView{}).Where("event_id = ?", eventID)
    if !since.IsZero() {
        q = q.Where("viewed_at >= ?", since)
    }
    var cnt int64
    err := q.Count(&cnt).Error
    return cnt, err
}

func (r *engagementRepository) CountSaves(ctx context.Context, eventID string, since time.Time) (int64, error) {
    q := r.db.WithContext(ctx).Model(&model.EventSave{}).Where("event_id = ?", eventID)
    if !since.IsZero() {
        q = q.Where("saved_at >= ?", since)
    }
    var cnt int64
    err := q.Count(&cnt).Error
    return cnt, err
}

type eventCount struct {
    EventID string
    Cnt     int64
}

func (r *engagementRepository) CountViewsByEvent(ctx context.Context, eventIDs []string) (map[string]int64, error) {
    return r.groupCount(ctx, &model.EventView{}, eventIDs)
}

func (r *engagementRepository) CountSavesByEvent(ctx context.Context, eventIDs []string) (map[string]int64, error) {
    return r.groupCount(ctx, &model.EventSave{}, eventIDs)
}

func (r *engagementRepository) groupCount(ctx context.Context, mdl interface{}, eventIDs []string) (map[string]int64, error) {
    out := make(map[string]int64, len(eventIDs))
    if len(eventIDs) == 0 {
        return out, nil
    }
    var rows []eventCount
    err := r.db.WithContext(ctx).
        Model(mdl).
        Select("event_id, COUNT(*) AS cnt").
        Where("event_id IN ?", eventIDs).
        Group("event_id").
        Scan(&rows).Error
    if err != nil {
        return nil, err
    }
    for _, row := range rows {
        out[row.EventID] = row.Cnt
    }
    return out, nil
}
