package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/model"
)

type EventRepository interface {
    Create(ctx context.Context, e *model.Event) error
    Update(ctx context.Context, e *model.Event) error
    // GetByID 不存在时返回 gorm.ErrRecordNotFound
    GetByID(ctx context.Context, id string) (*model.Event, error)
    // GetOwned 校验归属：不存在或非本人活动统一返回 ErrRecordNotFound
    GetOwned(ctx context.Context, id, organizerID string) (*model.Event, error)
    // ListAll 按活动时间升序
    ListAll(ctx context.Context) ([]*model.Event, error)
    ListByOrganizer(ctx context.Context, organizerID string) ([]*model.Event, error)
    ListByIDs(ctx context.Context, ids []string) ([]*model.Event, error)
    Delete(ctx context.Context, id, organizerID string) (bool, error)
}

type eventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) EventRepository { return &eventRepository{db: db} }

func (r *eventRepository) Create(ctx context.Context, e *model.Event) error {
    return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepository) Update(ctx context.Context, e *model.Event) error {
    return r.db.WithContext(ctx).Save(e).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
    var e model.Event
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
        return nil, err
    }
    return &e, nil
}

func (r *eventRepository) GetOwned(ctx context.Context, id, organizerID string) (*model.Event, error) {
    var e model.Event
    if err := r.db.WithContext(ctx).
        Where("id = ? AND organizer_id = ?", id, organizerID).
        First(&e).Error; err != nil {
        return nil, err
    }
    return &e, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*model.Event, error) {
    var rows []*model.Event
    err := r.db.WithContext(ctx).Order("date_time ASC").Find(&rows).Error
    return rows, err
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*model.Event, error) {
    var rows []*model.Event
    err := r.db.WithContext(ctx).
        Where("organizer_id = ?", organizerID).
        Order("date_time ASC").
        Find(&rows).Error
    return rows, err
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.Event, error) {
    if len(ids) == 0 {
        return nil, nil
    }
    var rows []*model.Event
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
    return rows, err
}

func (r *eventRepository) Delete(ctx context.Context, id, organizerID string) (bool, error) {
    res := r.db.WithContext(ctx).
        Where("id = ? AND organizer_id = ?", id, organizerID).
        Delete(&model.Event{})
    if res.Error != nil {
        return false, res.Error
    }
    return res.RowsAffected > 0, nil
}
