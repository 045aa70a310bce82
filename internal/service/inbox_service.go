package service

import (
    "context"
    "time"

    "github.com/d60-Lab/campus-events/internal/repository"
)

// 收件箱单次拉取上限；调用方轮询，不做流式推送
const inboxPageLimit = 100

// EventSnapshot 通知内嵌的活动快照
type EventSnapshot struct {
    ID       string    `json:"id"`
    Title    string    `json:"title"`
    DateTime time.Time `json:"date_time"`
    Tags     []string  `json:"tags"`
}

// NotificationView 返回给学生的通知条目
type NotificationView struct {
    ID          string         `json:"id"`
    EventID     string         `json:"event_id"`
    Message     string         `json:"message"`
    MatchedTags []string       `json:"matched_tags"`
    IsRead      bool           `json:"is_read"`
    CreatedAt   time.Time      `json:"created_at"`
    Event       *EventSnapshot `json:"event,omitempty"`
}

// InboxService 学生通知收件箱
type InboxService interface {
    // List 最新在前，最多 inboxPageLimit 条，每条带活动快照
    List(ctx context.Context, studentID string) ([]*NotificationView, error)
    // MarkAllRead 返回置为已读的行数
    MarkAllRead(ctx context.Context, studentID string) (int64, error)
    // MarkRead 只作用于该学生自己的通知，他人 id 静默忽略
    MarkRead(ctx context.Context, studentID string, ids []string) (int64, error)
    UnreadCount(ctx context.Context, studentID string) (int64, error)
}

type inboxService struct {
    notifRepo repository.NotificationRepository
    eventRepo repository.EventRepository
}

func NewInboxService(notifRepo repository.NotificationRepository, eventRepo repository.EventRepository) InboxService {
    return &inboxService{notifRepo: notifRepo, eventRepo: eventRepo}
}

func (s *inboxService) List(ctx context.Context, studentID string) ([]*NotificationView, error) {
    rows, err := s.notifRepo.ListByUser(ctx, studentID, inboxPageLimit)
    if err != nil {
        return nil, err
    }
    if len(rows) == 0 {
        return []*NotificationView{}, nil
    }

    ids := make([]string, 0, len(rows))
    seen := make(map[string]struct{}, len(rows))
    for _, n := range rows {
        if _, ok := seen[n.EventID]; !ok {
            seen[n.EventID] = struct{}{}
            ids = append(ids, n.EventID)
        }
    }
    events, err := s.eventRepo.ListByIDs(ctx, ids)
    if err != nil {
        return nil, err
    }
    snapshots := make(map[string]*EventSnapshot, len(events))
    for _, e := range events {
        snapshots[e.ID] = &EventSnapshot{ID: e.ID, Title: e.Title, DateTime: e.DateTime, Tags: e.Tags}
    }

    out := make([]*NotificationView, 0, len(rows))
    for _, n := range rows {
        out = append(out, &NotificationView{
            ID:          n.ID,
            EventID:     n.EventID,
            Message:     n.Message,
            MatchedTags: n.MatchedTags,
            IsRead:      n.IsRead,
            CreatedAt:   n.CreatedAt,
            Event:       snapshots[n.EventID],
        })
    }
    return out, nil
}

func (s *inboxService) MarkAllRead(ctx context.Context, studentID string) (int64, error) {
    return s.notifRepo.MarkAllRead(ctx, studentID)
}

func (s *inboxService) MarkRead(ctx context.Context, studentID string, ids []string) (int64, error) {
    return s.notifRepo.MarkRead(ctx, studentID, ids)
}

func (s *inboxService) UnreadCount(ctx context.Context, studentID string) (int64, error) {
    return s.notifRepo.CountUnread(ctx, studentID)
}
