package service

import (
    "context"
    "errors"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/repository"
)

// 近期窗口：最近 7 天
const recentWindow = 7 * 24 * time.Hour

// EventMetrics 单活动互动指标，全部从原始行现算
type EventMetrics struct {
    TotalViews  int64 `json:"total_views"`
    TotalSaves  int64 `json:"total_saves"`
    RecentViews int64 `json:"recent_views"`
    RecentSaves int64 `json:"recent_saves"`
}

// EventSummaryRow 组织者汇总中的单活动行
type EventSummaryRow struct {
    EventID string `json:"event_id"`
    Title   string `json:"title"`
    Views   int64  `json:"views"`
    Saves   int64  `json:"saves"`
}

// OrganizerSummary 组织者全量汇总（零互动活动也在列，计数为 0）
type OrganizerSummary struct {
    Events        []EventSummaryRow `json:"events"`
    TotalEvents   int               `json:"total_events"`
    TotalViews    int64             `json:"total_views"`
    TotalSaves    int64             `json:"total_saves"`
    AvgViews      float64           `json:"avg_views"`
    AvgSaves      float64           `json:"avg_saves"`
}

// EngagementService 浏览/收藏打点与组织者侧聚合
type EngagementService interface {
    // TrackView 返回是否首次浏览；重复调用不会虚增计数
    TrackView(ctx context.Context, eventID, studentID string) (bool, error)
    // TrackSave / RemoveSave 幂等开关
    TrackSave(ctx context.Context, eventID, studentID string) error
    RemoveSave(ctx context.Context, eventID, studentID string) error
    // Metrics 仅限活动归属的组织者
    Metrics(ctx context.Context, organizerID, eventID string) (*EventMetrics, error)
    Summary(ctx context.Context, organizerID string) (*OrganizerSummary, error)
}

type engagementService struct {
    engagementRepo repository.EngagementRepository
    eventRepo      repository.EventRepository
    now            func() time.Time
}

func NewEngagementService(engagementRepo repository.EngagementRepository, eventRepo repository.EventRepository) EngagementService {
    return &engagementService{engagementRepo: engagementRepo, eventRepo: eventRepo, now: time.Now}
}

func (s *engagementService) TrackView(ctx context.Context, eventID, studentID string) (bool, error) {
    if err := s.ensureEventExists(ctx, eventID); err != nil {
        return false, err
    }
    return s.engagementRepo.CreateView(ctx, eventID, studentID)
}

func (s *engagementService) TrackSave(ctx context.Context, eventID, studentID string) error {
    if err := s.ensureEventExists(ctx, eventID); err != nil {
        return err
    }
    _, err := s.engagementRepo.CreateSave(ctx, eventID, studentID)
    return err
}

func (s *engagementService) RemoveSave(ctx context.Context, eventID, studentID string) error {
    // 未收藏时删除是 no-op，不报错
    _, err := s.engagementRepo.DeleteSave(ctx, eventID, studentID)
    return err
}

func (s *engagementService) Metrics(ctx context.Context, organizerID, eventID string) (*EventMetrics, error) {
    // 归属校验：非本人活动与不存在的活动同样返回 ErrNotFound
    if _, err := s.eventRepo.GetOwned(ctx, eventID, organizerID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }

    since := s.now().Add(-recentWindow)
    m := &EventMetrics{}
    var err error
    if m.TotalViews, err = s.engagementRepo.CountViews(ctx, eventID, time.Time{}); err != nil {
        return nil, err
    }
    if m.TotalSaves, err = s.engagementRepo.CountSaves(ctx, eventID, time.Time{}); err != nil {
        return nil, err
    }
    if m.RecentViews, err = s.engagementRepo.CountViews(ctx, eventID, since); err != nil {
        return nil, err
    }
    if m.RecentSaves, err = s.engagementRepo.CountSaves(ctx, eventID, since); err != nil {
        return nil, err
    }
    return m, nil
}

func (s *engagementService) Summary(ctx context.Context, organizerID string) (*OrganizerSummary, error) {
    events, err := s.eventRepo.ListByOrganizer(ctx, organizerID)
    if err != nil {
        return nil, err
    }
    summary := &OrganizerSummary{Events: []EventSummaryRow{}, TotalEvents: len(events)}
    if len(events) == 0 {
        return summary, nil
    }

    ids := make([]string, len(events))
    for i, e := range events {
        ids[i] = e.ID
    }
    views, err := s.engagementRepo.CountViewsByEvent(ctx, ids)
    if err != nil {
        return nil, err
    }
    saves, err := s.engagementRepo.CountSavesByEvent(ctx, ids)
    if err != nil {
        return nil, err
    }

    for _, e := range events {
        row := EventSummaryRow{EventID: e.ID, Title: e.Title, Views: views[e.ID], Saves: saves[e.ID]}
        summary.Events = append(summary.Events, row)
        summary.TotalViews += row.Views
        summary.TotalSaves += row.Saves
    }
    n := float64(len(events))
    summary.AvgViews = float64(summary.TotalViews) / n
    summary.AvgSaves = float64(summary.TotalSaves) / n
    return summary, nil
}

func (s *engagementService) ensureEventExists(ctx context.Context, eventID string) error {
    if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrNotFound
        }
        return err
    }
    return nil
}
