package service

import (
    "context"
    "errors"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/model"
    "github.com/d60-Lab/campus-events/internal/repository"
    "github.com/d60-Lab/campus-events/internal/tags"
    "github.com/d60-Lab/campus-events/pkg/logger"
)

// EventInput 创建/更新活动的结构化输入
type EventInput struct {
    Title         string
    Description   string
    Location      string
    DateTime      time.Time
    GoodsProvided []string
    Tags          []string
}

// EventListItem 学生列表页条目：活动 + 主办方邮箱
type EventListItem struct {
    *model.Event
    OrganizerEmail string `json:"organizer_email"`
}

// EventService 活动 CRUD；发布与改标签时触发通知扇出
type EventService interface {
    Create(ctx context.Context, organizerID string, in EventInput) (*model.Event, error)
    Update(ctx context.Context, organizerID, eventID string, in EventInput) (*model.Event, error)
    ListAll(ctx context.Context) ([]*EventListItem, error)
    ListMine(ctx context.Context, organizerID string) ([]*model.Event, error)
    Delete(ctx context.Context, organizerID, eventID string) error
}

type eventService struct {
    eventRepo repository.EventRepository
    userRepo  repository.UserRepository
    matcher   MatcherService
}

func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, matcher MatcherService) EventService {
    return &eventService{eventRepo: eventRepo, userRepo: userRepo, matcher: matcher}
}

func (s *eventService) Create(ctx context.Context, organizerID string, in EventInput) (*model.Event, error) {
    if bad, ok := tags.Validate(in.Tags); !ok {
        logger.Warn("event create rejected", zap.String("tag", bad))
        return nil, ErrInvalidTag
    }
    e := &model.Event{
        ID:            uuid.New().String(),
        Title:         in.Title,
        Description:   in.Description,
        Location:      in.Location,
        DateTime:      in.DateTime,
        GoodsProvided: in.GoodsProvided,
        Tags:          in.Tags,
        OrganizerID:   organizerID,
    }
    if err := s.eventRepo.Create(ctx, e); err != nil {
        return nil, err
    }
    s.runFanOut(ctx, e)
    return e, nil
}

func (s *eventService) Update(ctx context.Context, organizerID, eventID string, in EventInput) (*model.Event, error) {
    if bad, ok := tags.Validate(in.Tags); !ok {
        logger.Warn("event update rejected", zap.String("tag", bad))
        return nil, ErrInvalidTag
    }
    e, err := s.eventRepo.GetOwned(ctx, eventID, organizerID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }

    tagsChanged := !sameTagSet(e.Tags, in.Tags)

    e.Title = in.Title
    e.Description = in.Description
    e.Location = in.Location
    e.DateTime = in.DateTime
    e.GoodsProvided = in.GoodsProvided
    e.Tags = in.Tags
    if err := s.eventRepo.Update(ctx, e); err != nil {
        return nil, err
    }

    // 标签集变化才重跑匹配；已通知过的学生由唯一键自然跳过，不二次通知
    if tagsChanged {
        s.runFanOut(ctx, e)
    }
    return e, nil
}

// runFanOut 通知扇出是发布的副作用：失败只记日志，不影响发布结果
func (s *eventService) runFanOut(ctx context.Context, e *model.Event) {
    created, err := s.matcher.FanOut(ctx, e)
    if err != nil {
        logger.Error("event fanout failed",
            zap.String("event_id", e.ID),
            zap.Int("created", created),
            zap.Error(err),
        )
        return
    }
    logger.Info("event fanout done", zap.String("event_id", e.ID), zap.Int("created", created))
}

func (s *eventService) ListAll(ctx context.Context) ([]*EventListItem, error) {
    events, err := s.eventRepo.ListAll(ctx)
    if err != nil {
        return nil, err
    }
    ids := make([]string, 0, len(events))
    seen := make(map[string]struct{}, len(events))
    for _, e := range events {
        if _, ok := seen[e.OrganizerID]; !ok {
            seen[e.OrganizerID] = struct{}{}
            ids = append(ids, e.OrganizerID)
        }
    }
    organizers, err := s.userRepo.ListByIDs(ctx, ids)
    if err != nil {
        return nil, err
    }
    emails := make(map[string]string, len(organizers))
    for _, u := range organizers {
        emails[u.ID] = u.Email
    }

    out := make([]*EventListItem, len(events))
    for i, e := range events {
        out[i] = &EventListItem{Event: e, OrganizerEmail: emails[e.OrganizerID]}
    }
    return out, nil
}

func (s *eventService) ListMine(ctx context.Context, organizerID string) ([]*model.Event, error) {
    return s.eventRepo.ListByOrganizer(ctx, organizerID)
}

func (s *eventService) Delete(ctx context.Context, organizerID, eventID string) error {
    ok, err := s.eventRepo.Delete(ctx, eventID, organizerID)
    if err != nil {
        return err
    }
    if !ok {
        return ErrNotFound
    }
    return nil
}

func sameTagSet(a, b []string) bool {
    if len(a) != len(b) {
        return false
    }
    set := make(map[string]struct{}, len(a))
    for _, t := range a {
        set[t] = struct{}{}
    }
    for _, t := range b {
        if _, ok := set[t]; !ok {
            return false
        }
    }
    return true
}
