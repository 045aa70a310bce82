package service

import (
    "context"
    "fmt"
    "strings"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"

    "github.com/d60-Lab/campus-events/internal/model"
    "github.com/d60-Lab/campus-events/internal/repository"
    "github.com/d60-Lab/campus-events/pkg/logger"
)

// MatcherService 活动发布时按兴趣标签扇出通知。
// 幂等靠 notifications 上的 (user_id, event_id) 唯一键：
// 重复发布、重试、改标签重跑都不会给同一学生二次通知。
type MatcherService interface {
    // FanOut 对活动的当前标签集执行一轮匹配扇出，返回新建通知数。
    // 中途出错即中止本轮，已插入的通知保留（尽力而为，不回滚）。
    FanOut(ctx context.Context, event *model.Event) (int, error)
}

type matcherService struct {
    interestRepo repository.InterestRepository
    notifRepo    repository.NotificationRepository
}

func NewMatcherService(interestRepo repository.InterestRepository, notifRepo repository.NotificationRepository) MatcherService {
    return &matcherService{interestRepo: interestRepo, notifRepo: notifRepo}
}

func (s *matcherService) FanOut(ctx context.Context, event *model.Event) (int, error) {
    if len(event.Tags) == 0 {
        // 无标签活动不产生通知
        return 0, nil
    }

    // 按标签反查候选学生，同时得到各自命中的标签集
    candidates, err := s.interestRepo.ListSubscribers(ctx, event.Tags)
    if err != nil {
        return 0, fmt.Errorf("list subscribers for event %s: %w", event.ID, err)
    }

    created := 0
    now := time.Now()
    for userID, matched := range candidates {
        n := &model.Notification{
            ID:          uuid.New().String(),
            UserID:      userID,
            EventID:     event.ID,
            Message:     buildMessage(event.Title, matched),
            MatchedTags: matched,
            IsRead:      false,
            CreatedAt:   now,
        }
        inserted, err := s.notifRepo.CreateIgnore(ctx, n)
        if err != nil {
            // 中止剩余插入；本轮已落库的通知不回滚
            logger.Error("notification fanout aborted",
                zap.String("event_id", event.ID),
                zap.String("user_id", userID),
                zap.Int("created", created),
                zap.Error(err),
            )
            return created, fmt.Errorf("insert notification (event %s, user %s): %w", event.ID, userID, err)
        }
        if inserted {
            created++
        }
    }
    return created, nil
}

func buildMessage(title string, matched []string) string {
    return fmt.Sprintf("New event %q matches your interests: %s", title, strings.Join(matched, ", "))
}
