package service

import (
    "context"

    "go.uber.org/zap"

    "github.com/d60-Lab/campus-events/internal/repository"
    "github.com/d60-Lab/campus-events/internal/tags"
    "github.com/d60-Lab/campus-events/pkg/logger"
)

// InterestService 学生兴趣订阅
type InterestService interface {
    Get(ctx context.Context, studentID string) ([]string, error)
    // Replace 整体替换订阅集；空集合法（清空），校验失败不产生任何变更
    Replace(ctx context.Context, studentID string, tagList []string) error
}

type interestService struct {
    interestRepo repository.InterestRepository
}

func NewInterestService(interestRepo repository.InterestRepository) InterestService {
    return &interestService{interestRepo: interestRepo}
}

func (s *interestService) Get(ctx context.Context, studentID string) ([]string, error) {
    return s.interestRepo.ListByUser(ctx, studentID)
}

func (s *interestService) Replace(ctx context.Context, studentID string, tagList []string) error {
    if bad, ok := tags.Validate(tagList); !ok {
        logger.Warn("interests rejected", zap.String("user_id", studentID), zap.String("tag", bad))
        return ErrInvalidTag
    }
    return s.interestRepo.Replace(ctx, studentID, tagList)
}
