package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/model"
)

type InterestRepository interface {
    // ListByUser 返回学生订阅的全部标签（从未保存过则为空）
    ListByUser(ctx context.Context, userID string) ([]string, error)
    // Replace 整体替换：单事务内先删后插，失败则原集合完整保留
    Replace(ctx context.Context, userID string, tagList []string) error
    // ListSubscribers 按标签反查订阅者：返回 user_id → 命中的标签（按入参顺序）
    ListSubscribers(ctx context.Context, tagList []string) (map[string][]string, error)
}

type interestRepository struct{ db *gorm.DB }

func NewInterestRepository(db *gorm.DB) InterestRepository { return &interestRepository{db: db} }

func (r *interestRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
    var rows []model.StudentInterest
    if err := r.db.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at, tag").
        Find(&rows).Error; err != nil {
        return nil, err
    }
    out := make([]string, len(rows))
    for i, row := range rows {
        out[i] = row.Tag
    }
    return out, nil
}

func (r *interestRepository) Replace(ctx context.Context, userID string, tagList []string) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("user_id = ?", userID).Delete(&model.StudentInterest{}).Error; err != nil {
            return err
        }
        if len(tagList) == 0 {
            // 清空订阅是合法输入
            return nil
        }
        rows := make([]model.StudentInterest, len(tagList))
        for i, t := range tagList {
            rows[i] = model.StudentInterest{ID: uuid.New().String(), UserID: userID, Tag: t}
        }
        return tx.Create(&rows).Error
    })
}

func (r *interestRepository) ListSubscribers(ctx context.Context, tagList []string) (map[string][]string, error) {
    if len(tagList) == 0 {
        return map[string][]string{}, nil
    }
    var rows []model.StudentInterest
    // 走 idx_interest_tag，避免全表扫学生
    if err := r.db.WithContext(ctx).
        Where("tag IN ?", tagList).
        Find(&rows).Error; err != nil {
        return nil, err
    }
    hit := make(map[string]map[string]struct{})
    for _, row := range rows {
        if hit[row.UserID] == nil {
            hit[row.UserID] = make(map[string]struct{})
        }
        hit[row.UserID][row.Tag] = struct{}{}
    }
    out := make(map[string][]string, len(hit))
    for userID, set := range hit {
        matched := make([]string, 0, len(set))
        for _, t := range tagList {
            if _, ok := set[t]; ok {
                matched = append(matched, t)
            }
        }
        out[userID] = matched
    }
    return out, nil
}
