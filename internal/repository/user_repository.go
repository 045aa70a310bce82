package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/model"
)

type UserRepository interface {
    Create(ctx context.Context, u *model.User) error
    // GetByEmailRole 不存在时返回 gorm.ErrRecordNotFound
    GetByEmailRole(ctx context.Context, email, role string) (*model.User, error)
    GetByID(ctx context.Context, id string) (*model.User, error)
    ListByIDs(ctx context.Context, ids []string) ([]*model.User, error)
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
    return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) GetByEmailRole(ctx context.Context, email, role string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).
        Where("email = ? AND role = ?", email, role).
        First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
    if len(ids) == 0 {
        return nil, nil
    }
    var rows []*model.User
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
    return rows, err
}
