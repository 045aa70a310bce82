package service

import (
    "context"
    "errors"
    "time"

    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/model"
    "github.com/d60-Lab/campus-events/internal/repository"
    "github.com/d60-Lab/campus-events/pkg/jwtauth"
)

// AuthService 注册 / 登录（核心匹配逻辑的外围薄封装）
type AuthService interface {
    Register(ctx context.Context, email, password, role string) (*model.User, error)
    // Login 成功返回签名后的 JWT
    Login(ctx context.Context, email, password, role string) (string, *model.User, error)
}

type authService struct {
    userRepo  repository.UserRepository
    jwtSecret string
    jwtTTL    time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtTTL time.Duration) AuthService {
    return &authService{userRepo: userRepo, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

func (s *authService) Register(ctx context.Context, email, password, role string) (*model.User, error) {
    if _, err := s.userRepo.GetByEmailRole(ctx, email, role); err == nil {
        return nil, ErrEmailTaken
    } else if !errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, err
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }
    u := &model.User{ID: uuid.New().String(), Email: email, Password: string(hash), Role: role}
    if err := s.userRepo.Create(ctx, u); err != nil {
        return nil, err
    }
    return u, nil
}

func (s *authService) Login(ctx context.Context, email, password, role string) (string, *model.User, error) {
    u, err := s.userRepo.GetByEmailRole(ctx, email, role)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return "", nil, ErrBadCredentials
        }
        return "", nil, err
    }
    if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
        return "", nil, ErrBadCredentials
    }
    token, err := jwtauth.Generate(s.jwtSecret, s.jwtTTL, u.ID, u.Role)
    if err != nil {
        return "", nil, err
    }
    return token, u, nil
}
