package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/campus-events/internal/model"
    "github.com/d60-Lab/campus-events/pkg/jwtauth"
)

func TestRegisterAndLogin(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    svc := NewAuthService(f.userRepo, "test-secret", time.Hour)

    u, err := svc.Register(ctx, "a@campus.edu", "secret1", model.RoleStudent)
    require.NoError(t, err)
    assert.Equal(t, model.RoleStudent, u.Role)
    assert.NotEqual(t, "secret1", u.Password)

    // 同邮箱同角色重复注册被拒
    _, err = svc.Register(ctx, "a@campus.edu", "secret1", model.RoleStudent)
    assert.ErrorIs(t, err, ErrEmailTaken)
    // 同邮箱另一角色允许
    _, err = svc.Register(ctx, "a@campus.edu", "secret1", model.RoleOrganizer)
    require.NoError(t, err)

    token, lu, err := svc.Login(ctx, "a@campus.edu", "secret1", model.RoleStudent)
    require.NoError(t, err)
    assert.Equal(t, u.ID, lu.ID)
    claims, err := jwtauth.Parse("test-secret", token)
    require.NoError(t, err)
    assert.Equal(t, u.ID, claims.UserID)
    assert.Equal(t, model.RoleStudent, claims.Role)

    _, _, err = svc.Login(ctx, "a@campus.edu", "wrong", model.RoleStudent)
    assert.ErrorIs(t, err, ErrBadCredentials)
    _, _, err = svc.Login(ctx, "nobody@campus.edu", "secret1", model.RoleStudent)
    assert.ErrorIs(t, err, ErrBadCredentials)
}
