package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestInterestReplaceValidation(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    svc := NewInterestService(f.interestRepo)

    require.NoError(t, svc.Replace(ctx, "s1", []string{"Free Pizza"}))

    // 目录外标签整单拒绝，不产生部分变更
    err := svc.Replace(ctx, "s1", []string{"Music", "Not A Tag"})
    assert.ErrorIs(t, err, ErrInvalidTag)
    got, err := svc.Get(ctx, "s1")
    require.NoError(t, err)
    assert.Equal(t, []string{"Free Pizza"}, got)

    // 重复标签同样拒绝
    err = svc.Replace(ctx, "s1", []string{"Music", "Music"})
    assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestInterestReplaceEmptyClears(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    svc := NewInterestService(f.interestRepo)

    require.NoError(t, svc.Replace(ctx, "s1", []string{"Free Pizza", "Career Fair"}))
    require.NoError(t, svc.Replace(ctx, "s1", []string{}))

    got, err := svc.Get(ctx, "s1")
    require.NoError(t, err)
    assert.Empty(t, got)
}
