package repository

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestReplaceThenList(t *testing.T) {
    db := setupDB(t)
    repo := NewInterestRepository(db)
    ctx := context.Background()

    require.NoError(t, repo.Replace(ctx, "s1", []string{"Free Pizza", "Career Fair"}))
    got, err := repo.ListByUser(ctx, "s1")
    require.NoError(t, err)
    assert.ElementsMatch(t, []string{"Free Pizza", "Career Fair"}, got)

    // 整体替换：与旧集合无关
    require.NoError(t, repo.Replace(ctx, "s1", []string{"Music"}))
    got, err = repo.ListByUser(ctx, "s1")
    require.NoError(t, err)
    assert.Equal(t, []string{"Music"}, got)

    // 空集合法，清空订阅
    require.NoError(t, repo.Replace(ctx, "s1", nil))
    got, err = repo.ListByUser(ctx, "s1")
    require.NoError(t, err)
    assert.Empty(t, got)
}

func TestListByUserNeverSaved(t *testing.T) {
    db := setupDB(t)
    repo := NewInterestRepository(db)

    got, err := repo.ListByUser(context.Background(), "ghost")
    require.NoError(t, err)
    assert.Empty(t, got)
}

func TestListSubscribers(t *testing.T) {
    db := setupDB(t)
    repo := NewInterestRepository(db)
    ctx := context.Background()

    require.NoError(t, repo.Replace(ctx, "s1", []string{"Free Pizza", "Career Fair"}))
    require.NoError(t, repo.Replace(ctx, "s2", []string{"Music"}))
    require.NoError(t, repo.Replace(ctx, "s3", []string{"Networking"}))

    subs, err := repo.ListSubscribers(ctx, []string{"Free Pizza", "Music"})
    require.NoError(t, err)
    require.Len(t, subs, 2)
    assert.Equal(t, []string{"Free Pizza"}, subs["s1"])
    assert.Equal(t, []string{"Music"}, subs["s2"])
    assert.NotContains(t, subs, "s3")

    // 空标签集不查任何人
    subs, err = repo.ListSubscribers(ctx, nil)
    require.NoError(t, err)
    assert.Empty(t, subs)
}

func TestListSubscribersMatchedOrder(t *testing.T) {
    db := setupDB(t)
    repo := NewInterestRepository(db)
    ctx := context.Background()

    require.NoError(t, repo.Replace(ctx, "s1", []string{"Music", "Free Pizza", "Gaming"}))

    // 命中标签按入参顺序返回
    subs, err := repo.ListSubscribers(ctx, []string{"Free Pizza", "Gaming", "Trivia Night"})
    require.NoError(t, err)
    assert.Equal(t, []string{"Free Pizza", "Gaming"}, subs["s1"])
}
