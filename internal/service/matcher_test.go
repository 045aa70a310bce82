package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestFanOutMatchesInterests(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    matcher := NewMatcherService(f.interestRepo, f.notifRepo)

    require.NoError(t, f.interestRepo.Replace(ctx, "s1", []string{"Free Pizza", "Career Fair"}))
    require.NoError(t, f.interestRepo.Replace(ctx, "s2", []string{"Trivia Night"}))

    e1 := f.seedEvent(t, "org1", "Pizza & Tunes", []string{"Free Pizza", "Music"})
    created, err := matcher.FanOut(ctx, e1)
    require.NoError(t, err)
    assert.Equal(t, 1, created)

    rows, err := f.notifRepo.ListByUser(ctx, "s1", 100)
    require.NoError(t, err)
    require.Len(t, rows, 1)
    assert.Equal(t, e1.ID, rows[0].EventID)
    assert.Equal(t, []string{"Free Pizza"}, rows[0].MatchedTags)
    assert.Contains(t, rows[0].Message, "Pizza & Tunes")
    assert.Contains(t, rows[0].Message, "Free Pizza")
    assert.False(t, rows[0].IsRead)

    // 无交集的学生不收通知
    rows, err = f.notifRepo.ListByUser(ctx, "s2", 100)
    require.NoError(t, err)
    assert.Empty(t, rows)
}

func TestFanOutNoOverlapNoNotification(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    matcher := NewMatcherService(f.interestRepo, f.notifRepo)

    require.NoError(t, f.interestRepo.Replace(ctx, "s1", []string{"Free Pizza", "Career Fair"}))

    e2 := f.seedEvent(t, "org1", "Meetup", []string{"Networking"})
    created, err := matcher.FanOut(ctx, e2)
    require.NoError(t, err)
    assert.Equal(t, 0, created)

    rows, err := f.notifRepo.ListByUser(ctx, "s1", 100)
    require.NoError(t, err)
    assert.Empty(t, rows)
}

func TestFanOutEmptyTagsFastPath(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    matcher := NewMatcherService(f.interestRepo, f.notifRepo)

    require.NoError(t, f.interestRepo.Replace(ctx, "s1", []string{"Music"}))

    e := f.seedEvent(t, "org1", "Untagged", nil)
    created, err := matcher.FanOut(ctx, e)
    require.NoError(t, err)
    assert.Equal(t, 0, created)
}

func TestFanOutIdempotent(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    matcher := NewMatcherService(f.interestRepo, f.notifRepo)

    for _, s := range []string{"s1", "s2", "s3"} {
        require.NoError(t, f.interestRepo.Replace(ctx, s, []string{"Music"}))
    }
    e := f.seedEvent(t, "org1", "Concert", []string{"Music"})

    created, err := matcher.FanOut(ctx, e)
    require.NoError(t, err)
    assert.Equal(t, 3, created)

    // 重复发布：每个 (student, event) 至多一条
    created, err = matcher.FanOut(ctx, e)
    require.NoError(t, err)
    assert.Equal(t, 0, created)

    for _, s := range []string{"s1", "s2", "s3"} {
        rows, err := f.notifRepo.ListByUser(ctx, s, 100)
        require.NoError(t, err)
        assert.Len(t, rows, 1)
    }
}

func TestFanOutMatchedTagsIntersection(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    matcher := NewMatcherService(f.interestRepo, f.notifRepo)

    require.NoError(t, f.interestRepo.Replace(ctx, "s1", []string{"Free Pizza", "Music", "Gaming"}))

    e := f.seedEvent(t, "org1", "Game Night", []string{"Gaming", "Free Pizza", "Trivia Night"})
    _, err := matcher.FanOut(ctx, e)
    require.NoError(t, err)

    rows, err := f.notifRepo.ListByUser(ctx, "s1", 100)
    require.NoError(t, err)
    require.Len(t, rows, 1)
    // matched = interests ∩ event.tags，顺序跟随事件标签
    assert.ElementsMatch(t, []string{"Gaming", "Free Pizza"}, rows[0].MatchedTags)
}
