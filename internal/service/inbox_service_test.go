package service

import (
    "context"
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/campus-events/internal/model"
)

func (f *fixture) seedNotification(t *testing.T, userID, eventID string, createdAt time.Time) *model.Notification {
    t.Helper()
    n := &model.Notification{
        ID:          uuid.New().String(),
        UserID:      userID,
        EventID:     eventID,
        Message:     "m",
        MatchedTags: []string{"Music"},
        CreatedAt:   createdAt,
    }
    _, err := f.notifRepo.CreateIgnore(context.Background(), n)
    require.NoError(t, err)
    return n
}

func TestInboxListWithEventSnapshot(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    svc := NewInboxService(f.notifRepo, f.eventRepo)

    e1 := f.seedEvent(t, "org1", "Concert", []string{"Music"})
    e2 := f.seedEvent(t, "org1", "Game Night", []string{"Gaming"})
    f.seedNotification(t, "s1", e1.ID, time.Now().Add(-2*time.Minute))
    f.seedNotification(t, "s1", e2.ID, time.Now().Add(-time.Minute))

    list, err := svc.List(ctx, "s1")
    require.NoError(t, err)
    require.Len(t, list, 2)
    // 最新在前
    assert.Equal(t, e2.ID, list[0].EventID)
    require.NotNil(t, list[0].Event)
    assert.Equal(t, "Game Night", list[0].Event.Title)
    assert.Equal(t, []string{"Gaming"}, list[0].Event.Tags)
    assert.Equal(t, "Concert", list[1].Event.Title)
}

func TestInboxListEmpty(t *testing.T) {
    f := setup(t)
    svc := NewInboxService(f.notifRepo, f.eventRepo)

    list, err := svc.List(context.Background(), "s1")
    require.NoError(t, err)
    assert.NotNil(t, list)
    assert.Empty(t, list)
}

func TestInboxIsolationAcrossStudents(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    svc := NewInboxService(f.notifRepo, f.eventRepo)

    e := f.seedEvent(t, "org1", "Concert", []string{"Music"})
    f.seedNotification(t, "s1", e.ID, time.Now())
    f.seedNotification(t, "s2", e.ID, time.Now())

    list, err := svc.List(ctx, "s1")
    require.NoError(t, err)
    require.Len(t, list, 1)

    // s1 的操作动不了 s2 的行
    updated, err := svc.MarkAllRead(ctx, "s1")
    require.NoError(t, err)
    assert.EqualValues(t, 1, updated)
    cnt, err := svc.UnreadCount(ctx, "s2")
    require.NoError(t, err)
    assert.EqualValues(t, 1, cnt)
}

func TestInboxMarkReadByIDs(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    svc := NewInboxService(f.notifRepo, f.eventRepo)

    e1 := f.seedEvent(t, "org1", "A", nil)
    e2 := f.seedEvent(t, "org1", "B", nil)
    n1 := f.seedNotification(t, "s1", e1.ID, time.Now())
    f.seedNotification(t, "s1", e2.ID, time.Now())
    foreign := f.seedNotification(t, "s2", e1.ID, time.Now())

    updated, err := svc.MarkRead(ctx, "s1", []string{n1.ID, foreign.ID})
    require.NoError(t, err)
    assert.EqualValues(t, 1, updated)

    cnt, err := svc.UnreadCount(ctx, "s1")
    require.NoError(t, err)
    assert.EqualValues(t, 1, cnt)
}
