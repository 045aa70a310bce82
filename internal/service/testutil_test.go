package service

import (
    "context"
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/model"
    "github.com/d60-Lab/campus-events/internal/repository"
)

type fixture struct {
    db             *gorm.DB
    userRepo       repository.UserRepository
    eventRepo      repository.EventRepository
    interestRepo   repository.InterestRepository
    notifRepo      repository.NotificationRepository
    engagementRepo repository.EngagementRepository
}

func setup(t *testing.T) *fixture {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(
        &model.User{},
        &model.Event{},
        &model.StudentInterest{},
        &model.Notification{},
        &model.EventView{},
        &model.EventSave{},
    ); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    return &fixture{
        db:             db,
        userRepo:       repository.NewUserRepository(db),
        eventRepo:      repository.NewEventRepository(db),
        interestRepo:   repository.NewInterestRepository(db),
        notifRepo:      repository.NewNotificationRepository(db),
        engagementRepo: repository.NewEngagementRepository(db),
    }
}

func (f *fixture) seedEvent(t *testing.T, organizerID, title string, tagList []string) *model.Event {
    t.Helper()
    e := &model.Event{
        ID:          uuid.New().String(),
        Title:       title,
        Description: "d",
        Location:    "campus",
        DateTime:    time.Now().Add(48 * time.Hour),
        Tags:        tagList,
        OrganizerID: organizerID,
    }
    require.NoError(t, f.eventRepo.Create(context.Background(), e))
    return e
}
