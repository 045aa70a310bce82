package main

import (
    "context"
    "fmt"
    "math"
    "math/rand"
    "os"
    "sort"
    "strconv"
    "time"

    "github.com/google/uuid"

    "github.com/d60-Lab/campus-events/config"
    "github.com/d60-Lab/campus-events/internal/model"
    "github.com/d60-Lab/campus-events/internal/repository"
    "github.com/d60-Lab/campus-events/internal/service"
    "github.com/d60-Lab/campus-events/internal/tags"
    "github.com/d60-Lab/campus-events/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }
func mustDo(err error) { if err != nil { panic(err) } }

func pct(vs []time.Duration, p float64) time.Duration {
    if len(vs) == 0 { return 0 }
    xs := append([]time.Duration(nil), vs...)
    sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
    k := int(math.Ceil(p*float64(len(xs)))) - 1
    if k < 0 { k = 0 }
    if k >= len(xs) { k = len(xs)-1 }
    return xs[k]
}

func envInt(name string, def int) int {
    if s := os.Getenv(name); s != "" {
        if v, e := strconv.Atoi(s); e == nil && v > 0 { return v }
    }
    return def
}

// Measures synchronous notification fan-out latency as the subscriber
// population grows: STUDENTS students each pick PICKS random tags, then
// EVENTS events are published with EVENTTAGS random tags apiece.
func main() {
    cfg := must(config.Load())
    db := must(database.InitDB(cfg))
    mustDo(database.Migrate(db))

    STUDENTS := envInt("STUDENTS", 20000)
    PICKS := envInt("PICKS", 3)
    EVENTS := envInt("EVENTS", 100)
    EVENTTAGS := envInt("EVENTTAGS", 2)

    interestRepo := repository.NewInterestRepository(db)
    notifRepo := repository.NewNotificationRepository(db)
    eventRepo := repository.NewEventRepository(db)
    matcher := service.NewMatcherService(interestRepo, notifRepo)

    all := tags.All()
    ctx := context.Background()

    // seed students with random interest sets
    for i := 0; i < STUDENTS; i++ {
        id := uuid.New().String()
        picked := make([]string, 0, PICKS)
        seen := make(map[int]struct{})
        for len(picked) < PICKS {
            j := rand.Intn(len(all))
            if _, dup := seen[j]; dup { continue }
            seen[j] = struct{}{}
            picked = append(picked, all[j])
        }
        if err := interestRepo.Replace(ctx, id, picked); err != nil { panic(err) }
    }

    organizer := uuid.New().String()
    fanouts := make([]time.Duration, 0, EVENTS)
    totalCreated := 0
    for i := 0; i < EVENTS; i++ {
        et := make([]string, 0, EVENTTAGS)
        seen := make(map[int]struct{})
        for len(et) < EVENTTAGS {
            j := rand.Intn(len(all))
            if _, dup := seen[j]; dup { continue }
            seen[j] = struct{}{}
            et = append(et, all[j])
        }
        e := &model.Event{
            ID: uuid.New().String(), Title: fmt.Sprintf("bench event %d", i),
            Description: "bench", Location: "campus", DateTime: time.Now().Add(24 * time.Hour),
            Tags: et, OrganizerID: organizer,
        }
        if err := eventRepo.Create(ctx, e); err != nil { panic(err) }

        st := time.Now()
        created, err := matcher.FanOut(ctx, e)
        if err != nil { panic(err) }
        fanouts = append(fanouts, time.Since(st))
        totalCreated += created
    }

    var sum time.Duration
    for _, d := range fanouts { sum += d }
    fmt.Printf("STUDENTS=%d PICKS=%d EVENTS=%d EVENTTAGS=%d\n", STUDENTS, PICKS, EVENTS, EVENTTAGS)
    fmt.Printf("Fan-out latency: avg=%v p95=%v p99=%v\n", sum/time.Duration(len(fanouts)), pct(fanouts, 0.95), pct(fanouts, 0.99))
    fmt.Printf("Notifications created: %d (avg %.1f per event)\n", totalCreated, float64(totalCreated)/float64(EVENTS))

    // idempotence check: a second pass over the same events must create nothing
    var events []*model.Event
    _ = db.Find(&events).Error
    again := 0
    for _, e := range events {
        created, err := matcher.FanOut(ctx, e)
        if err != nil { panic(err) }
        again += created
    }
    fmt.Printf("Re-run created: %d (want 0)\n", again)
}
