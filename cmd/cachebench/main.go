package main

import (
    "context"
    "fmt"
    "math"
    "math/rand"
    "os"
    "sort"
    "time"

    "github.com/google/uuid"
    "github.com/redis/go-redis/v9"
    "gorm.io/driver/postgres"
    "gorm.io/gorm"

    "github.com/d60-Lab/campus-events/internal/cacheperf"
    "github.com/d60-Lab/campus-events/internal/model"
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

func getenv(k, def string) string {
    if v := os.Getenv(k); v != "" { return v }
    return def
}

func main() {
    ctx := context.Background()

    // Use PostgreSQL for realistic testing
    dsn := getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=postgres port=5434 sslmode=disable")
    db := must(gorm.Open(postgres.Open(dsn), &gorm.Config{}))

    mustDo(db.Exec("DROP TABLE IF EXISTS notifications CASCADE").Error)
    mustDo(db.AutoMigrate(&model.Notification{}))

    rdb := redis.NewClient(&redis.Options{Addr: getenv("REDIS_ADDR", "127.0.0.1:6379")})
    mustDo(rdb.FlushDB(ctx).Err())

    const (
        students     = 1000
        notifPerUser = 200
        reads        = 20000
        writeEveryN  = 50 // one mark-read per N badge reads
    )

    fmt.Println("Setting up test data...")
    ids := make([]string, students)
    for i := range ids { ids[i] = uuid.New().String() }
    rows := make([]model.Notification, 0, students*notifPerUser)
    for _, uid := range ids {
        for j := 0; j < notifPerUser; j++ {
            rows = append(rows, model.Notification{
                ID: uuid.New().String(), UserID: uid, EventID: uuid.New().String(),
                Message: "bench", IsRead: j%2 == 0, CreatedAt: time.Now(),
            })
        }
    }
    mustDo(db.CreateInBatches(&rows, 1000).Error)

    svc := cacheperf.NewUnreadCountService(db, rdb, 10*time.Minute)

    run := func(name string, read func(context.Context, string) (int64, error), invalidate bool) {
        durations := make([]time.Duration, 0, reads)
        for i := 0; i < reads; i++ {
            uid := ids[rand.Intn(len(ids))]
            if invalidate && i%writeEveryN == 0 {
                var n model.Notification
                if err := db.Where("user_id = ? AND is_read = ?", uid, false).First(&n).Error; err == nil {
                    mustDo(db.Model(&model.Notification{}).Where("id = ?", n.ID).Update("is_read", true).Error)
                }
                svc.Invalidate(ctx, uid)
            }
            st := time.Now()
            _, err := read(ctx, uid)
            mustDo(err)
            durations = append(durations, time.Since(st))
        }
        var sum time.Duration
        for _, d := range durations { sum += d }
        fmt.Printf("%-20s avg=%v p95=%v p99=%v (%s)\n",
            name, sum/time.Duration(len(durations)), pct(durations, 0.95), pct(durations, 0.99), svc.Stats())
    }

    run("no-cache", svc.CountNoCache, false)
    mustDo(rdb.FlushDB(ctx).Err())
    run("naive-ttl", svc.CountNaiveCache, false)
    mustDo(rdb.FlushDB(ctx).Err())
    run("invalidate-on-write", svc.CountInvalidating, true)
}
