package main // Entry point package

import (
    "log"
    "os"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/config"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/database"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/handler"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/middleware"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/repository"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/router"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/schedule"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/service"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/utils"
)

func main() {
    // Load .env when present; real deployments set the environment
    // directly and the file is absent.
    _ = godotenv.Load()

    cfg := config.Load()

    // Resolve the admin passphrase hash.  Deployments should set
    // ADMIN_PASSPHRASE_HASH; ADMIN_PASSPHRASE is hashed at startup as a
    // convenience for local runs.
    passHash := cfg.AdminPassHash
    if passHash == "" {
        plain := os.Getenv("ADMIN_PASSPHRASE")
        if plain == "" {
            log.Fatal("set ADMIN_PASSPHRASE_HASH or ADMIN_PASSPHRASE")
        }
        h, err := utils.HashPassphrase(plain, 10)
        if err != nil {
            log.Fatalf("hash admin passphrase: %v", err)
        }
        passHash = h
    }

    // Select the reservation backend: MySQL when configured, otherwise
    // the in-memory store.
    var (
        resStore store.ReservationStore
        annStore store.AnnouncementStore
        setStore store.SettingsStore
    )
    if cfg.DBHost != "" {
        db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
        if err != nil {
            log.Fatalf("open database: %v", err)
        }
        resStore = repository.NewReservationRepo(db, nil)
        annStore = repository.NewAnnouncementRepo(db, nil)
        setStore = repository.NewSettingsRepo(db)
        log.Printf("storage: mysql %s/%s", cfg.DBHost, cfg.DBName)
    } else {
        resStore = store.NewMemory(nil)
        annStore = store.NewMemoryAnnouncements(nil)
        setStore = store.NewMemorySettings()
        log.Printf("storage: in-memory (DB_HOST not set)")
    }

    catalog := model.NewCatalog(model.DefaultSpaces())
    policy := &schedule.Policy{
        Grid: schedule.Grid{
            Open:        cfg.Booking.OpenMinute,
            Close:       cfg.Booking.CloseMinute,
            SlotMinutes: cfg.Booking.SlotMinutes,
        },
        DurationRule: cfg.Policy.DurationRule,
        RepeatScope:  cfg.Policy.RepeatScope,
    }
    booking := service.NewBooking(resStore, catalog, policy, cfg.Policy.RecheckOnConfirm, service.PublishReservationDecided)

    e := echo.New()

    // Distributed rate limiting and response caching degrade to no-ops
    // when Redis is unreachable.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Printf("redis unavailable; rate limiting and caching disabled")
    }
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

    router.RegisterRoutes(e)
    router.RegisterPublic(e,
        handler.NewSpaceHandler(catalog, booking),
        handler.NewReservationHandler(booking),
        handler.NewAnnouncementHandler(annStore),
        handler.NewSettingsHandler(setStore),
    )
    router.RegisterAdmin(e, handler.NewAdminHandler(booking, annStore, passHash, cfg.JWTSecret, cfg.AdminTokenTTLMin), cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
