package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/docs"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/app"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/backend"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/config"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handler"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/handoff"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/postgres"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/repo"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/service"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/session"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/cache"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Last Mile Delivery Gateway API
// @version         1.0
// @description     Cart, suborder handoff and live tracking API for the customer, vendor and rider dashboards.
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to migrate db", postgres.Migrate(db))
	logger.Info("postgres connected")

	journal := repo.NewJournalRepo(db, trm.NewManager(db))
	client := backend.NewClient(logger, conf.Backend.BaseURL, conf.Backend.Timeout)

	positions := service.NewPositions()
	cartService := service.NewCartService(logger, client)
	broadcaster := service.NewBroadcaster(logger, client, journal, conf.Tracking.MaxConcurrent)
	tracker := service.NewTracker(logger, client, broadcaster, positions, conf.Tracking.Interval)
	handoffService := service.NewHandoffService(
		logger, client, handoff.NewMachine(conf.Tracking.GeofenceRadius), positions, journal, tracker,
	)

	starters := []app.Starter{tracker}

	var store session.Store
	switch conf.Session.Store {
	case "redis":
		rdb, err := session.NewRedisClient(ctx, conf.Redis)
		panicIfErr("failed to connect to redis", err)
		defer rdb.Close()
		store = session.NewRedisStore(rdb, conf.Session.TTL)
		logger.Info("redis connected")
	default:
		sessionCache := cache.NewLRUCache[session.Session](conf.Session.Capacity, conf.Session.TTL)
		store = session.NewMemoryStore(sessionCache)
		starters = append(starters, sessionCache)
	}

	sessions := session.NewManager(logger, store, cartService)
	starters = append(starters, sessions)
	sessions.OnLogout(func(_ context.Context, s session.Session) {
		switch s.Role {
		case entities.RoleRider:
			positions.Discard(s.RiderID)
			broadcaster.Forget(s.RiderID)
			tracker.Forget(s.RiderID)
		case entities.RoleCustomer:
			cartService.Forget(s.CustomerID)
		}
	})

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, tracker)
	httpHandler := handler.NewHTTPHandler(logger, sessions, cartService, handoffService, tracker)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(starters...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
