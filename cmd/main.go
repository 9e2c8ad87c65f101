package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/food-delivery-service/docs"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/app"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/events"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/handler"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/postgres"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/registry"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/routing"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/tracking"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/idempotency"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// store объединяет все репозитории одного бэкенда
type store interface {
	trm.Manager
	service.OrderRepo
	service.UserRepo
	service.AddressRepo
}

// @title           Food Delivery Service API
// @version         1.0
// @description     Документация HTTP API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)
	handler.RegisterMetrics()

	var st store
	switch conf.Store {
	case config.StoreMemory:
		st = repo.NewMemoryStore()
		logger.Warn("using in-memory store, data is lost on restart")
	default:
		db, err := postgres.New(ctx, conf.Postgres)
		panicIfErr("failed to connect to db", err)
		panicIfErr("failed to migrate db", postgres.Migrate(db))
		application.SetClosers(db)
		logger.Info("postgres connected")
		st = pgStore{PostgresRepo: repo.NewPostgresRepo(logger, db), Manager: trm.NewManager(db)}
	}

	var publisher service.EventPublisher
	if conf.Kafka.Enabled {
		p := events.NewPublisher(logger, conf.Kafka)
		application.SetClosers(p)
		publisher = p
	}

	var idem service.IdempotencyStore
	if conf.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		panicIfErr("failed to connect to redis", client.Ping(ctx).Err())
		application.SetClosers(client)
		logger.Info("redis connected")
		idem = idempotency.NewRedisStore(client, conf.Redis.IdempotencyTTL)
	}

	orderService := service.NewOrderService(logger, st, st, publisher, idem)
	authService := service.NewAuthService(logger, st, conf.Auth.JWTSecret, conf.Auth.TokenTTL)
	routingClient := routing.NewClient(logger, conf.Routing, conf.Cache)
	addressService := service.NewAddressService(logger, st, routingClient)
	catalog := service.NewCatalogService()

	reg := registry.New(logger, orderService, authService)
	tracker := tracking.NewTracker(logger, orderService)
	application.SetStarters(routingClient, reg)
	application.SetClosers(reg, tracker)

	switch s := st.(type) {
	case *repo.MemoryStore:
		s.OnChange(reg.Notify)
	default:
		listener := postgres.NewListener(logger, conf.Postgres, reg)
		application.SetStarters(listener)
		application.SetClosers(listener)
	}

	authenticate := middleware.Auth(authService)
	application.SetHTTPHandlers(
		handler.NewAuthHandler(logger, authService, authenticate),
		handler.NewCatalogHandler(catalog),
		handler.NewAddressHandler(logger, addressService, authenticate),
		handler.NewOrderHandler(logger, orderService, catalog, addressService, routingClient, tracker, authenticate),
		handler.NewDriverHandler(logger, orderService, routingClient, tracker, conf.Tracking, authenticate),
		handler.NewLiveHandler(logger, reg, orderService, conf.Cors.AllowedOrigins, authenticate),
	)

	if conf.Kafka.Enabled {
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	panicIfErr("failed to start app", application.Start(ctx))
	select {
	case <-ctx.Done():
	case err := <-application.Errors():
		logger.Error("http server failed", slog.Any("error", err))
		stop()
	}
	panicIfErr("failed to stop app", application.Stop())
}

type pgStore struct {
	*repo.PostgresRepo
	trm.Manager
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
