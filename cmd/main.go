package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"pageturner/internal/app/pageturner/config"
	"pageturner/internal/app/pageturner/handler"
	"pageturner/internal/app/pageturner/infrastructure"
	"pageturner/internal/app/pageturner/infrastructure/messaging"
	"pageturner/internal/app/pageturner/repository"
	"pageturner/internal/app/pageturner/service"
	"pageturner/internal/app/pageturner/util"
	"pageturner/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init("pageturner", logLevel)

	redisClient, err := connectRedis(cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")

	// Kafka опционален: без брокеров события просто не отправляются
	var publisher infrastructure.MessagePublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Info().Str("topic", cfg.Kafka.Topic).Msg("Initialized Kafka producer")
	} else {
		publisher = messaging.NewNoopPublisher()
		logger.Info().Msg("Kafka brokers not configured, review events disabled")
	}
	defer publisher.Close()

	// Хранилище наполняется стартовыми коллекциями и живёт в памяти
	// до завершения процесса
	books, users, reviews := repository.SeedData()
	store := repository.NewMemoryStore(books, users, reviews)
	sessionRepo := repository.NewRedisSessionRepository(redisClient)

	jwtManager := util.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)
	sessionState := service.NewSessionState()

	catalogService := service.NewCatalogService(store.Books())
	reviewService := service.NewReviewService(store.Reviews(), sessionState, publisher)
	authService := service.NewAuthService(store.Users(), sessionRepo, jwtManager, sessionState, cfg.Auth.LoginDelay)

	// Восстанавливаем сессию из Redis; повреждённая запись отбрасывается
	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), 5*time.Second)
	authService.RestoreSession(restoreCtx)
	restoreCancel()

	catalogHandler := handler.NewCatalogHandler(catalogService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := handler.NewAuthMiddleware(jwtManager)
	router := handler.SetupRoutes(catalogHandler, reviewHandler, authHandler, authMiddleware)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("books", len(books)).
			Int("users", len(users)).
			Int("reviews", len(reviews)).
			Msg("Starting PageTurner service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down PageTurner service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("PageTurner service stopped gracefully")
}

func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	var err error
	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = client.Ping(ctx).Err()
		cancel()
		if err == nil {
			return client, nil
		}

		logger.Warn().
			Int("attempt", i+1).
			Err(err).
			Msg("Failed to connect to Redis, retrying...")
		time.Sleep(3 * time.Second)
	}

	return nil, err
}
