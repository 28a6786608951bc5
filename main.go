package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"jalusi/config"
	"jalusi/cron"
	"jalusi/database"
	ledgerRepo "jalusi/database/repository/ledger"
	sessionRepo "jalusi/database/repository/sessions"
	taskRepo "jalusi/database/repository/tasks"
	"jalusi/handlers"
	"jalusi/middleware"
	"jalusi/routes"
	"jalusi/services/auth"
	"jalusi/services/booking"
	"jalusi/services/notification"
	"jalusi/services/tasks"
	"jalusi/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	health := &utils.HealthChecker{RedisClients: map[string]*redis.Client{}}

	// repositories.
	ledger := ledgerRepo.NewMemoryLedgerRepo()
	if cfg.LedgerBackend == config.BackendRedis {
		client := mustRedis(ctx, logger, cfg, cfg.RedisLedgerDB)
		health.RedisClients["ledger"] = client
		ledger = ledgerRepo.NewRedisLedgerRepo(client)
	}

	sessions := sessionRepo.NewMemorySessionRepo(cfg.SessionTTL(), time.Now)
	if cfg.SessionBackend == config.BackendRedis {
		client := mustRedis(ctx, logger, cfg, cfg.RedisSessionDB)
		health.RedisClients["sessions"] = client
		sessions = sessionRepo.NewRedisSessionRepo(client, cfg.SessionTTL())
	}

	var mongoClient *mongo.Client
	taskStore := taskRepo.NewMemoryTaskRepo()
	if cfg.TaskBackend == config.BackendMongo {
		mongoClient, err = database.ConnectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		db := mongoClient.Database(cfg.DatabaseName)
		if err := taskRepo.EnsureTaskIndexes(ctx, db); err != nil {
			logger.Sugar().Fatalf("main: failed to create task indexes: %v", err)
		}
		health.MongoClient = mongoClient
		taskStore = taskRepo.NewMongoTaskRepo(db)
	}

	// services.
	catalog := config.DefaultCatalog()
	closed, _ := cfg.ClosedWeekday()
	ids := utils.UUIDGenerator{}

	taskService := &tasks.DefaultTaskService{
		Repo:    taskStore,
		IDs:     ids,
		Now:     time.Now,
		Catalog: catalog,
		Logger:  logger,
		Strict:  cfg.StrictTaskTransitions,
	}

	var notifier notification.Notifier = notification.NopNotifier{}
	var reminderWorker *asynq.Server
	var queueClient *asynq.Client
	if cfg.RemindersEnabled {
		redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
		queueClient = asynq.NewClient(redisOpt)
		notifier = notification.NewAsynqNotifier(queueClient, cfg.ReminderLead(), logger)
		reminderWorker, err = cron.StartReminderWorker(redisOpt, logger)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
	}

	engine := &booking.DefaultBookingEngine{
		Catalog:         catalog,
		Ledger:          ledger,
		Tasks:           taskService,
		Notifier:        notifier,
		Logger:          logger,
		ClosedWeekday:   closed,
		BlockBookedDays: cfg.BlockBookedDays,
	}
	sessionService := &booking.DefaultBookingSessionService{
		Engine:   engine,
		Catalog:  catalog,
		Sessions: sessions,
		IDs:      ids,
		Now:      time.Now,
		Logger:   logger,
	}

	if cfg.SeedSampleData {
		sample := config.DefaultSampleData()
		if err := engine.SeedLedger(ctx, sample.BookedSlots); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		if err := taskService.Seed(ctx, sample.Tasks); err != nil {
			logger.Sugar().Fatalf("main: failed to seed tasks: %v", err)
		}
	}

	tokens := utils.NewTokenIssuer(jwtSecret(cfg, logger), cfg.TokenTTL())
	authService := &auth.DefaultAuthService{
		Provider: identityProvider(ctx, cfg, logger),
		Tokens:   tokens,
		Logger:   logger,
	}

	// handlers.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(engine, sessionService, catalog, time.Now, logger),
		handlers.NewTaskHandler(taskService, logger),
		handlers.NewAuthHandler(authService, logger),
		&handlers.HealthHandler{Checker: health},
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		RequireAuth: cfg.RequireAuth,
		Tokens:      tokens,
	})

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if reminderWorker != nil {
		reminderWorker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func mustRedis(ctx context.Context, logger *zap.Logger, cfg *config.Config, db int) *redis.Client {
	client, err := utils.NewRedisClient(ctx, utils.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       db,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	return client
}

// jwtSecret falls back to a per-process random secret outside production, so
// tokens stop working on restart.
func jwtSecret(cfg *config.Config, logger *zap.Logger) string {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret
	}
	logger.Warn("JWT_SECRET not set, using a random secret for this process")
	return utils.UUIDGenerator{}.NewID()
}

func identityProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) auth.IdentityProvider {
	if cfg.AuthProvider != config.AuthFirebase {
		return auth.NewMemoryProvider(utils.UUIDGenerator{})
	}
	admin, err := utils.NewFirebaseAuth(ctx, cfg.FirebaseCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	provider, err := auth.NewFirebaseProvider(ctx, admin, cfg.FirebaseAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	return provider
}
