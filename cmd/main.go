package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/snackops/snackledger/internal/handlers"
	"github.com/snackops/snackledger/internal/jwt"
	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/middlewares"
	"github.com/snackops/snackledger/internal/repositories"
	"github.com/snackops/snackledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title snackledger API
// @version 1.0.0
// @description Office snack inventory: stock tracking, snack requests, audit history and expiry alerts
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		adminUsernames, alertThresholdDays,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		adminUsernames, alertThresholdDays,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT and scheduler configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminUsernames []string, alertThresholdDays int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "snackledger")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; an empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "snack-stock-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Admins are assigned at registration from this comma-separated list
	if v := getEnv("ADMIN_USERNAMES", ""); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				adminUsernames = append(adminUsernames, name)
			}
		}
	}

	if alertThresholdDays, err = strconv.Atoi(getEnv("ALERT_THRESHOLD_DAYS", "3")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	adminUsernames []string, alertThresholdDays int,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for stock events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infof("Kafka events enabled, broker %s topic %s", kafkaBroker, kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	txGetter := repositories.TxFromContext

	snackReadRepo := repositories.NewSnackReadRepository(db, txGetter)
	snackWriteRepo := repositories.NewSnackWriteRepository(db, txGetter)
	requestReadRepo := repositories.NewRequestReadRepository(db, txGetter)
	requestWriteRepo := repositories.NewRequestWriteRepository(db, txGetter)
	historyReadRepo := repositories.NewHistoryReadRepository(db, txGetter)
	historyWriteRepo := repositories.NewHistoryWriteRepository(db, txGetter)
	alertReadRepo := repositories.NewAlertReadRepository(db, txGetter)
	alertWriteRepo := repositories.NewAlertWriteRepository(db, txGetter)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)
	quoteCacheRepo := repositories.NewQuoteCacheRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, adminUsernames)
	stockService := services.NewStockService(txManager, snackReadRepo, snackWriteRepo, historyWriteRepo, kafkaWriter)
	requestService := services.NewRequestService(txManager, requestReadRepo, requestWriteRepo, snackReadRepo, snackWriteRepo, historyWriteRepo, kafkaWriter)
	alertService := services.NewAlertService(snackReadRepo, alertWriteRepo, alertReadRepo)
	quoteService := services.NewQuoteService(quoteRepo, quoteCacheRepo)

	// Nightly expiry alert generation
	scheduler := services.NewScheduler(alertService, alertThresholdDays)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		handlers.RegisterRegisterHandler(r, handlers.NewRegisterHandler(authService))
		handlers.RegisterLoginHandler(r, handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))

			handlers.RegisterSnackListHandler(r, handlers.NewSnackListHandler(stockService))
			handlers.RegisterStockIncreaseHandler(r, handlers.NewStockIncreaseHandler(stockService))
			handlers.RegisterStockDecreaseHandler(r, handlers.NewStockDecreaseHandler(stockService))

			handlers.RegisterRequestListHandler(r, handlers.NewRequestListHandler(requestService))
			handlers.RegisterRequestCreateHandler(r, handlers.NewRequestCreateHandler(requestService))
			handlers.RegisterRequestUpdateHandler(r, handlers.NewRequestUpdateHandler(requestService))
			handlers.RegisterRequestDeleteHandler(r, handlers.NewRequestDeleteHandler(requestService))

			handlers.RegisterHistoryListHandler(r, handlers.NewHistoryListHandler(historyReadRepo))
			handlers.RegisterAlertListHandler(r, handlers.NewAlertListHandler(alertService))
			handlers.RegisterAlertReadHandler(r, handlers.NewAlertReadHandler(alertService))
			handlers.RegisterQuoteHandler(r, handlers.NewQuoteHandler(quoteService))

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(middlewares.AdminOnly())

				handlers.RegisterSnackCreateHandler(r, handlers.NewSnackCreateHandler(stockService))
				handlers.RegisterSnackUpdateHandler(r, handlers.NewSnackUpdateHandler(stockService))
				handlers.RegisterSnackDeleteHandler(r, handlers.NewSnackDeleteHandler(stockService))
				handlers.RegisterRequestApproveHandler(r, handlers.NewRequestApproveHandler(requestService))
				handlers.RegisterRequestRejectHandler(r, handlers.NewRequestRejectHandler(requestService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
