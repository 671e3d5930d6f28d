package main

import (
	"context"
	"errors"
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

	gcs "cloud.google.com/go/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/api/option"

	_ "github.com/sbilibin2017/gw-finance-tracker/docs"
	"github.com/sbilibin2017/gw-finance-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-finance-tracker/internal/classifier"
	"github.com/sbilibin2017/gw-finance-tracker/internal/facades"
	"github.com/sbilibin2017/gw-finance-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-finance-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-finance-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-finance-tracker/internal/services"
	"github.com/sbilibin2017/gw-finance-tracker/internal/session"
	"github.com/sbilibin2017/gw-finance-tracker/internal/storage"
	"github.com/sbilibin2017/gw-finance-tracker/internal/validator"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-finance-tracker API
// @version 1.0.0
// @description Personal finance tracker: transactions, auto-categorization, summaries and investments
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	GCSBucket   string
	GCSBaseURL  string
	GCSEndpoint string

	JWTSecretKey string
	JWTExpSecond int

	MaxAmount            decimal.Decimal
	MaxReceiptBytes      int64
	SummaryTopCategories int
	DefaultCategory      string
	PageSize             int
}

func (c config) postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// parseConfig loads environment variables from a file, environment values win.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string, dst *int) {
		if err != nil {
			return
		}
		if *dst, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	getInt("POSTGRES_PORT", "5432", &cfg.PGPort)
	getInt("POSTGRES_MAX_OPEN_CONNS", "16", &cfg.PGMaxOpenConns)
	getInt("POSTGRES_MAX_IDLE_CONNS", "8", &cfg.PGMaxIdleConns)

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	getInt("REDIS_PORT", "6379", &cfg.RedisPort)
	getInt("REDIS_DB", "0", &cfg.RedisDB)
	getInt("REDIS_POOL_SIZE", "10", &cfg.RedisPoolSize)
	getInt("REDIS_MIN_IDLE_CONNS", "2", &cfg.RedisMinIdleConns)

	// Kafka config, publishing is off without brokers
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "finance.transactions")

	// Receipt storage config, receipts stay inline without a bucket
	cfg.GCSBucket = getEnv("GCS_BUCKET", "")
	cfg.GCSBaseURL = getEnv("GCS_BASE_URL", facades.DefaultGCSBaseURL)
	cfg.GCSEndpoint = getEnv("GCS_ENDPOINT", "")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	getInt("JWT_EXP_SECOND", "3600", &cfg.JWTExpSecond)

	// Product limits
	defaults := validator.DefaultLimits()
	if err == nil {
		if cfg.MaxAmount, err = decimal.NewFromString(getEnv("MAX_AMOUNT", defaults.MaxAmount.String())); err != nil {
			err = fmt.Errorf("MAX_AMOUNT: %w", err)
		}
	}
	if err == nil {
		if cfg.MaxReceiptBytes, err = strconv.ParseInt(getEnv("MAX_RECEIPT_BYTES", strconv.FormatInt(defaults.MaxReceiptBytes, 10)), 10, 64); err != nil {
			err = fmt.Errorf("MAX_RECEIPT_BYTES: %w", err)
		}
	}
	summaryDefaults := aggregation.DefaultOptions()
	getInt("SUMMARY_TOP_CATEGORIES", strconv.Itoa(summaryDefaults.TopN), &cfg.SummaryTopCategories)
	cfg.DefaultCategory = getEnv("DEFAULT_CATEGORY", summaryDefaults.DefaultCategory)
	getInt("PAGE_SIZE", "20", &cfg.PageSize)

	return cfg, err
}

// run initializes the logger, database, Redis, Kafka, blob storage and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := cfg.postgresDSN()
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := storage.RunMigrations(dsn); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka producer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Receipt blob storage
	var blobs facades.BlobStore
	if cfg.GCSBucket != "" {
		var opts []option.ClientOption
		if cfg.GCSEndpoint != "" {
			opts = append(opts, option.WithEndpoint(cfg.GCSEndpoint), option.WithoutAuthentication())
		}
		client, err := gcs.NewClient(ctx, opts...)
		if err != nil {
			return fmt.Errorf("gcs client error: %w", err)
		}
		defer client.Close()
		blobs = facades.NewGCSBlobStore(client, cfg.GCSBucket, cfg.GCSBaseURL)
		logger.Log.Infow("receipt uploads enabled", "bucket", cfg.GCSBucket)
	}

	hub := session.NewHub()
	sub := hub.Start(func(c session.Change) {
		if c.User == nil {
			logger.Log.Infow("session ended")
			return
		}
		logger.Log.Infow("session started", "userID", c.User.ID)
	})
	defer hub.Stop(sub)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	blacklistRepo := repositories.NewTokenBlacklistRepository(rdb)
	transactionRepo := repositories.NewTransactionRepository(db, middlewares.GetTxFromContext)
	investmentRepo := repositories.NewInvestmentRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, blacklistRepo, hub)
	transactionService := services.NewTransactionService(
		facades.NewTransactionFacade(transactionRepo, blobs),
		validator.New(validator.Limits{
			MaxAmount:         cfg.MaxAmount,
			MaxFractionDigits: validator.DefaultLimits().MaxFractionDigits,
			MaxReceiptBytes:   cfg.MaxReceiptBytes,
			ReceiptExtensions: validator.DefaultLimits().ReceiptExtensions,
		}),
		classifier.NewDefault(),
		services.NewEventPublisher(kafkaWriter),
		services.WithSummaryOptions(aggregation.Options{
			DefaultCategory: cfg.DefaultCategory,
			TopN:            cfg.SummaryTopCategories,
		}),
		services.WithPageSize(cfg.PageSize),
	)
	investmentService := services.NewInvestmentService(investmentRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, blacklistRepo))

			r.Post("/logout", handlers.NewLogoutHandler(authService))
			r.Get("/me", handlers.NewMeHandler(authService))

			r.Get("/transactions", handlers.NewListTransactionsHandler(transactionService))
			r.Get("/balance", handlers.NewGetBalanceHandler(transactionService))
			r.Get("/summary", handlers.NewGetSummaryHandler(transactionService))
			r.Get("/categories/classify", handlers.NewClassifyHandler(transactionService))
			r.Get("/investments", handlers.NewListInvestmentsHandler(investmentService))

			// Each transaction write is a single statement that commits before the
			// service publishes its event, and no SQL transaction is held during receipt uploads.
			r.Post("/transactions", handlers.NewCreateTransactionHandler(transactionService))
			r.Put("/transactions/{id}", handlers.NewUpdateTransactionHandler(transactionService))
			r.Delete("/transactions/{id}", handlers.NewDeleteTransactionHandler(transactionService))

			r.With(middlewares.TxMiddleware(db)).Post("/investments", handlers.NewSaveInvestmentHandler(investmentService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
