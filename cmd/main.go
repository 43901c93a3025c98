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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mapmyworld/mapmyworld-api/internal/handlers"
	internaljwt "github.com/mapmyworld/mapmyworld-api/internal/jwt"
	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/middlewares"
	"github.com/mapmyworld/mapmyworld-api/internal/repositories"
	"github.com/mapmyworld/mapmyworld-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title MapMyWorld API
// @version 1.0.0
// @description Location management service with per-user bookmarks and nearby search
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
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpMinute,
		maxSearchRadiusKm, categoryCacheTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpMinute,
		maxSearchRadiusKm, categoryCacheTTLSecond,
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
// application, database, Redis, Kafka, JWT and search configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpMinute int,
	maxSearchRadiusKm float64, categoryCacheTTLSecond int,
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
	pgDB = getEnv("POSTGRES_DB", "mapmyworld")
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; an empty address disables audit event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "location-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "dev-key-change-in-production")
	if jwtExpMinute, err = strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")); err != nil {
		return
	}

	// Geo search config; zero disables the radius cap
	if maxSearchRadiusKm, err = strconv.ParseFloat(getEnv("MAX_SEARCH_RADIUS_KM", "0"), 64); err != nil {
		return
	}
	if categoryCacheTTLSecond, err = strconv.Atoi(getEnv("CATEGORY_CACHE_TTL_SECOND", "300")); err != nil {
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
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpMinute int,
	maxSearchRadiusKm float64, categoryCacheTTLSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Dev-mode schema bootstrap. TODO: replace with proper migrations.
	if err := applySchema(ctx, db); err != nil {
		log.Fatal("schema bootstrap failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for location audit events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
		log.Infof("Kafka audit publishing enabled on %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	jwtService := internaljwt.New(jwtSecretKey, time.Duration(jwtExpMinute)*time.Minute)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	locationReadRepo := repositories.NewLocationReadRepository(db)
	locationWriteRepo := repositories.NewLocationWriteRepository(db, middlewares.GetTxFromContext)
	categoryReadRepo := repositories.NewCategoryReadRepository(db)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(db, middlewares.GetTxFromContext)
	categoryCacheRepo := repositories.NewCategoryCacheRepository(rdb, time.Duration(categoryCacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	locationService := services.NewLocationService(locationReadRepo, locationWriteRepo, categoryReadRepo, kafkaWriter)
	categoryService := services.NewCategoryService(categoryReadRepo, categoryWriteRepo, categoryCacheRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	locationsListHandler := handlers.NewLocationsListHandler(locationService)
	locationsCreateHandler := handlers.NewLocationsCreateHandler(locationService)
	locationsGetHandler := handlers.NewLocationsGetHandler(locationService)
	locationsUpdateHandler := handlers.NewLocationsUpdateHandler(locationService)
	locationsDeleteHandler := handlers.NewLocationsDeleteHandler(locationService)
	locationsSearchHandler := handlers.NewLocationsSearchHandler(locationService, maxSearchRadiusKm)
	categoriesListHandler := handlers.NewCategoriesListHandler(categoryService)
	categoriesCreateHandler := handlers.NewCategoriesCreateHandler(categoryService)
	categoriesGetHandler := handlers.NewCategoriesGetHandler(categoryService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Get("/", handlers.NewBannerHandler(buildVersion))
	r.Get("/health", handlers.NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	authMiddleware := middlewares.AuthMiddleware(jwtService, authService)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/locations/", locationsListHandler)
			r.With(txMiddleware).Post("/locations/", locationsCreateHandler)
			r.Get("/locations/search/nearby", locationsSearchHandler)
			r.Get("/locations/{id}", locationsGetHandler)
			r.With(txMiddleware).Put("/locations/{id}", locationsUpdateHandler)
			r.With(txMiddleware).Delete("/locations/{id}", locationsDeleteHandler)

			r.Get("/categories/", categoriesListHandler)
			r.With(txMiddleware).Post("/categories/", categoriesCreateHandler)
			r.Get("/categories/{id}", categoriesGetHandler)
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// applySchema creates the tables if they do not exist yet.
func applySchema(ctx context.Context, db *sqlx.DB) error {
	const schema = `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(100) NOT NULL UNIQUE,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS categories (
		category_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL UNIQUE,
		description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS locations (
		location_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL,
		description TEXT,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		category_id UUID REFERENCES categories (category_id),
		owner_id UUID NOT NULL REFERENCES users (user_id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP
	);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}
