package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"constructmart/cmd"
	_ "constructmart/docs"
	adapterhttp "constructmart/internal/adapters/in/http"
	"constructmart/internal/adapters/out/kafka"
	"constructmart/internal/adapters/out/postgres"
	"constructmart/internal/generated/servers"
	"constructmart/internal/jobs"
	"constructmart/internal/pkg/auth"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := postgresDSN(configs)
	migrateDatabase(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	producer := kafka.NewOrderChangedProducer(
		[]string{configs.KafkaHost}, configs.KafkaOrderChangedTopic)
	defer producer.Close()

	root := cmd.NewCompositionRoot(configs, gormDB, producer, logger)

	tokens, err := auth.NewTokenManager(
		configs.JWTSecret,
		durationOrDefault(configs.JWTAccessTTL, 24*time.Hour),
		durationOrDefault(configs.JWTRefreshTTL, 7*24*time.Hour),
	)
	if err != nil {
		log.Fatalf("Error creating token manager: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateGetStaleItemsQueryHandler(),
		scheduleOrDefault(configs.StaleSweepSchedule),
		durationOrDefault(configs.StaleItemAge, time.Hour),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, tokens, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		JWTAccessTTL:           goDotEnvVariable("JWT_ACCESS_TTL"),
		JWTRefreshTTL:          goDotEnvVariable("JWT_REFRESH_TTL"),
		StaleSweepSchedule:     goDotEnvVariable("STALE_SWEEP_SCHEDULE"),
		StaleItemAge:           goDotEnvVariable("STALE_ITEM_AGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
}

// migrateDatabase runs the embedded goose migrations over a short-lived
// database/sql connection, separate from the gorm pool the app serves from.
func migrateDatabase(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening migration connection: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func durationOrDefault(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing duration %q: %v", value, err)
	}
	return parsed
}

func scheduleOrDefault(schedule string) string {
	if schedule == "" {
		return "0 * * * * *" // once a minute
	}
	return schedule
}

func startWebServer(root cmd.CompositionRoot, tokens *auth.TokenManager, port string) {
	server := adapterhttp.NewServer(
		root.CreateRegisterUserCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateAssignItemCommandHandler(),
		root.CreateRejectItemCommandHandler(),
		root.CreateUpdateItemStatusCommandHandler(),
		root.CreateCreateProductCommandHandler(),
		root.CreateUpdateSettingsCommandHandler(),
		root.CreateLoginQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetUnassignedItemsQueryHandler(),
		root.CreateListProductsQueryHandler(),
		root.CreateGetSettingsQueryHandler(),
		root.CreateCalculatePricingQueryHandler(),
		tokens,
	)

	e := echo.New()
	e.Use(adapterhttp.AuthMiddleware(tokens))

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", openAPIHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

// openAPIHandler serves the contract the server was generated from.
func openAPIHandler() echo.HandlerFunc {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("api/openapi.yml")
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		log.Fatalf("Error validating OpenAPI document: %v", err)
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	}
}
