package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"kandypack/cmd"
	httpadapter "kandypack/internal/adapters/in/http"
	"kandypack/internal/adapters/out/postgres/orderrepo"
	"kandypack/internal/adapters/out/postgres/routerepo"
	"kandypack/internal/adapters/out/postgres/storerepo"
	"kandypack/internal/adapters/out/postgres/trainrepo"
	"kandypack/internal/adapters/out/postgres/triprepo"
	"kandypack/internal/generated/servers"
	"kandypack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateAdvanceDepartedOrdersCommandHandler(),
		app.CreateAdvanceArrivedOrdersCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// mustConnectDB waits for the database to accept connections, opens the GORM
// connection and runs schema migrations.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	waitForDB(dsn)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&triprepo.TripDTO{},
		&trainrepo.TrainDTO{},
		&storerepo.StoreDTO{},
		&routerepo.RouteDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return gormDB
}

// waitForDB pings the database until it is ready or the retry budget runs out.
func waitForDB(dsn string) {
	const maxAttempts = 10

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
		}
		if err == nil {
			return
		}

		if attempt == maxAttempts {
			log.Fatalf("Database is not reachable after %d attempts: %v", maxAttempts, err)
		}
		time.Sleep(2 * time.Second)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAssignOrderToTrainCommandHandler(),
		app.CreateGetUnplacedOrdersQueryHandler(),
		app.CreateGetTripAvailabilityQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
