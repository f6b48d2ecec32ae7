package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/cmd"
	httpin "github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/in/http"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/clientrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/companyrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/coveragerepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/dealerrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	mongoDB := openReplicaDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, mongoDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		MongoURI:      goDotEnvVariable("MONGO_URI"),
		MongoDatabase: goDotEnvVariable("MONGO_DATABASE"),

		SyncSchedule:         goDotEnvVariable("SYNC_SCHEDULE"),
		CompanyStatsSchedule: goDotEnvVariable("COMPANY_STATS_SCHEDULE"),
		DealerRoutesSchedule: goDotEnvVariable("DEALER_ROUTES_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	pingDatabase(dsn)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&dealerrepo.DealerDTO{},
		&clientrepo.ClientDTO{},
		&coveragerepo.CoverageAreaDTO{},
		&companyrepo.CompanyDTO{},
		&companyrepo.CoverageLinkDTO{},
		&companyrepo.PaymentLinkDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// pingDatabase fails fast with a readable error when PostgreSQL is not
// reachable, before GORM starts migrating.
func pingDatabase(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("Database is not reachable: %v", err)
	}
}

func openReplicaDatabase(configs cmd.Config) *mongo.Database {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(configs.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to replica store: %v", err)
	}

	return client.Database(configs.MongoDatabase)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateMarkOrderUrgentCommandHandler(),
		app.CreateCheckClientCoverageQueryHandler(),
		app.CreateGetNearestDealersQueryHandler(),
		app.CreateGetClientsBeyondRadiusQueryHandler(),
		app.CreateGetFarthestClientQueryHandler(),
		app.CreateGetMultizoneOrdersQueryHandler(),
		app.CreateGetDealerActiveOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
