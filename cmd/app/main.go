package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/arearepo"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateRunAssignmentCommandHandler(),
		configs.AssignmentSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		AssignmentSchedule: goDotEnvVariable("ASSIGNMENT_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&arearepo.AreaDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&partnerrepo.PartnerDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := http.NewServer(
		http.Commands{
			CreateArea:        app.CreateCreateAreaCommandHandler(),
			UpdateArea:        app.CreateUpdateAreaCommandHandler(),
			DeleteArea:        app.CreateDeleteAreaCommandHandler(),
			CreateOrder:       app.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus: app.CreateUpdateOrderStatusCommandHandler(),
			CreatePartner:     app.CreateCreatePartnerCommandHandler(),
			UpdatePartner:     app.CreateUpdatePartnerCommandHandler(),
			DeletePartner:     app.CreateDeletePartnerCommandHandler(),
			RunAssignment:     app.CreateRunAssignmentCommandHandler(),
		},
		http.Queries{
			GetOrders:            app.CreateGetOrdersQueryHandler(),
			GetActiveOrders:      app.CreateGetActiveOrdersQueryHandler(),
			GetAreas:             app.CreateGetAreasQueryHandler(),
			GetPartners:          app.CreateGetPartnersQueryHandler(),
			GetAvailablePartners: app.CreateGetAvailablePartnersQueryHandler(),
			GetPartnerMetrics:    app.CreateGetPartnerMetricsQueryHandler(),
			GetAssignments:       app.CreateGetAssignmentsQueryHandler(),
			GetRecentAssignments: app.CreateGetRecentAssignmentsQueryHandler(),
			GetAssignmentMetrics: app.CreateGetAssignmentMetricsQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
