package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"marketplace/cmd"
	_ "marketplace/docs"
	"marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/payout"
	"marketplace/internal/adapters/out/postgres/disputerepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/rabbitmq"
	"marketplace/internal/generated/servers"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	amqpConnection, amqpChannel := mustConnectRabbitMQ(configs)
	defer amqpConnection.Close()
	defer amqpChannel.Close()

	notifier, err := rabbitmq.NewAmqpNotifier(amqpChannel)
	if err != nil {
		log.Fatalf("Error creating notifier: %v", err)
	}
	payoutClient := payout.NewClient(configs.PayoutBaseURL, configs.PayoutAPIKey)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		payoutClient,
		notifier,
		logger,
	)

	jobManager := jobs.NewJobManager(
		app.CreateReleaseNextPaymentCommandHandler(),
		app.CreateEscalateDisputeCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:   goDotEnvVariable("RABBITMQ_URL"),
		PayoutBaseURL: goDotEnvVariable("PAYOUT_BASE_URL"),
		PayoutAPIKey:  goDotEnvVariable("PAYOUT_API_KEY"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&paymentrepo.PaymentDTO{},
		&disputerepo.DisputeDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func mustConnectRabbitMQ(configs cmd.Config) (*amqp.Connection, *amqp.Channel) {
	connection, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	channel, err := connection.Channel()
	if err != nil {
		log.Fatalf("Error opening RabbitMQ channel: %v", err)
	}
	return connection, channel
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateProcessOrderPaymentCommandHandler(),
		app.CreateClaimItemCommandHandler(),
		app.CreateMarkItemShippedCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateUploadDeliveryProofCommandHandler(),
		app.CreateReleasePaymentCommandHandler(),
		app.CreateOpenDisputeCommandHandler(),
		app.CreateResolveDisputeCommandHandler(),
		app.CreateRejectDisputeCommandHandler(),
		app.CreateGetUnclaimedItemsQueryHandler(),
		app.CreateGetPaymentsByStatusQueryHandler(),
		app.CreateGetDisputesByStatusQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
