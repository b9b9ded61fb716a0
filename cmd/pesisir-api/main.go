package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pesisir-api/configs"
	_ "pesisir-api/docs"
	"pesisir-api/internal/application/controller"
	"pesisir-api/internal/application/middleware"
	"pesisir-api/internal/application/processor"
	"pesisir-api/internal/application/schedule"
	"pesisir-api/internal/domain/gateway/api"
	"pesisir-api/internal/domain/gateway/db"
	"pesisir-api/internal/domain/gateway/queue"
	"pesisir-api/internal/domain/usecase/auth"
	"pesisir-api/internal/domain/usecase/dashboard"
	"pesisir-api/internal/domain/usecase/forum"
	"pesisir-api/internal/domain/usecase/health"
	"pesisir-api/internal/domain/usecase/weather"
	"pesisir-api/internal/infra/aws"
	"pesisir-api/internal/infra/database/gorm"
	httpclient "pesisir-api/pkg/http"
	"pesisir-api/pkg/log"
	"pesisir-api/pkg/msg"
	"pesisir-api/pkg/redis"
	"pesisir-api/pkg/resource"
	"pesisir-api/pkg/sqs"
)

// @title Pesisir API
// @version 1.0
// @description Coastal conditions dashboard for the Banten coast: BMKG weather, simulated ocean data, accounts and community discussions.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Init infra
	e := echo.New()
	e.Validator = controller.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(configs.Env.ContextPath)
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Gateways
	dbGateway := db.NewGormHealthDBGateway(gorm.Db)
	userGateway := db.NewGormUserGateway(gorm.Db)
	queueHealthGateway := queue.NewQueueHealthGateway()
	forecastGateway := api.NewForecastGateway(resource.GetString("app.bmkg.url"), httpclient.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.bmkg.timeout"),
		ReadTimeout:       resource.GetDuration("app.bmkg.timeout"),
		DefaultBackoff: &httpclient.BackoffConfig{
			MaxRetries:      resource.GetInt("app.bmkg.max-retries"),
			InitialInterval: httpclient.DefaultBackoff().InitialInterval,
			MaxInterval:     httpclient.DefaultBackoff().MaxInterval,
		},
	})

	// Init queue sender when fan-out is enabled
	var queueSender queue.Sender
	queueName := ""
	queueEnabled := resource.GetBool("app.weather.refresh.queue-enabled")
	if queueEnabled {
		queueName = resource.GetString("app.weather.refresh.queue-name")
		queueSender = aws.NewSQSSenderAdapter(aws.NewSqsClient())
	}

	// Init UseCases
	cache := weather.NewCache(resource.GetDuration("app.weather.cache-ttl"))
	weatherUseCase := weather.NewWeatherUseCase(forecastGateway, cache, queueSender, queueName)
	dashboardUseCase := dashboard.NewDashboardUseCase(weatherUseCase)
	authUseCase := auth.NewAuthUseCase(userGateway,
		resource.GetString("app.auth.jwt-secret"),
		resource.GetDuration("app.auth.jwt-expiry"))
	forumUseCase := forum.NewForumUseCase()
	healthUseCase := health.NewHealthUseCase(dbGateway, queueHealthGateway)

	// Init Controllers
	controller.NewHealthController(apiGroup, healthUseCase).InitHealthRoutes()
	controller.NewDashboardController(apiGroup, dashboardUseCase).InitDashboardRoutes()
	controller.NewWeatherController(apiGroup, weatherUseCase).InitWeatherRoutes()
	controller.NewAuthController(apiGroup, authUseCase).InitAuthRoutes()
	controller.NewForumController(apiGroup, forumUseCase).InitForumRoutes()

	// Init queue worker consuming refresh jobs
	if queueEnabled {
		refreshProcessor := processor.NewRefreshProcessor(weatherUseCase)
		worker, err := sqs.NewWorker(aws.NewSqsClient(), queueName, refreshProcessor, &sqs.WorkerConfig{
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
			PoolSize:            2,
			LogLevel:            sqs.ErrorLevel,
		})
		if err != nil {
			log.Fatalf("Failed to create refresh worker: %v", err)
		}
		queueHealthGateway.RegisterWorker(queueName, worker)
		go worker.Start(context.Background())
	}

	// Init Redis for the scheduler lock
	var redisClient *redis.Client
	if resource.GetBool("app.redis.enabled") {
		redisClient = redis.NewClient(&redis.Config{
			Host:     resource.GetString("app.redis.host"),
			Port:     resource.GetInt("app.redis.port"),
			Password: resource.GetString("app.redis.password"),
			Database: resource.GetInt("app.redis.database"),
		})
	}

	// Warm the forecast cache for every beach before traffic arrives
	go func() {
		log.Info(msg.GetMessage("weather.preload.start"))
		report := weatherUseCase.PreloadAll()
		log.Info(msg.GetMessage("weather.preload.end", len(report.Succeeded), len(report.Failed)))
	}()

	// Init Schedule
	refreshScheduler := schedule.NewRefreshScheduler(weatherUseCase, redisClient)
	refreshScheduler.InitRefreshScheduleTasks()

	// Start Routes
	port := resource.GetString("app.server.port")
	log.Info(msg.GetMessage("app.start", port))
	e.Logger.Fatal(e.Start(":" + port))
}
