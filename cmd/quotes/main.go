package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/davetran/wayfare/internal/pkg/cache"
	"github.com/davetran/wayfare/internal/pkg/config"
	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/pkg/middleware"
	"github.com/davetran/wayfare/internal/pkg/server"
	gatewayhttp "github.com/davetran/wayfare/services/quotes/gateway/http"
	handlerhttp "github.com/davetran/wayfare/services/quotes/handler/http"
	"github.com/davetran/wayfare/services/quotes/usecase"
)

func main() {
	configs := config.InitConfig("config/quotes.env")
	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Response cache: Redis when configured, in-memory otherwise
	var responseCache cache.Cache
	if configs.Cache.RedisHost != "" {
		redisCache, err := cache.NewRedisCache(configs.Cache)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		responseCache = redisCache
	} else {
		responseCache = cache.NewMemoryCache(configs.Cache.MaxEntries,
			time.Duration(configs.Cache.TTLSeconds)*time.Second)
	}

	// Initialize gateways
	mapsGW := gatewayhttp.NewMapsClient(configs.Maps)
	uberGW := gatewayhttp.NewUberClient(configs.Uber)
	lyftGW := gatewayhttp.NewLyftClient(configs.Lyft)

	// Initialize usecase
	quoteUC := usecase.NewQuoteUC(configs, mapsGW, uberGW, lyftGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(zapLogger))

	quoteHandler := handlerhttp.NewQuoteHandler(quoteUC, responseCache)
	quoteHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
