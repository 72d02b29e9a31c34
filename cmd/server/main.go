package main

import (
	"database/sql"
	"net/http"

	"stylehub-be/internal/cart"
	"stylehub-be/internal/config"
	"stylehub-be/internal/db"
	"stylehub-be/internal/handler"
	"stylehub-be/internal/logger"
	"stylehub-be/internal/order"
	"stylehub-be/internal/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Indirections for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

// newServer builds the engine with all routes and middleware attached.
func newServer(cfg *config.Config, database *sql.DB) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cfg.RestockOnCancel)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())

	handler.RegisterRoutes(r, []byte(cfg.SecretKey),
		handler.NewProductHandler(productSvc),
		handler.NewCartHandler(cartSvc),
		handler.NewOrderHandler(orderSvc),
	)

	return r
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	r := newServer(cfg, database)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(":"+cfg.AppPort, r)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}
