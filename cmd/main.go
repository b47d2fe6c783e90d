package main

import (
	"net/http"

	catalogapp "github.com/easyfind/storefront/application/catalog"
	cartapp "github.com/easyfind/storefront/application/cart"
	orderapp "github.com/easyfind/storefront/application/order"
	"github.com/easyfind/storefront/cmd/config"
	redisclient "github.com/easyfind/storefront/cmd/redis"
	_ "github.com/easyfind/storefront/docs"
	cartRepo "github.com/easyfind/storefront/repository/cart"
	catalogRepo "github.com/easyfind/storefront/repository/catalog"
	orderRepo "github.com/easyfind/storefront/repository/order"
	sessionRepo "github.com/easyfind/storefront/repository/session"
	txRepo "github.com/easyfind/storefront/repository/tx"
	"github.com/easyfind/storefront/thirdparty/qrcode"
	"github.com/easyfind/storefront/thirdparty/rabbitmq"
	"github.com/easyfind/storefront/transport"
	"github.com/easyfind/storefront/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title EasyFind Storefront API
// @version 1.0
// @description Catalog, cart and order lookup API for the EasyFind bookstore
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client (session store backend)
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Order-completed event publisher. Optional: the service runs without it.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	SessionRepo := sessionRepo.NewRepository()
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(CatalogRepo)
	CartApp := cartapp.NewCartApp(TxRepo, CartRepo, CatalogRepo)
	OrderApp := orderapp.NewOrderApp(OrderRepo, qrcode.NewEncoder(256), publisher)

	httpTransport := transport.NewTransport(CatalogApp, CartApp, OrderApp, SessionRepo, cfg.Session.CookieName, cfg.Session.TTL)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
