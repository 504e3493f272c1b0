package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/logging"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/application"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	httpwrap "github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/infrastructure/http"
	kafkawrap "github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/infrastructure/kafka"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/infrastructure/postgres"
	rediswrap "github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/infrastructure/redis"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	shutdownTimeout = 5 * time.Second
)

type PurchasesApp struct {
	cfg    PurchasesConfig
	logger logging.Logger

	server      *http.Server
	dbpool      *pgxpool.Pool
	redisClient *redis.Client
	publisher   *kafkawrap.EventPublisher
}

func NewPurchasesApp(cfg PurchasesConfig, logger logging.Logger) *PurchasesApp {
	return &PurchasesApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *PurchasesApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	dbpool, err := pgxpool.New(ctx, cfg.DbSettings.GetUrl())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	if err := dbpool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	txManager := database.NewDelegateTxManager(dbpool, logger)
	stockLedger := postgres.NewStockLedger()
	purchasesRepository := postgres.NewPurchasesRepository()
	purchaseReader := postgres.NewPurchaseReader(dbpool)

	viewCache := a.createViewCache()
	eventPublisher := a.createEventPublisher()

	purchaseManager := application.NewPurchaseManager(txManager, stockLedger, purchasesRepository, eventPublisher, viewCache, logger)
	purchaseQuery := application.NewPurchaseQuery(purchaseReader, viewCache, logger)

	router := gin.Default()
	httpwrap.NewPurchaseHandler(purchaseManager, purchaseQuery, logger).RegisterRoutes(router)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *PurchasesApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("failed to close event publisher", "error", err.Error())
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("failed to close redis client", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}
}

func (a *PurchasesApp) createViewCache() domain.ViewCache {
	if a.cfg.RedisAddr == "" {
		a.logger.Info("purchase view cache disabled")
		return rediswrap.NopViewCache{}
	}

	a.redisClient = redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})

	return rediswrap.NewViewCache(a.redisClient, a.cfg.CacheTTL)
}

func (a *PurchasesApp) createEventPublisher() domain.EventPublisher {
	if len(a.cfg.KafkaBrokers) == 0 {
		a.logger.Info("purchase event publishing disabled")
		return kafkawrap.NopPublisher{}
	}

	a.publisher = kafkawrap.NewEventPublisher(a.cfg.KafkaBrokers, a.cfg.KafkaTopic)

	return a.publisher
}
