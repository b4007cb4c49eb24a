package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"priyansh-be/internal/config"
	"priyansh-be/internal/db"
	"priyansh-be/internal/diagnostics"
	"priyansh-be/internal/handler"
	"priyansh-be/internal/logger"
	"priyansh-be/internal/middleware"
	"priyansh-be/internal/order"
	"priyansh-be/internal/product"
	"priyansh-be/internal/schema"
	"priyansh-be/internal/store"
	"priyansh-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	initGatewayFunc = db.InitGateway
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, closeGateway := initGatewayFunc(ctx, cfg)
	defer func() {
		if err := closeGateway(context.Background()); err != nil {
			logger.L().Warn("closing database failed", zap.Error(err))
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey, handler.StrictRoutes...)
	go limiter.Run(ctx)

	router, err := newServer(cfg, gw, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("🚀 server running", zap.String("addr", srv.Addr))
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newServer(cfg *config.Config, gw store.Gateway, limiter *middleware.RateLimiter) (*gin.Engine, error) {
	productSvc := product.NewService(product.NewRepository(gw))
	orderSvc := order.NewService(order.NewRepository(gw))
	prober := diagnostics.NewProber(gw, cfg.DatabaseURL != "")

	schemas := schema.NewRegistry(
		schema.Entry{Collection: user.Collection, Model: user.Schema},
		schema.Entry{Collection: product.Collection, Model: product.Schema},
		schema.Entry{Collection: order.Collection, Model: order.Schema},
	)

	h := handler.New(productSvc, orderSvc, prober, schemas)
	return handler.NewRouter(h, limiter, cfg.CORSAllowOrigins, cfg.TrustedProxies)
}
