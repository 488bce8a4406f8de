package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prodcat/product-api/internal/config"
	httpAPI "github.com/prodcat/product-api/internal/http"
	"github.com/prodcat/product-api/internal/http/controller"
	"github.com/prodcat/product-api/internal/logger"
	"github.com/prodcat/product-api/internal/metrics"
	reposql "github.com/prodcat/product-api/internal/repository/sql"
	"github.com/prodcat/product-api/internal/usecase"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()
	db, err := reposql.StartDB(ctx, conf.Database)
	handleErr("starting database", err)
	defer db.Close()

	productRepo := reposql.NewProductRepository(db)

	ctr := controller.New(conf)
	productCtr := controller.NewProductController(
		usecase.NewCreateProduct(productRepo),
		usecase.NewGetProduct(productRepo),
		usecase.NewSearchProducts(productRepo),
		usecase.NewUpdateProduct(productRepo),
		usecase.NewDeleteProduct(productRepo),
	)

	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	httpAPI.InitRouter(engine, ctr, productCtr)

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
