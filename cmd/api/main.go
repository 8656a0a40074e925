package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/stock-service/docs"
	"github.com/jhoicas/stock-service/internal/application/usecase"
	"github.com/jhoicas/stock-service/internal/infrastructure/history"
	"github.com/jhoicas/stock-service/internal/infrastructure/metrics"
	"github.com/jhoicas/stock-service/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-service/internal/interfaces/http"
	"github.com/jhoicas/stock-service/pkg/config"
	"github.com/jhoicas/stock-service/pkg/logger"
)

// @title       Stock Service API
// @version     1.0
// @description Productos, stock por tienda y auditoría de mutaciones.
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Auditoría: fire-and-forget hacia el servicio de historial
	historyClient := history.NewClient(cfg.History, log, m)

	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo, historyClient)
	stockUC := usecase.NewStockUseCase(stockRepo, historyClient, m)

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		ProductUC:   productUC,
		StockUC:     stockUC,
		Log:         log,
		Observer:    m,
		Gatherer:    reg,
		DB:          pool,
		SwaggerFile: cfg.Swagger.FilePath,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := historyClient.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("notificaciones al historial pendientes al apagar")
	}

	log.Info().Msg("aplicación detenida")
}
