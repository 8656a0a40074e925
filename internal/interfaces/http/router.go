package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stock-service/internal/application/dto"
	"github.com/jhoicas/stock-service/internal/application/usecase"
	"github.com/jhoicas/stock-service/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	ProductUC   *usecase.ProductUseCase
	StockUC     *usecase.StockUseCase
	Log         *logger.Logger
	Observer    RequestObserver     // opcional
	Gatherer    prometheus.Gatherer // opcional: expone /metrics
	DB          Pinger              // opcional: readiness en /health
	SwaggerFile string              // opcional: /docs si el archivo existe
}

// NewApp construye la aplicación Fiber con middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code, message := fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message
			if e, ok := err.(*fiber.Error); ok {
				code, message = e.Code, e.Message
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "ERROR", Message: message})
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Log, deps.Observer))

	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Stock Service API",
			}))
		} else {
			deps.Log.Warn().Str("file", deps.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", NewHealthHandler(deps.AppName, deps.DB).Check)
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.Find)

	stocks := api.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC, deps.Log)
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.Find)
	stocks.Patch("/increase", stockHandler.Increase)
	stocks.Patch("/decrease", stockHandler.Decrease)
}
