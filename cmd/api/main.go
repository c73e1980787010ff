package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/zenith-pos/internal/application/analytics"
	"github.com/jhoicas/zenith-pos/internal/application/auth"
	"github.com/jhoicas/zenith-pos/internal/application/cashdrawer"
	"github.com/jhoicas/zenith-pos/internal/application/inventory"
	"github.com/jhoicas/zenith-pos/internal/application/purchasing"
	"github.com/jhoicas/zenith-pos/internal/application/sales"
	"github.com/jhoicas/zenith-pos/internal/application/usecase"
	"github.com/jhoicas/zenith-pos/internal/bootstrap"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/importexport"
	infrapdf "github.com/jhoicas/zenith-pos/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/zenith-pos/internal/interfaces/http"
	"github.com/jhoicas/zenith-pos/pkg/config"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	st, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.Close()
	runner := st.Runner

	// PDF: comprobantes de venta y reportes de cierre de caja
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(runner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// El diario de ventas solo existe con Postgres; sin él el reporte responde 409.
	reportUC := appanalytics.NewReportUseCase(runner, nil)
	if st.Journal != nil {
		reportUC = appanalytics.NewReportUseCase(runner, st.Journal)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // importaciones e imágenes en data URI
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.CORSOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + httpRouter.HeaderBranchID + ", " + httpRouter.HeaderRequestID,
		ExposeHeaders: httpRouter.HeaderRequestID + ", Content-Disposition",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Zenith POS API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		Modules:         usecase.NewModuleService(runner),
		ProductUC:       usecase.NewProductUseCase(runner),
		CategoryUC:      usecase.NewCategoryUseCase(runner),
		InventoryUC:     inventory.NewInventoryUseCase(runner, importexport.Codec{}),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(runner),
		SalesUC:         sales.NewSalesUseCase(runner, pdfGenerator),
		PurchaseUC:      purchasing.NewPurchaseUseCase(runner),
		CustomerUC:      usecase.NewCustomerUseCase(runner),
		CashDrawerUC:    cashdrawer.NewCashDrawerUseCase(runner, pdfGenerator),
		ExpenseUC:       usecase.NewExpenseUseCase(runner),
		ReportUC:        reportUC,
		DashboardUC:     appanalytics.NewDashboardUseCase(runner),
		UserUC:          usecase.NewUserUseCase(runner),
		CompanyUC:       usecase.NewCompanyUseCase(runner),
		AuditUC:         usecase.NewAuditUseCase(runner),
		JWTSecret:       cfg.JWT.Secret,
		Logger:          log.Component("http"),
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

	log.Info().Msg("aplicación detenida")
}
