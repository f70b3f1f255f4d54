package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/reporting"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

const swaggerSpecPath = "./docs/swagger.json"

// swaggerSpecExists indica si el spec OpenAPI está disponible en disco.
func swaggerSpecExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	documentUC := billing.NewDocumentUseCase(txRunner, documentRepo, customerRepo)

	// Reportes: cálculo en memoria + exportaciones PDF y XML
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	xmlExporter := export.NewXMLReportExporter()
	reportUC := reporting.NewReportUseCase(documentRepo, companyRepo, pdfGenerator, xmlExporter)

	csvExporter := export.NewCSVAuditExporter()
	auditUC := audit.NewAuditUseCase(auditRepo, csvExporter, log.Zerolog())

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auditUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// contrib/swagger hace panic si el archivo no existe, de ahí el guard.
	if swaggerSpecExists(swaggerSpecPath) {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpecPath,
			Path:     "docs",
			Title:    "Gestión API",
		}))
	} else {
		log.Warn().Str("path", swaggerSpecPath).Msg("spec OpenAPI no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		DocumentUC: documentUC,
		ReportUC:   reportUC,
		AuditUC:    auditUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
