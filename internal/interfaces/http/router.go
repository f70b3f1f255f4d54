package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/audit"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/reporting"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	CustomerUC *billing.CustomerUseCase
	DocumentUC *billing.DocumentUseCase
	ReportUC   *reporting.ReportUseCase
	AuditUC    *audit.AuditUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido, facturación)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Documents (protegido: facturas, cotizaciones, pagos)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Post("/:id/pay", documentHandler.MarkPaid)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/period", reportHandler.Period)
	reports.Get("/period/pdf", reportHandler.ExportPDF)
	reports.Get("/period/xml", reportHandler.ExportXML)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/annual", reportHandler.Annual)

	// Audit logs (protegido, solo admin y contador)
	auditGroup := protected.Group("/audit-logs", RequireRole(entity.RoleAdmin, entity.RoleContador))
	auditHandler := NewAuditHandler(deps.AuditUC)
	auditGroup.Get("/", auditHandler.List)
	auditGroup.Get("/export.csv", auditHandler.ExportCSV)
}
