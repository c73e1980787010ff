package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/zenith-pos/internal/application/analytics"
	"github.com/jhoicas/zenith-pos/internal/application/auth"
	"github.com/jhoicas/zenith-pos/internal/application/cashdrawer"
	"github.com/jhoicas/zenith-pos/internal/application/inventory"
	"github.com/jhoicas/zenith-pos/internal/application/purchasing"
	"github.com/jhoicas/zenith-pos/internal/application/sales"
	"github.com/jhoicas/zenith-pos/internal/application/usecase"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	Modules         *usecase.ModuleService
	ProductUC       *usecase.ProductUseCase
	CategoryUC      *usecase.CategoryUseCase
	InventoryUC     *inventory.InventoryUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	SalesUC         *sales.SalesUseCase
	PurchaseUC      *purchasing.PurchaseUseCase
	CustomerUC      *usecase.CustomerUseCase
	CashDrawerUC    *cashdrawer.CashDrawerUseCase
	ExpenseUC       *usecase.ExpenseUseCase
	ReportUC        *appanalytics.ReportUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	UserUC          *usecase.UserUseCase
	CompanyUC       *usecase.CompanyUseCase
	AuditUC         *usecase.AuditUseCase
	JWTSecret       string
	Logger          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))
	view := func(views ...entity.View) fiber.Handler { return RequireView(deps.Modules, views...) }

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Modules)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	protected.Get("/me/views", authHandler.Views)

	// Products y categorías
	productHandler := NewProductHandler(deps.ProductUC, deps.CategoryUC)
	products := protected.Group("/products")
	products.Get("/", view(entity.ViewInventory, entity.ViewPOS), productHandler.List)
	products.Get("/sku/:sku", view(entity.ViewInventory, entity.ViewPOS), productHandler.BySKU)
	products.Get("/:id", view(entity.ViewInventory, entity.ViewPOS), productHandler.GetByID)
	products.Post("/", view(entity.ViewInventory), productHandler.Create)
	products.Put("/:id", view(entity.ViewInventory), productHandler.Update)
	products.Put("/:id/stock", view(entity.ViewInventory), productHandler.SetStock)
	products.Delete("/:id", view(entity.ViewInventory), productHandler.Delete)

	categories := protected.Group("/categories", view(entity.ViewInventory, entity.ViewExpenses, entity.ViewPOS))
	categories.Get("/:kind", productHandler.ListCategories)
	categories.Post("/:kind", productHandler.SaveCategory)
	categories.Put("/:kind/:id", productHandler.SaveCategory)
	categories.Delete("/:kind/:id", productHandler.DeleteCategory)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReplenishmentUC)
	inv := protected.Group("/inventory", view(entity.ViewInventory, entity.ViewDashboard))
	inv.Get("/alerts", inventoryHandler.Alerts)
	inv.Post("/alerts/dismiss", inventoryHandler.DismissAlert)
	inv.Post("/import", view(entity.ViewInventory), inventoryHandler.Import)
	inv.Get("/export", view(entity.ViewInventory), inventoryHandler.Export)
	inv.Get("/replenishment", view(entity.ViewInventory), inventoryHandler.Replenishment)

	// Sales
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", view(entity.ViewPOS), salesHandler.Checkout)
	salesGroup.Get("/", view(entity.ViewSales), salesHandler.List)
	salesGroup.Get("/:id", view(entity.ViewSales, entity.ViewPOS), salesHandler.Get)
	salesGroup.Get("/:id/receipt", view(entity.ViewSales, entity.ViewPOS), salesHandler.Receipt)

	// Purchases
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases := protected.Group("/purchases", view(entity.ViewPurchases))
	purchases.Post("/", purchaseHandler.Register)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.Get)

	// Customers y suppliers
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Get("/", view(entity.ViewCustomers, entity.ViewPOS, entity.ViewSales), customerHandler.ListCustomers)
	customers.Get("/:id", view(entity.ViewCustomers, entity.ViewPOS, entity.ViewSales), customerHandler.GetCustomer)
	customers.Post("/", view(entity.ViewCustomers, entity.ViewPOS), customerHandler.SaveCustomer)
	customers.Put("/:id", view(entity.ViewCustomers), customerHandler.SaveCustomer)
	customers.Delete("/:id", view(entity.ViewCustomers), customerHandler.DeleteCustomer)
	customers.Post("/:id/payments", view(entity.ViewCustomers), customerHandler.CustomerPayment)

	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", view(entity.ViewSuppliers, entity.ViewPurchases), customerHandler.ListSuppliers)
	suppliers.Get("/:id", view(entity.ViewSuppliers, entity.ViewPurchases), customerHandler.GetSupplier)
	suppliers.Post("/", view(entity.ViewSuppliers), customerHandler.SaveSupplier)
	suppliers.Put("/:id", view(entity.ViewSuppliers), customerHandler.SaveSupplier)
	suppliers.Delete("/:id", view(entity.ViewSuppliers), customerHandler.DeleteSupplier)
	suppliers.Post("/:id/payments", view(entity.ViewSuppliers), customerHandler.SupplierPayment)

	// Cash drawer
	cashHandler := NewCashDrawerHandler(deps.CashDrawerUC)
	cash := protected.Group("/cash-drawer")
	cash.Get("/current", view(entity.ViewCashDrawer, entity.ViewPOS), cashHandler.Current)
	cash.Post("/open", view(entity.ViewCashDrawer), cashHandler.Open)
	cash.Post("/movements", view(entity.ViewCashDrawer), cashHandler.AddMovement)
	cash.Post("/close", view(entity.ViewCashDrawer), cashHandler.Close)
	cash.Get("/sessions", view(entity.ViewCashDrawer), cashHandler.History)
	cash.Get("/sessions/:id/report", view(entity.ViewCashDrawer), cashHandler.Report)
	cash.Get("/sessions/:id/report.pdf", view(entity.ViewCashDrawer), cashHandler.ReportPDF)

	// Expenses
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses", view(entity.ViewExpenses))
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Save)
	expenses.Put("/:id", expenseHandler.Save)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Reports y dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports", view(entity.ViewReports))
	reports.Get("/general", reportHandler.General)
	reports.Get("/categories", reportHandler.SalesByCategory)
	reports.Get("/expense-categories", reportHandler.ExpensesByCategory)
	reports.Get("/best-sellers", reportHandler.BestSellers)
	reports.Get("/journal", reportHandler.Journal)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", view(entity.ViewDashboard), dashboardHandler.GetSummary)

	// Users y roles
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", view(entity.ViewUsers))
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Post("/", userHandler.Save)
	users.Put("/:id", userHandler.Save)
	users.Put("/:id/assignment", userHandler.AssignRole)
	users.Delete("/:id", userHandler.Delete)

	roles := protected.Group("/roles", view(entity.ViewUsers))
	roles.Get("/", userHandler.ListRoles)
	roles.Post("/", userHandler.SaveRole)
	roles.Put("/:id", userHandler.SaveRole)
	roles.Post("/:id/views", userHandler.GrantView)
	roles.Delete("/:id", userHandler.DeleteRole)

	// Company: lectura abierta a cualquier sesión (moneda, formato, sucursales).
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/settings", companyHandler.GetSettings)
	protected.Get("/settings/plan", companyHandler.Plan)
	protected.Patch("/settings", view(entity.ViewSettings), companyHandler.UpdateSettings)
	protected.Get("/branches", companyHandler.ListBranches)
	protected.Post("/branches", view(entity.ViewSettings), companyHandler.SaveBranch)
	protected.Put("/branches/:id", view(entity.ViewSettings), companyHandler.SaveBranch)
	protected.Delete("/branches/:id", view(entity.ViewSettings), companyHandler.DeleteBranch)

	// Audit
	auditHandler := NewAuditHandler(deps.AuditUC)
	audit := protected.Group("/audit", view(entity.ViewAuditLog))
	audit.Get("/", auditHandler.List)
	audit.Get("/:id", auditHandler.Detail)
}
