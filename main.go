package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/collections"
	"gblcortedobra/handlers"
	"gblcortedobra/services"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	company := services.DefaultCompanyInfo()
	notifier := services.NewWebhookNotifier(os.Getenv("GBL_WEBHOOK_URL"))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Auth ─────────────────────────────────────────────────
		se.Router.POST("/api/login", handlers.HandleLogin(app))

		// ── Clients ──────────────────────────────────────────────
		se.Router.GET("/api/clients", handlers.HandleClientList(app))
		se.Router.POST("/api/clients", handlers.HandleClientCreate(app))
		se.Router.GET("/api/clients/export", handlers.HandleClientExport(app))
		se.Router.POST("/api/clients/import", handlers.HandleClientImport(app))
		se.Router.PUT("/api/clients/{id}", handlers.HandleClientUpdate(app))
		se.Router.PATCH("/api/clients/{id}/status", handlers.HandleClientStatus(app))
		se.Router.DELETE("/api/clients/{id}", handlers.HandleClientDelete(app))

		// ── Products ─────────────────────────────────────────────
		se.Router.GET("/api/products", handlers.HandleProductList(app))
		se.Router.POST("/api/products", handlers.HandleProductCreate(app))
		se.Router.POST("/api/products/import", handlers.HandleProductImport(app))
		se.Router.PUT("/api/products/{id}", handlers.HandleProductUpdate(app))
		se.Router.DELETE("/api/products/{id}", handlers.HandleProductDelete(app))

		// ── Orders ───────────────────────────────────────────────
		se.Router.GET("/api/pedidos", handlers.HandlePedidoList(app))
		se.Router.POST("/api/pedidos", handlers.HandlePedidoCreate(app, notifier))
		se.Router.PUT("/api/pedidos/{id}", handlers.HandlePedidoUpdate(app))
		se.Router.DELETE("/api/pedidos/{id}", handlers.HandlePedidoDelete(app))
		se.Router.GET("/api/pedidos/{id}/pdf", handlers.HandlePedidoPDF(app, company))
		se.Router.GET("/api/pedidos/{id}/share", handlers.HandlePedidoShare(app))

		// ── Users ────────────────────────────────────────────────
		se.Router.GET("/api/users", handlers.HandleUserList(app))
		se.Router.POST("/api/users", handlers.HandleUserCreate(app))
		se.Router.PUT("/api/users/{id}", handlers.HandleUserUpdate(app))
		se.Router.DELETE("/api/users/{id}", handlers.HandleUserDelete(app))

		// ── Materials & dashboard ────────────────────────────────
		se.Router.GET("/api/materials", handlers.HandleMaterialList(app))
		se.Router.GET("/api/dashboard/sales_by_month", handlers.HandleSalesByMonth(app))
		se.Router.GET("/api/dashboard/low_stock_products", handlers.HandleLowStockProducts(app))

		// ── Reports ──────────────────────────────────────────────
		se.Router.GET("/api/reports/clients/pdf", handlers.HandleClientRosterPDF(app, company))
		se.Router.GET("/api/reports/pedidos/pdf", handlers.HandleOrdersReportPDF(app, company))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
