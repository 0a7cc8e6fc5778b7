package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/collections"
	"onyxcrm/handlers"
	"onyxcrm/services"
)

func main() {
	app := pocketbase.New()

	// Create collections, seed data and run migrations on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateQuoteCurrency(app); err != nil {
			log.Printf("Warning: quote currency migration failed: %v", err)
		}
		return se.Next()
	})

	// Open draft edits live here between create and save/discard.
	sessions := services.NewSessions()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the client build from ./static
		se.Router.GET("/{path...}", apis.Static(os.DirFS("./static"), true))

		// ── Login (the only route outside the actor check) ───────
		se.Router.POST("/api/login", handlers.HandleLogin(app))

		api := se.Router.Group("/api")
		api.BindFunc(handlers.RequireActor(app))

		// ── Dashboard ────────────────────────────────────────────
		api.GET("/dashboard", handlers.HandleDashboard(app))

		// ── Draft sessions ───────────────────────────────────────
		api.POST("/drafts", handlers.HandleDraftCreate(app, sessions))
		api.GET("/drafts/{number}", handlers.HandleDraftGet(sessions))
		api.POST("/drafts/{number}/items", handlers.HandleDraftAddItem(app, sessions))
		api.PUT("/drafts/{number}/items/{productId}", handlers.HandleDraftQty(app, sessions))
		api.DELETE("/drafts/{number}/items/{productId}", handlers.HandleDraftRemoveItem(app, sessions))
		api.PUT("/drafts/{number}/customer", handlers.HandleDraftCustomer(app, sessions))
		api.PUT("/drafts/{number}/currency", handlers.HandleDraftCurrency(app, sessions))
		api.PUT("/drafts/{number}/terms", handlers.HandleDraftTerms(sessions))
		api.POST("/drafts/{number}/save", handlers.HandleDraftSave(app, sessions))
		api.DELETE("/drafts/{number}", handlers.HandleDraftDiscard(sessions))

		// ── Quotes (specific routes before /{number}) ────────────
		api.GET("/quotes/export/csv", handlers.HandleQuotesExportCSV(app))
		api.GET("/quotes", handlers.HandleQuoteList(app))
		api.GET("/quotes/{number}/export/pdf", handlers.HandleQuoteExportPDF(app))
		api.GET("/quotes/{number}/export/xlsx", handlers.HandleQuoteExportExcel(app))
		api.POST("/quotes/{number}/edit", handlers.HandleQuoteEdit(app, sessions))
		api.PUT("/quotes/{number}/status", handlers.HandleQuoteStatus(app))
		api.GET("/quotes/{number}", handlers.HandleQuoteView(app))
		api.DELETE("/quotes/{number}", handlers.HandleQuoteDelete(app))

		// ── Customers ────────────────────────────────────────────
		api.GET("/customers/export/csv", handlers.HandleCustomersExportCSV(app))
		api.POST("/customers/import", handlers.HandleCustomersImportCSV(app))
		api.GET("/customers", handlers.HandleCustomerList(app))
		api.POST("/customers", handlers.HandleCustomerSave(app))
		api.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))

		// ── Product catalog ──────────────────────────────────────
		api.GET("/products/export/csv", handlers.HandleProductsExportCSV(app))
		api.GET("/products", handlers.HandleProductList(app))
		api.POST("/products", handlers.HandleProductSave(app))
		api.DELETE("/products/{id}", handlers.HandleProductDelete(app))
		api.GET("/categories", handlers.HandleCategoryList(app))
		api.POST("/categories", handlers.HandleCategoryAdd(app))
		api.DELETE("/categories/{name}", handlers.HandleCategoryDelete(app))

		// ── Exchange rates ───────────────────────────────────────
		api.GET("/rates", handlers.HandleRatesGet(app))
		api.GET("/rates/live", handlers.HandleRatesLive(app, services.DefaultLiveRatesURL))
		api.PUT("/rates", handlers.RequireAdmin(handlers.HandleRatesUpdate(app)))

		// ── User accounts (admin) ────────────────────────────────
		api.GET("/users", handlers.RequireAdmin(handlers.HandleUserList(app)))
		api.POST("/users", handlers.RequireAdmin(handlers.HandleUserCreate(app)))
		api.DELETE("/users/{id}", handlers.RequireAdmin(handlers.HandleUserDelete(app)))

		// ── Backup ───────────────────────────────────────────────
		api.GET("/backup", handlers.RequireAdmin(handlers.HandleBackupExport(app)))
		api.POST("/backup", handlers.RequireAdmin(handlers.HandleBackupImport(app)))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
