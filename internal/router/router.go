package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/krafty-kitchen/api/internal/config"
	"github.com/krafty-kitchen/api/internal/handler"
	"github.com/krafty-kitchen/api/internal/service"
	"github.com/krafty-kitchen/api/internal/storage"
)

// New creates a Chi router with all application routes wired up over the
// given store.
func New(cfg *config.Config, store storage.Store) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration: the customer, kitchen and admin views are
	// browser apps polling this API from their own origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	orderSvc := service.NewOrderService(store)
	menuSvc := service.NewMenuService(store)
	tableSvc := service.NewTableService(store)
	expenseSvc := service.NewExpenseService(store)
	statsSvc := service.NewStatsService(store)

	r.Route("/menu", handler.NewMenuHandler(menuSvc).RegisterRoutes)
	r.Route("/tables", handler.NewTableHandler(tableSvc).RegisterRoutes)
	r.Route("/orders", handler.NewOrderHandler(orderSvc).RegisterRoutes)
	r.Route("/expenses", handler.NewExpenseHandler(expenseSvc).RegisterRoutes)
	r.Route("/stats", handler.NewStatsHandler(statsSvc).RegisterRoutes)
	r.Route("/reports", handler.NewReportsHandler(orderSvc, expenseSvc).RegisterRoutes)

	log.Println("Router initialized with all handlers")
	return r
}
