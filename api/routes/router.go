package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/microshop/services/api/controllers"
	"github.com/microshop/services/api/middleware"
	cartsvc "github.com/microshop/services/internal/carts"
	ordersvc "github.com/microshop/services/internal/orders"
	productsvc "github.com/microshop/services/internal/products"
	"github.com/microshop/services/pkg/config"
	"github.com/microshop/services/pkg/logger"
	"github.com/microshop/services/pkg/metrics"
)

// Deps carries the shared wiring every service router needs.
type Deps struct {
	Cfg      *config.Config
	Logg     *logger.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.HTTPMetrics
}

func NewProductRouter(deps Deps, svc productsvc.Service) http.Handler {
	r := newBase(deps, "Product Service API")

	r.Route("/products", func(r chi.Router) {
		r.Post("/", controllers.ProductsCreate(svc, deps.Logg))
		r.Get("/", controllers.ProductsList(svc, deps.Logg))
		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", controllers.ProductsGet(svc, deps.Logg))
			r.Put("/", controllers.ProductsUpdate(svc, deps.Logg))
			r.Delete("/", controllers.ProductsDelete(svc, deps.Logg))
		})
	})

	return mountRootPath(deps.Cfg, r)
}

func NewCartRouter(deps Deps, svc cartsvc.Service) http.Handler {
	r := newBase(deps, "Cart Service API")

	r.Route("/carts", func(r chi.Router) {
		r.Post("/", controllers.CartsCreate(svc, deps.Logg))
		r.Route("/{cartID}", func(r chi.Router) {
			r.Get("/", controllers.CartsGet(svc, deps.Logg))
			r.Delete("/", controllers.CartsClear(svc, deps.Logg))
			r.Post("/items", controllers.CartsAddItem(svc, deps.Logg))
			r.Delete("/items/{productID}", controllers.CartsRemoveItem(svc, deps.Logg))
		})
	})

	return mountRootPath(deps.Cfg, r)
}

func NewOrderRouter(deps Deps, svc ordersvc.Service) http.Handler {
	r := newBase(deps, "Order Service API")

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", controllers.OrdersCreate(svc, deps.Logg))
		r.Get("/", controllers.OrdersList(svc, deps.Logg))
		r.Route("/{orderID}", func(r chi.Router) {
			r.Get("/", controllers.OrdersGet(svc, deps.Logg))
			r.Put("/status", controllers.OrdersUpdateStatus(svc, deps.Logg))
		})
	})

	return mountRootPath(deps.Cfg, r)
}

func newBase(deps Deps, greeting string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logg),
		middleware.RequestID(deps.Logg),
		middleware.Logging(deps.Logg),
		middleware.CORS(),
		middleware.Metrics(deps.Metrics),
	)

	r.Get("/", controllers.Root(greeting))
	r.Get("/healthz", controllers.Healthz())
	if deps.Registry != nil {
		r.Handle("/metrics", metrics.Handler(deps.Registry))
	}

	return r
}

// mountRootPath applies the configured uniform route prefix, if any.
func mountRootPath(cfg *config.Config, r *chi.Mux) http.Handler {
	prefix := ""
	if cfg != nil {
		prefix = cfg.App.RootPath
	}
	if prefix == "" || prefix == "/" {
		return r
	}
	outer := chi.NewRouter()
	outer.Mount(prefix, r)
	return outer
}
