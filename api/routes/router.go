package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velora-shop/velora-backend/api/controllers"
	"github.com/velora-shop/velora-backend/api/middleware"
	"github.com/velora-shop/velora-backend/internal/cart"
	"github.com/velora-shop/velora-backend/internal/catalog"
	checkoutsvc "github.com/velora-shop/velora-backend/internal/checkout"
	"github.com/velora-shop/velora-backend/internal/orders"
	"github.com/velora-shop/velora-backend/pkg/config"
	"github.com/velora-shop/velora-backend/pkg/logger"
	"github.com/velora-shop/velora-backend/pkg/metrics"
	"github.com/velora-shop/velora-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	promRegistry *prometheus.Registry,
	catalogService *catalog.Service,
	cartStore *cart.Store,
	checkoutService *checkoutsvc.Service,
	historyService *orders.HistoryService,
) http.Handler {
	var redisP redis.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	if promRegistry != nil {
		r.Use(middleware.Metrics(metrics.NewHTTPMetrics(promRegistry)))
		r.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisP))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogService, logg))
			r.Get("/featured", controllers.FeaturedProducts(catalogService, logg))
			r.Get("/{productId}", controllers.GetProduct(catalogService, logg))
			r.Get("/{productId}/reviews", controllers.ListProductReviews(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartStore, logg))
			r.Delete("/", controllers.CartClear(cartStore, logg))
			r.Post("/items", controllers.CartAddItem(cartStore, catalogService, logg))
			r.Patch("/items/{lineId}", controllers.CartSetQuantity(cartStore, logg))
			r.Delete("/items/{lineId}", controllers.CartRemoveItem(cartStore, logg))
			r.Get("/shipping-options", controllers.ShippingOptions(cartStore, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", controllers.CheckoutStart(checkoutService, logg))
			r.Post("/wallet/confirm", controllers.CheckoutConfirmWallet(checkoutService, logg))
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", controllers.CheckoutFetch(checkoutService, logg))
				r.Delete("/", controllers.CheckoutAbandon(checkoutService, logg))
				r.Put("/contact", controllers.CheckoutSetContact(checkoutService, logg))
				r.Put("/shipping", controllers.CheckoutSetShipping(checkoutService, logg))
				r.Put("/payment", controllers.CheckoutSetPayment(checkoutService, logg))
				r.Post("/advance", controllers.CheckoutAdvance(checkoutService, logg))
				r.Post("/back", controllers.CheckoutBack(checkoutService, logg))
				r.Post("/submit", controllers.CheckoutSubmit(checkoutService, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(historyService, logg))
			r.Get("/track/{trackingNumber}", controllers.TrackOrder(historyService, logg))
		})
	})

	return r
}
