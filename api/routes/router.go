package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lusterstudio/luster-backend/api/controllers"
	"github.com/lusterstudio/luster-backend/api/middleware"
	checkoutsvc "github.com/lusterstudio/luster-backend/internal/checkout"
	"github.com/lusterstudio/luster-backend/internal/newsletter"
	"github.com/lusterstudio/luster-backend/pkg/config"
	"github.com/lusterstudio/luster-backend/pkg/logger"
	"github.com/lusterstudio/luster-backend/pkg/metrics"
	pkgstripe "github.com/lusterstudio/luster-backend/pkg/stripe"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	stripeClient *pkgstripe.Client,
	checkoutService checkoutsvc.Service,
	newsletterService newsletter.Service,
	checkoutMetrics *metrics.CheckoutMetrics,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, stripeClient, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Post("/checkout", controllers.Checkout(checkoutService, checkoutMetrics, logg))
	r.Get("/checkout/confirmation", controllers.CheckoutConfirmation(checkoutService, logg))
	r.Post("/newsletter", controllers.NewsletterSubscribe(newsletterService, logg))

	return r
}
