package controllers

import (
	"net/http"

	"github.com/lusterstudio/luster-backend/api/responses"
	"github.com/lusterstudio/luster-backend/pkg/config"
	"github.com/lusterstudio/luster-backend/pkg/logger"
	pkgstripe "github.com/lusterstudio/luster-backend/pkg/stripe"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Luster-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness plus which Stripe environment the
// server was wired against, so a misdeployed key is visible at a glance.
func HealthReady(cfg *config.Config, stripeClient *pkgstripe.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Luster-Env", cfg.App.Env)

		payload := map[string]string{"status": "ready"}
		if stripeClient != nil {
			payload["stripe_env"] = stripeClient.Environment()
		}
		responses.WriteSuccess(w, payload)
	}
}
