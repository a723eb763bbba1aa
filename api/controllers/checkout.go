package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/lusterstudio/luster-backend/api/responses"
	checkoutsvc "github.com/lusterstudio/luster-backend/internal/checkout"
	pkgerrors "github.com/lusterstudio/luster-backend/pkg/errors"
	"github.com/lusterstudio/luster-backend/pkg/logger"
	"github.com/lusterstudio/luster-backend/pkg/metrics"
	"github.com/lusterstudio/luster-backend/pkg/types"
)

// maxCheckoutBodyBytes bounds untrusted payloads well above any valid
// cart while keeping abuse cheap to reject.
const maxCheckoutBodyBytes = 1 << 16

// Checkout accepts a cart or single-item submission and responds with
// the provider-hosted payment URL.
func Checkout(svc checkoutsvc.Service, met *metrics.CheckoutMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		start := time.Now()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxCheckoutBodyBytes))
		if err != nil {
			met.IncRejected()
			met.ObserveDuration("rejected", time.Since(start))
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid checkout request"))
			return
		}

		req, err := checkoutsvc.ParseRequest(body)
		if err != nil {
			met.IncRejected()
			met.ObserveDuration("rejected", time.Since(start))
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		url, err := svc.Execute(r.Context(), req)
		if err != nil {
			outcome := "failed"
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeValidation {
				outcome = "rejected"
				met.IncRejected()
			} else {
				met.IncFailed()
			}
			met.ObserveDuration(outcome, time.Since(start))
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		met.IncCreated()
		met.ObserveDuration("created", time.Since(start))
		responses.WriteSuccess(w, types.CheckoutResponse{URL: url})
	}
}
