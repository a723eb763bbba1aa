package controllers

import (
	"net/http"

	"github.com/lusterstudio/luster-backend/api/responses"
	checkoutsvc "github.com/lusterstudio/luster-backend/internal/checkout"
	pkgerrors "github.com/lusterstudio/luster-backend/pkg/errors"
	"github.com/lusterstudio/luster-backend/pkg/logger"
	"github.com/lusterstudio/luster-backend/pkg/types"
)

// CheckoutConfirmation backs the success page: it re-queries the
// provider and only returns order details for a paid session.
func CheckoutConfirmation(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		conf, err := svc.Confirm(r.Context(), r.URL.Query().Get("session_id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.ConfirmationResponse{
			Product: conf.Product,
			Size:    conf.Size,
			Lot:     conf.Lot,
		})
	}
}
