package checkout

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v84"

	"github.com/lusterstudio/luster-backend/pkg/catalog"
	pkgerrors "github.com/lusterstudio/luster-backend/pkg/errors"
	"github.com/lusterstudio/luster-backend/pkg/logger"
)

// LotNumber is stamped into every session's metadata and echoed on the
// confirmation page.
const LotNumber = "Lot No. 2025-JPN-01"

// sessionIDPlaceholder is substituted by Stripe with its own session ID
// when redirecting back to the success page.
const sessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

// Confirmation is what the success page shows once a session is paid.
type Confirmation struct {
	Product string
	Size    string
	Lot     string
}

// Service validates checkout submissions and exchanges them for a
// provider-hosted payment page. Nothing is persisted: each Execute
// creates a fresh session, and a user retry creates another.
type Service interface {
	Execute(ctx context.Context, req *Request) (string, error)
	Confirm(ctx context.Context, sessionID string) (*Confirmation, error)
}

type ServiceParams struct {
	Sessions SessionClient
	Catalog  *catalog.Catalog
	SiteURL  string
	Logger   *logger.Logger
}

type service struct {
	sessions SessionClient
	catalog  *catalog.Catalog
	siteURL  string
	logg     *logger.Logger
}

func NewService(params ServiceParams) (Service, error) {
	if params.Sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "stripe session client required")
	}
	if params.Catalog == nil || params.Catalog.Len() == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog required")
	}
	siteURL := strings.TrimRight(strings.TrimSpace(params.SiteURL), "/")
	if siteURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "site base url required")
	}
	return &service{
		sessions: params.Sessions,
		catalog:  params.Catalog,
		siteURL:  siteURL,
		logg:     params.Logger,
	}, nil
}

func (s *service) Execute(ctx context.Context, req *Request) (string, error) {
	if req == nil {
		return "", errInvalidRequest()
	}
	items, err := ValidateItems(s.catalog, req.Items)
	if err != nil {
		return "", err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(s.siteURL + "/success?session_id=" + sessionIDPlaceholder),
		CancelURL:          stripe.String(s.siteURL + "/cancel"),
	}
	for _, item := range items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params.AddMetadata("lot", LotNumber)
	if sku, ok := s.singleSKU(items); ok {
		if product, found := catalog.ProductFor(sku.Shade, sku.Format); found {
			params.AddMetadata("product", product.Name)
		}
		if tier, found := catalog.TierByID(sku.Format, sku.Tier); found {
			params.AddMetadata("size", tier.SizeSpec())
		}
	}
	if req.Shade != "" {
		params.AddMetadata("shade", req.Shade)
	}

	sess, err := s.sessions.CreateSession(ctx, params)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "stripe session create failed", err)
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create checkout session")
	}
	if sess == nil || sess.URL == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "create checkout session")
	}
	return sess.URL, nil
}

// singleSKU reports the catalog SKU when every line item resolves to
// the same price ID, which is when product metadata is unambiguous.
func (s *service) singleSKU(items []LineItem) (catalog.SKU, bool) {
	if len(items) == 0 {
		return catalog.SKU{}, false
	}
	priceID := items[0].PriceID
	for _, item := range items[1:] {
		if item.PriceID != priceID {
			return catalog.SKU{}, false
		}
	}
	return s.catalog.SKUFor(priceID)
}

func errOrderNotFound() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// Confirm re-queries the provider for a session's payment status. An
// unpaid or unverifiable session is indistinguishable from an unknown
// one: both come back not found, so the success page can never show
// order details for an unconfirmed payment.
func (s *service) Confirm(ctx context.Context, sessionID string) (*Confirmation, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return nil, errOrderNotFound()
	}

	sess, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "stripe session lookup failed: "+err.Error())
		}
		return nil, errOrderNotFound()
	}
	if sess == nil || sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, errOrderNotFound()
	}

	conf := &Confirmation{
		Product: sess.Metadata["product"],
		Size:    sess.Metadata["size"],
		Lot:     sess.Metadata["lot"],
	}
	if conf.Product == "" {
		conf.Product = "LUSTER Order"
	}
	if conf.Lot == "" {
		conf.Lot = LotNumber
	}
	return conf, nil
}
