package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v84"

	pkgerrors "github.com/lusterstudio/luster-backend/pkg/errors"
)

type stubSessionClient struct {
	createParams *stripe.CheckoutSessionParams
	createResult *stripe.CheckoutSession
	createErr    error

	getID     string
	getResult *stripe.CheckoutSession
	getErr    error
}

func (s *stubSessionClient) CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.createParams = params
	return s.createResult, s.createErr
}

func (s *stubSessionClient) GetSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	s.getID = id
	return s.getResult, s.getErr
}

func newTestService(t *testing.T, stub *stubSessionClient) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Sessions: stub,
		Catalog:  testCatalog(),
		SiteURL:  "https://luster.studio/",
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(ServiceParams{Catalog: testCatalog(), SiteURL: "https://x"}); err == nil {
		t.Fatal("expected error for missing session client")
	}
	if _, err := NewService(ServiceParams{Sessions: &stubSessionClient{}, SiteURL: "https://x"}); err == nil {
		t.Fatal("expected error for missing catalog")
	}
	if _, err := NewService(ServiceParams{Sessions: &stubSessionClient{}, Catalog: testCatalog()}); err == nil {
		t.Fatal("expected error for missing site url")
	}
}

func TestExecuteBuildsSessionParams(t *testing.T) {
	stub := &stubSessionClient{createResult: &stripe.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_test_1"}}
	svc := newTestService(t, stub)

	url, err := svc.Execute(context.Background(), &Request{Items: []RawItem{
		{PriceID: "price_clear_jar_sample", Quantity: float64(3)},
		{PriceID: "price_clear_jar_studio"},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://checkout.stripe.com/c/pay/cs_test_1" {
		t.Fatalf("expected provider URL verbatim, got %q", url)
	}

	params := stub.createParams
	if params == nil {
		t.Fatal("expected session params")
	}
	if got := stripe.StringValue(params.Mode); got != string(stripe.CheckoutSessionModePayment) {
		t.Fatalf("unexpected mode %q", got)
	}
	if len(params.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(params.LineItems))
	}
	if got := stripe.StringValue(params.LineItems[0].Price); got != "price_clear_jar_sample" {
		t.Fatalf("price ID must pass through verbatim, got %q", got)
	}
	if got := stripe.Int64Value(params.LineItems[0].Quantity); got != 3 {
		t.Fatalf("unexpected quantity %d", got)
	}
	if got := stripe.Int64Value(params.LineItems[1].Quantity); got != 1 {
		t.Fatalf("absent quantity should default to 1, got %d", got)
	}
	if got := stripe.StringValue(params.SuccessURL); got != "https://luster.studio/success?session_id={CHECKOUT_SESSION_ID}" {
		t.Fatalf("unexpected success URL %q", got)
	}
	if got := stripe.StringValue(params.CancelURL); got != "https://luster.studio/cancel" {
		t.Fatalf("unexpected cancel URL %q", got)
	}
	if params.Metadata["lot"] != LotNumber {
		t.Fatalf("expected lot metadata, got %q", params.Metadata["lot"])
	}
	// Mixed carts carry no product metadata.
	if _, ok := params.Metadata["product"]; ok {
		t.Fatal("mixed cart should not claim a single product")
	}
}

func TestExecuteClampsSingleItemQuantity(t *testing.T) {
	stub := &stubSessionClient{createResult: &stripe.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_test_2"}}
	svc := newTestService(t, stub)

	req, err := ParseRequest([]byte(`{"priceId":"price_clear_jar_sample","quantity":999,"shade":"Sample Jar"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := svc.Execute(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params := stub.createParams
	if got := stripe.Int64Value(params.LineItems[0].Quantity); got != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", got)
	}
	if params.Metadata["shade"] != "Sample Jar" {
		t.Fatalf("expected shade metadata, got %q", params.Metadata["shade"])
	}
	if params.Metadata["product"] != "Clear Structure" {
		t.Fatalf("expected product metadata for single-SKU cart, got %q", params.Metadata["product"])
	}
	if params.Metadata["size"] != "5 g" {
		t.Fatalf("expected size metadata, got %q", params.Metadata["size"])
	}
}

func TestExecuteRejectsForgedPriceID(t *testing.T) {
	stub := &stubSessionClient{}
	svc := newTestService(t, stub)

	_, err := svc.Execute(context.Background(), &Request{Items: []RawItem{{PriceID: "price_forged"}}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.createParams != nil {
		t.Fatal("provider must not be called for invalid carts")
	}
}

func TestExecuteProviderFailureIsGenericDependencyError(t *testing.T) {
	stub := &stubSessionClient{createErr: errors.New("stripe: rate limited")}
	svc := newTestService(t, stub)

	_, err := svc.Execute(context.Background(), &Request{Items: []RawItem{{PriceID: "price_clear_jar_sample"}}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestExecuteMissingURLIsDependencyError(t *testing.T) {
	stub := &stubSessionClient{createResult: &stripe.CheckoutSession{}}
	svc := newTestService(t, stub)

	_, err := svc.Execute(context.Background(), &Request{Items: []RawItem{{PriceID: "price_clear_jar_sample"}}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestConfirmPaidSession(t *testing.T) {
	stub := &stubSessionClient{getResult: &stripe.CheckoutSession{
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		Metadata: map[string]string{
			"product": "Clear Structure",
			"size":    "5 g",
			"lot":     LotNumber,
		},
	}}
	svc := newTestService(t, stub)

	conf, err := svc.Confirm(context.Background(), "cs_test_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.getID != "cs_test_123" {
		t.Fatalf("unexpected session id %q", stub.getID)
	}
	if conf.Product != "Clear Structure" || conf.Size != "5 g" || conf.Lot != LotNumber {
		t.Fatalf("unexpected confirmation %+v", conf)
	}
}

func TestConfirmUnpaidSessionIsNotFound(t *testing.T) {
	stub := &stubSessionClient{getResult: &stripe.CheckoutSession{
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
	}}
	svc := newTestService(t, stub)

	_, err := svc.Confirm(context.Background(), "cs_test_123")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unpaid session must be not found, got %v", err)
	}
}

func TestConfirmLookupFailureIsNotFound(t *testing.T) {
	stub := &stubSessionClient{getErr: errors.New("no such session")}
	svc := newTestService(t, stub)

	_, err := svc.Confirm(context.Background(), "cs_test_missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unverifiable session must be not found, got %v", err)
	}
}

func TestConfirmBlankSessionIDIsNotFound(t *testing.T) {
	svc := newTestService(t, &stubSessionClient{})
	if _, err := svc.Confirm(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank session id")
	}
}

func TestConfirmFallsBackToDefaults(t *testing.T) {
	stub := &stubSessionClient{getResult: &stripe.CheckoutSession{
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}}
	svc := newTestService(t, stub)

	conf, err := svc.Confirm(context.Background(), "cs_test_456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Product != "LUSTER Order" {
		t.Fatalf("expected fallback product, got %q", conf.Product)
	}
	if conf.Lot != LotNumber {
		t.Fatalf("expected fallback lot, got %q", conf.Lot)
	}
}
