package types

// CheckoutResponse is the public success body for POST /checkout.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// ErrorEnvelope is the public failure body: a single generic message,
// never validation detail.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// ConfirmationResponse backs the success page once a session is paid.
type ConfirmationResponse struct {
	Product string `json:"product"`
	Size    string `json:"size,omitempty"`
	Lot     string `json:"lot"`
}
