package checkout

import (
	"encoding/json"

	pkgerrors "github.com/lusterstudio/luster-backend/pkg/errors"
)

// RawItem is one untrusted cart entry as submitted by the browser. The
// quantity is kept untyped until ClampQuantity normalizes it.
type RawItem struct {
	PriceID  string `json:"priceId"`
	Quantity any    `json:"quantity"`
}

// Request is a decoded checkout submission, before validation.
type Request struct {
	Items []RawItem
	// Shade is a display label carried by single-item submissions; it is
	// forwarded into session metadata and never validated.
	Shade string
}

func errInvalidRequest() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid checkout request")
}

// ParseRequest decodes a checkout body. Two shapes are accepted, tried
// in a fixed order so ambiguous payloads resolve deterministically:
//
//  1. cart: {"items": [{"priceId": "...", "quantity": 2}, ...]}
//  2. single item: {"priceId": "...", "quantity": 1, "shade": "..."}
//
// A body matching neither is rejected with a generic validation error.
func ParseRequest(body []byte) (*Request, error) {
	var cart struct {
		Items []RawItem `json:"items"`
	}
	if err := json.Unmarshal(body, &cart); err == nil && cart.Items != nil {
		return &Request{Items: cart.Items}, nil
	}

	var single struct {
		PriceID  string `json:"priceId"`
		Quantity any    `json:"quantity"`
		Shade    string `json:"shade"`
	}
	if err := json.Unmarshal(body, &single); err == nil && single.PriceID != "" {
		return &Request{
			Items: []RawItem{{PriceID: single.PriceID, Quantity: single.Quantity}},
			Shade: single.Shade,
		}, nil
	}

	return nil, errInvalidRequest()
}
