package checkout

import (
	"encoding/json"

	"github.com/lusterstudio/luster-backend/pkg/catalog"
	pkgerrors "github.com/lusterstudio/luster-backend/pkg/errors"
)

const (
	minQuantity  = 1
	maxQuantity  = 10
	maxCartItems = 20
)

// LineItem is a normalized (price ID, quantity) pair ready to hand to
// the payment provider.
type LineItem struct {
	PriceID  string
	Quantity int64
}

// ClampQuantity normalizes an untrusted quantity into [1,10]. Anything
// that is not an integer in range, including absent, fractional, and
// non-numeric values, becomes 1. It never fails.
func ClampQuantity(raw any) int64 {
	switch v := raw.(type) {
	case nil:
		return minQuantity
	case float64:
		n := int64(v)
		if float64(n) != v {
			return minQuantity
		}
		return clampInt(n)
	case int:
		return clampInt(int64(v))
	case int64:
		return clampInt(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return minQuantity
		}
		return clampInt(n)
	default:
		return minQuantity
	}
}

func clampInt(n int64) int64 {
	if n < minQuantity || n > maxQuantity {
		return minQuantity
	}
	return n
}

// ValidateItems checks every entry against the catalog allowlist and
// clamps quantities. One bad entry rejects the whole cart, and the
// rejection is generic so callers cannot probe the allowlist.
func ValidateItems(cat *catalog.Catalog, items []RawItem) ([]LineItem, error) {
	if cat == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog required")
	}
	if len(items) == 0 || len(items) > maxCartItems {
		return nil, errInvalidRequest()
	}
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.PriceID == "" || !cat.Contains(item.PriceID) {
			return nil, errInvalidRequest()
		}
		out = append(out, LineItem{
			PriceID:  item.PriceID,
			Quantity: ClampQuantity(item.Quantity),
		})
	}
	return out, nil
}
