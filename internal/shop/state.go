package shop

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lusterstudio/luster-backend/internal/checkout"
	"github.com/lusterstudio/luster-backend/pkg/catalog"
)

// Phase is the explicit submission state. Pending submission is a phase
// of its own rather than a flag, so the double-submit guard is part of
// the state machine.
type Phase string

const (
	PhaseEmpty       Phase = "empty"
	PhaseBuilding    Phase = "building"
	PhaseSubmitting  Phase = "submitting"
	PhaseRedirecting Phase = "redirecting"
	PhaseFailed      Phase = "failed"
)

// Entry is one cart line as the shopper sees it: display data plus the
// price ID resolved at add time. Duplicate selections stay separate
// entries until submission aggregates them.
type Entry struct {
	UID       uuid.UUID
	Name      string
	TierLabel string
	Shade     catalog.Shade
	Format    catalog.Format
	Tier      catalog.Tier
	PriceCAD  decimal.Decimal
	PriceID   string
}

// State is the whole shop page state. Transitions are pure: each
// returns a new State and never mutates the receiver, so a failed
// submission always keeps the cart it started with.
type State struct {
	Phase         Phase
	Format        catalog.Format
	TierSelection map[catalog.Format]catalog.Tier
	Cart          []Entry
	ErrMessage    string
	RedirectURL   string
}

// NewState starts on the jar tab with each format's recommended tier
// preselected.
func NewState() State {
	return State{
		Phase:  PhaseEmpty,
		Format: catalog.FormatJar,
		TierSelection: map[catalog.Format]catalog.Tier{
			catalog.FormatJar:    catalog.DefaultTier(catalog.FormatJar),
			catalog.FormatBottle: catalog.DefaultTier(catalog.FormatBottle),
		},
	}
}

func (s State) clone() State {
	next := s
	next.TierSelection = make(map[catalog.Format]catalog.Tier, len(s.TierSelection))
	for f, t := range s.TierSelection {
		next.TierSelection[f] = t
	}
	next.Cart = make([]Entry, len(s.Cart))
	copy(next.Cart, s.Cart)
	return next
}

// SelectFormat switches tabs. Tier choices persist per format, so
// coming back to a tab restores its previous tier.
func (s State) SelectFormat(format catalog.Format) State {
	next := s.clone()
	next.Format = format
	if _, ok := next.TierSelection[format]; !ok {
		next.TierSelection[format] = catalog.DefaultTier(format)
	}
	return next
}

// SelectTier records the tier for the current format only.
func (s State) SelectTier(tier catalog.Tier) State {
	if _, ok := catalog.TierByID(s.Format, tier); !ok {
		return s
	}
	next := s.clone()
	next.TierSelection[s.Format] = tier
	return next
}

// SelectedTier is the tier chosen for the current format.
func (s State) SelectedTier() catalog.Tier {
	return s.TierSelection[s.Format]
}

// AddItem appends one entry for the shade in the current format at the
// currently selected tier, resolving its price ID immediately. Adding
// clears any previous submission error.
func (s State) AddItem(cat *catalog.Catalog, shade catalog.Shade) State {
	if s.Phase == PhaseSubmitting || s.Phase == PhaseRedirecting {
		return s
	}

	product, ok := catalog.ProductFor(shade, s.Format)
	if !ok {
		return s
	}
	tier, ok := catalog.TierByID(s.Format, s.TierSelection[s.Format])
	if !ok {
		return s
	}
	priceID, ok := cat.PriceID(catalog.SKU{Shade: shade, Format: s.Format, Tier: tier.Tier})
	if !ok {
		return s
	}

	next := s.clone()
	next.Cart = append(next.Cart, Entry{
		UID:       uuid.New(),
		Name:      product.Name,
		TierLabel: tier.Label,
		Shade:     shade,
		Format:    s.Format,
		Tier:      tier.Tier,
		PriceCAD:  tier.PriceCAD,
		PriceID:   priceID,
	})
	next.Phase = PhaseBuilding
	next.ErrMessage = ""
	return next
}

// Total sums the display prices of every cart entry.
func (s State) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range s.Cart {
		total = total.Add(entry.PriceCAD)
	}
	return total
}

// BeginSubmit guards and aggregates. An empty cart or an in-flight
// submission is a no-op returning nil items. Otherwise entries are
// collapsed to one line item per price ID with quantities summed,
// keeping first occurrence order.
func (s State) BeginSubmit() (State, []checkout.RawItem) {
	if len(s.Cart) == 0 || s.Phase == PhaseSubmitting || s.Phase == PhaseRedirecting {
		return s, nil
	}

	counts := make(map[string]int64, len(s.Cart))
	order := make([]string, 0, len(s.Cart))
	for _, entry := range s.Cart {
		if _, seen := counts[entry.PriceID]; !seen {
			order = append(order, entry.PriceID)
		}
		counts[entry.PriceID]++
	}

	items := make([]checkout.RawItem, 0, len(order))
	for _, priceID := range order {
		items = append(items, checkout.RawItem{PriceID: priceID, Quantity: counts[priceID]})
	}

	next := s.clone()
	next.Phase = PhaseSubmitting
	next.ErrMessage = ""
	return next, items
}

// CompleteSubmit records the redirect URL. Terminal: the browser
// navigates away and no further transition matters.
func (s State) CompleteSubmit(url string) State {
	next := s.clone()
	next.Phase = PhaseRedirecting
	next.RedirectURL = url
	return next
}

// FailSubmit captures the error and keeps the cart so the shopper can
// retry without re-selecting anything.
func (s State) FailSubmit(err error) State {
	next := s.clone()
	next.Phase = PhaseFailed
	if err != nil {
		next.ErrMessage = err.Error()
	} else {
		next.ErrMessage = "Something went wrong"
	}
	return next
}

// Retry returns a failed submission to building with the cart intact.
func (s State) Retry() State {
	if s.Phase != PhaseFailed {
		return s
	}
	next := s.clone()
	next.Phase = PhaseBuilding
	next.ErrMessage = ""
	return next
}
