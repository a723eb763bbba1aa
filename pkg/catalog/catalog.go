package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Shade string

const (
	ShadeClear Shade = "clear"
	ShadeMilky Shade = "milky"
	ShadeNude  Shade = "nude"
	ShadeSheer Shade = "sheer"
)

type Format string

const (
	FormatJar    Format = "jar"
	FormatBottle Format = "bottle"
)

type Tier string

const (
	TierSample   Tier = "sample"
	TierStudio   Tier = "studio"
	TierRefill   Tier = "refill"
	TierStandard Tier = "standard"
)

// SKU identifies a purchasable configuration. Each SKU maps 1:1 to a
// Stripe price ID; the price ID itself is opaque and never parsed.
type SKU struct {
	Shade  Shade
	Format Format
	Tier   Tier
}

func (s SKU) String() string {
	return fmt.Sprintf("%s_%s_%s", s.Shade, s.Format, s.Tier)
}

// Catalog is the allowlist of sellable price IDs. It is built once at
// startup and injected wherever price IDs are validated, so tests can
// swap in their own tables.
type Catalog struct {
	prices  map[SKU]string
	reverse map[string]SKU
}

func New(prices map[SKU]string) *Catalog {
	c := &Catalog{
		prices:  make(map[SKU]string, len(prices)),
		reverse: make(map[string]SKU, len(prices)),
	}
	for sku, priceID := range prices {
		if priceID == "" {
			continue
		}
		c.prices[sku] = priceID
		c.reverse[priceID] = sku
	}
	return c
}

func (c *Catalog) PriceID(sku SKU) (string, bool) {
	if c == nil {
		return "", false
	}
	priceID, ok := c.prices[sku]
	return priceID, ok
}

func (c *Catalog) Contains(priceID string) bool {
	if c == nil || priceID == "" {
		return false
	}
	_, ok := c.reverse[priceID]
	return ok
}

func (c *Catalog) SKUFor(priceID string) (SKU, bool) {
	if c == nil {
		return SKU{}, false
	}
	sku, ok := c.reverse[priceID]
	return sku, ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.prices)
}

// TierOption carries the storefront display data for one size tier.
type TierOption struct {
	Tier        Tier
	Label       string
	Blurb       string
	PriceCAD    decimal.Decimal
	SpecValue   int
	SpecUnit    string
	Recommended bool
}

// SizeSpec renders the net quantity the way the label prints it,
// e.g. "5 g" or "15 mL".
func (t TierOption) SizeSpec() string {
	return fmt.Sprintf("%d %s", t.SpecValue, t.SpecUnit)
}

var tiersByFormat = map[Format][]TierOption{
	FormatJar: {
		{Tier: TierSample, Label: "Sample Jar", Blurb: "Pure structural control", PriceCAD: decimal.NewFromInt(18), SpecValue: 5, SpecUnit: "g"},
		{Tier: TierStudio, Label: "Studio Jar", Blurb: "Balanced coverage for regular services", PriceCAD: decimal.NewFromInt(58), SpecValue: 25, SpecUnit: "g"},
		{Tier: TierRefill, Label: "Refill Jar", Blurb: "Designed for high-volume studio use", PriceCAD: decimal.NewFromInt(158), SpecValue: 100, SpecUnit: "g", Recommended: true},
	},
	FormatBottle: {
		{Tier: TierSample, Label: "Sample Bottle", Blurb: "Precision application · Try format", PriceCAD: decimal.NewFromInt(14), SpecValue: 5, SpecUnit: "mL"},
		{Tier: TierStandard, Label: "Standard Bottle", Blurb: "Daily studio workflow", PriceCAD: decimal.NewFromInt(28), SpecValue: 15, SpecUnit: "mL", Recommended: true},
		{Tier: TierStudio, Label: "Studio Bottle", Blurb: "Designed for high-use professional services", PriceCAD: decimal.NewFromInt(44), SpecValue: 30, SpecUnit: "mL"},
	},
}

func Tiers(format Format) []TierOption {
	tiers := tiersByFormat[format]
	out := make([]TierOption, len(tiers))
	copy(out, tiers)
	return out
}

func TierByID(format Format, tier Tier) (TierOption, bool) {
	for _, option := range tiersByFormat[format] {
		if option.Tier == tier {
			return option, true
		}
	}
	return TierOption{}, false
}

// DefaultTier is the recommended tier for a format, falling back to the
// first one listed.
func DefaultTier(format Format) Tier {
	tiers := tiersByFormat[format]
	for _, option := range tiers {
		if option.Recommended {
			return option.Tier
		}
	}
	if len(tiers) > 0 {
		return tiers[0].Tier
	}
	return ""
}

// Product is one shade within a format.
type Product struct {
	Shade       Shade
	Format      Format
	Name        string
	JPName      string
	Description string
}

var products = []Product{
	{Shade: ShadeClear, Format: FormatJar, Name: "Clear Structure", JPName: "クリア", Description: "Unmatched clarity for color layering and encapsulation."},
	{Shade: ShadeMilky, Format: FormatJar, Name: "Milky Structure", JPName: "ミルキー", Description: "Soft diffusion for natural depth and gentle coverage."},
	{Shade: ShadeNude, Format: FormatJar, Name: "Nude Structure", JPName: "ヌード", Description: "Warm coverage with a natural finish for studio staples."},
	{Shade: ShadeSheer, Format: FormatJar, Name: "Sheer Structure", JPName: "シアー", Description: "A translucent veil for subtle structure and refinement."},
	{Shade: ShadeClear, Format: FormatBottle, Name: "Clear Structure", JPName: "クリア", Description: "Brush-applied control for consistent structure work."},
	{Shade: ShadeMilky, Format: FormatBottle, Name: "Milky Structure", JPName: "ミルキー", Description: "Soft coverage with workflow speed and brush control."},
	{Shade: ShadeNude, Format: FormatBottle, Name: "Nude Structure", JPName: "ヌード", Description: "Natural warmth in a controlled-flow workflow format."},
}

func Products(format Format) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Format == format {
			out = append(out, p)
		}
	}
	return out
}

func ProductFor(shade Shade, format Format) (Product, bool) {
	for _, p := range products {
		if p.Shade == shade && p.Format == format {
			return p, true
		}
	}
	return Product{}, false
}
