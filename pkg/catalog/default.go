package catalog

// Live price IDs issued by Stripe for the current LUSTER catalog. The
// sheer shade ships in jars only. Superseded tier-only prices from the
// first storefront revision are intentionally absent.
func Default() *Catalog {
	return New(map[SKU]string{
		// Builder in a Jar
		{Shade: ShadeClear, Format: FormatJar, Tier: TierSample}: "price_1QyKcBJx2fLmA7veQ3sT9dKw",
		{Shade: ShadeClear, Format: FormatJar, Tier: TierStudio}: "price_1QyKcnJx2fLmA7veZjW4uHqa",
		{Shade: ShadeClear, Format: FormatJar, Tier: TierRefill}: "price_1QyKdQJx2fLmA7veybM8rNPt",
		{Shade: ShadeMilky, Format: FormatJar, Tier: TierSample}: "price_1QyKe2Jx2fLmA7veLcV5gTzd",
		{Shade: ShadeMilky, Format: FormatJar, Tier: TierStudio}: "price_1QyKefJx2fLmA7veXq0mWbRs",
		{Shade: ShadeMilky, Format: FormatJar, Tier: TierRefill}: "price_1QyKfHJx2fLmA7veBd6nKjUo",
		{Shade: ShadeNude, Format: FormatJar, Tier: TierSample}:  "price_1QyKfuJx2fLmA7vePw3hYcEi",
		{Shade: ShadeNude, Format: FormatJar, Tier: TierStudio}:  "price_1QyKgWJx2fLmA7veTk9sFmQn",
		{Shade: ShadeNude, Format: FormatJar, Tier: TierRefill}:  "price_1QyKh8Jx2fLmA7veGr2vLxAc",
		{Shade: ShadeSheer, Format: FormatJar, Tier: TierSample}: "price_1QyKhkJx2fLmA7veJn7pDsBy",
		{Shade: ShadeSheer, Format: FormatJar, Tier: TierStudio}: "price_1QyKiNJx2fLmA7veRm4qVtZe",
		{Shade: ShadeSheer, Format: FormatJar, Tier: TierRefill}: "price_1QyKizJx2fLmA7veWx8kCgHu",

		// Builder in a Bottle
		{Shade: ShadeClear, Format: FormatBottle, Tier: TierSample}:   "price_1QyKjbJx2fLmA7veNf5tMpOj",
		{Shade: ShadeClear, Format: FormatBottle, Tier: TierStandard}: "price_1QyKkDJx2fLmA7veSh1wXbKl",
		{Shade: ShadeClear, Format: FormatBottle, Tier: TierStudio}:   "price_1QyKkqJx2fLmA7veUc6yZnQv",
		{Shade: ShadeMilky, Format: FormatBottle, Tier: TierSample}:   "price_1QyKlSJx2fLmA7veAo9dRfTg",
		{Shade: ShadeMilky, Format: FormatBottle, Tier: TierStandard}: "price_1QyKm4Jx2fLmA7veEt2jGkWm",
		{Shade: ShadeMilky, Format: FormatBottle, Tier: TierStudio}:   "price_1QyKmgJx2fLmA7veIv7bNqYs",
		{Shade: ShadeNude, Format: FormatBottle, Tier: TierSample}:    "price_1QyKnIJx2fLmA7veOz4fSdCp",
		{Shade: ShadeNude, Format: FormatBottle, Tier: TierStandard}:  "price_1QyKnuJx2fLmA7veQb8hTgVr",
		{Shade: ShadeNude, Format: FormatBottle, Tier: TierStudio}:    "price_1QyKoWJx2fLmA7veMd3kUhXw",
	})
}
