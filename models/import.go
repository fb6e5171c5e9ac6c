package models

// ImportRow is one validated line of the bulk upload. Numeric fields keep
// the upload's percent units; conversion to fractions happens at compute.
type ImportRow struct {
	ProductName              string  `json:"product_name"`
	MarketName               string  `json:"market_name"`
	MarketGrowthRate         float64 `json:"market_growth_rate"`          // percent
	MarketSharePercent       float64 `json:"market_share_percent"`        // percent
	LargestRivalSharePercent float64 `json:"largest_rival_share_percent"` // percent
}

// ImportOutcome distinguishes the two success shapes of a bulk import. The
// third case of the taxonomy, outright failure, is an error return and never
// reaches a report.
type ImportOutcome string

const (
	// OutcomePersisted: entities stored and points computed.
	OutcomePersisted ImportOutcome = "persisted"
	// OutcomeComputedOnly: points computed but persistence was unavailable.
	OutcomeComputedOnly ImportOutcome = "computed_only"
)

// ImportReport is the result of a bulk import run.
type ImportReport struct {
	Outcome           ImportOutcome `json:"outcome"`
	MarketsPersisted  int           `json:"markets_persisted"`
	ProductsPersisted int           `json:"products_persisted"`
	Points            []BCGPoint    `json:"points"`
}

// Degraded reports whether the run computed points without persisting.
func (r *ImportReport) Degraded() bool {
	return r.Outcome == OutcomeComputedOnly
}
