package models

// Quadrant is the strategic category assigned to a growth/share pair.
// The string values are the wire values the dashboard renders verbatim.
type Quadrant string

const (
	QuadrantStar         Quadrant = "Star"
	QuadrantCashCow      Quadrant = "Cash Cow"
	QuadrantQuestionMark Quadrant = "Question Mark"
	QuadrantDog          Quadrant = "Dog"
)

// ProductInput is the /bcg request shape. Shares are fractions (0.30 for
// 30%), growth is a percentage.
type ProductInput struct {
	Name              string  `json:"name" binding:"required" example:"Alpha"`
	MarketShare       float64 `json:"market_share" example:"0.30"`
	LargestRivalShare float64 `json:"largest_rival_share" example:"0.25"`
	MarketGrowthRate  float64 `json:"market_growth_rate" example:"14"`
}

// BCGPoint is one computed matrix point. Immutable once produced; the
// stored quadrant is display metadata and is recomputed wherever it is
// load-bearing.
type BCGPoint struct {
	Name     string   `json:"name"`
	RMS      float64  `json:"rms"`
	Growth   float64  `json:"growth"`
	Quadrant Quadrant `json:"quadrant"`
}

// DiffRecord is one row of a snapshot comparison. Delta fields are non-nil
// iff the name exists on both sides; QuadrantTo is always derivable from To.
type DiffRecord struct {
	Name         string    `json:"name"`
	From         *BCGPoint `json:"from"`
	To           *BCGPoint `json:"to"`
	DRMS         *float64  `json:"drms"`
	DGrowth      *float64  `json:"dgrowth"`
	QuadrantFrom *Quadrant `json:"quadrant_from"`
	QuadrantTo   Quadrant  `json:"quadrant_to"`
	Changed      bool      `json:"changed"`
}
