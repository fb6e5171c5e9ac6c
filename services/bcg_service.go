package services

import (
	"github.com/afrazja/bizanalysis-backend/models"
)

// Quadrant thresholds. These are the single source of the classification
// rule for compute, diff, and degraded import display alike; change them in
// one place or not at all.
const (
	GrowthThreshold = 10.0 // percentage points
	RMSThreshold    = 1.0  // parity with largest rival
)

// Classify maps a growth/share pair to its strategic quadrant. Total over
// all finite inputs; both bounds are inclusive on the high side.
func Classify(rms, growth float64) models.Quadrant {
	switch {
	case growth >= GrowthThreshold && rms >= RMSThreshold:
		return models.QuadrantStar
	case growth < GrowthThreshold && rms >= RMSThreshold:
		return models.QuadrantCashCow
	case growth >= GrowthThreshold && rms < RMSThreshold:
		return models.QuadrantQuestionMark
	default:
		return models.QuadrantDog
	}
}

// ComputePoints turns product inputs into classified matrix points.
// rms = own share / largest rival's share, so a non-positive rival share is
// a ComputationError; so is an empty batch, since there is nothing to chart.
func ComputePoints(inputs []models.ProductInput) ([]models.BCGPoint, error) {
	if len(inputs) == 0 {
		return nil, &ComputationError{Msg: "no products to compute"}
	}

	points := make([]models.BCGPoint, 0, len(inputs))
	for _, in := range inputs {
		if in.LargestRivalShare <= 0 {
			return nil, &ComputationError{Name: in.Name, Msg: "largest_rival_share must be positive"}
		}
		rms := in.MarketShare / in.LargestRivalShare
		points = append(points, models.BCGPoint{
			Name:     in.Name,
			RMS:      rms,
			Growth:   in.MarketGrowthRate,
			Quadrant: Classify(rms, in.MarketGrowthRate),
		})
	}
	return points, nil
}
