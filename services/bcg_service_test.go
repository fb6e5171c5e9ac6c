package services

import (
	"testing"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		rms    float64
		growth float64
		want   models.Quadrant
	}{
		{"both at threshold is Star", 1.0, 10, models.QuadrantStar},
		{"rms just below parity at high growth", 0.999999, 10, models.QuadrantQuestionMark},
		{"growth just below threshold at parity", 1.0, 9.999999, models.QuadrantCashCow},
		{"both low", 0.5, 5, models.QuadrantDog},
		{"high rms low growth", 2.4, 3, models.QuadrantCashCow},
		{"low rms high growth", 0.2, 25, models.QuadrantQuestionMark},
		{"negative growth with strong share", 1.5, -2, models.QuadrantCashCow},
		{"zero rms zero growth", 0, 0, models.QuadrantDog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rms, tt.growth))
		})
	}
}

func TestComputePoints(t *testing.T) {
	points, err := ComputePoints([]models.ProductInput{
		{Name: "Alpha", MarketShare: 0.30, LargestRivalShare: 0.25, MarketGrowthRate: 14},
		{Name: "Delta", MarketShare: 0.12, LargestRivalShare: 0.30, MarketGrowthRate: 4},
	})
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "Alpha", points[0].Name)
	assert.InDelta(t, 1.2, points[0].RMS, 1e-9)
	assert.Equal(t, 14.0, points[0].Growth)
	assert.Equal(t, models.QuadrantStar, points[0].Quadrant)

	assert.InDelta(t, 0.4, points[1].RMS, 1e-9)
	assert.Equal(t, models.QuadrantDog, points[1].Quadrant)
}

func TestComputePointsRejectsNonPositiveRivalShare(t *testing.T) {
	_, err := ComputePoints([]models.ProductInput{
		{Name: "Alpha", MarketShare: 0.30, LargestRivalShare: 0, MarketGrowthRate: 14},
	})
	require.Error(t, err)
	var compErr *ComputationError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "Alpha", compErr.Name)
}

func TestComputePointsRejectsEmptyBatch(t *testing.T) {
	_, err := ComputePoints(nil)
	var compErr *ComputationError
	require.ErrorAs(t, err, &compErr)
}
