package services

import (
	"context"
	"strings"
	"testing"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCSV = `product_name,market_name,market_growth_rate,market_share_percent,largest_rival_share_percent
Alpha,US SMB HR,14,30,25
Beta,US SMB HR,12,18,35
Gamma,EU Mid-Market HR,6,42,28
`

func TestParseImportCSV(t *testing.T) {
	rows, err := ParseImportCSV(strings.NewReader(validCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha", rows[0].ProductName)
	assert.Equal(t, "US SMB HR", rows[0].MarketName)
	assert.Equal(t, 14.0, rows[0].MarketGrowthRate)
	assert.Equal(t, 30.0, rows[0].MarketSharePercent)
	assert.Equal(t, 25.0, rows[0].LargestRivalSharePercent)
}

func TestParseImportCSVHeaderCaseInsensitive(t *testing.T) {
	csv := "Product_Name, MARKET_NAME ,Market_Growth_Rate,market_share_percent,largest_rival_share_percent\n" +
		"Alpha,US SMB HR,14,30,25\n"
	rows, err := ParseImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "US SMB HR", rows[0].MarketName)
}

func TestParseImportCSVMissingColumn(t *testing.T) {
	csv := "product_name,market_name,market_growth_rate,market_share_percent\nAlpha,US,14,30\n"
	_, err := ParseImportCSV(strings.NewReader(csv))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "largest_rival_share_percent", valErr.Field)
}

func TestParseImportCSVEmptyFile(t *testing.T) {
	_, err := ParseImportCSV(strings.NewReader(""))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestValidateRowsAllOrNothing(t *testing.T) {
	rows, err := ParseImportCSV(strings.NewReader(
		"product_name,market_name,market_growth_rate,market_share_percent,largest_rival_share_percent\n" +
			"Alpha,US SMB HR,14,30,25\n" +
			"Beta,US SMB HR,abc,18,35\n"))
	require.NoError(t, err)

	err = ValidateRows(rows)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 2, valErr.Row)
	assert.Equal(t, "market_growth_rate", valErr.Field)
}

func TestValidateRowsEmptyNames(t *testing.T) {
	err := ValidateRows([]models.ImportRow{
		{ProductName: "", MarketName: "US", MarketGrowthRate: 1, MarketSharePercent: 1, LargestRivalSharePercent: 1},
	})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "product_name", valErr.Field)
}

func TestDedupeMarketsFirstWins(t *testing.T) {
	markets := DedupeMarkets([]models.ImportRow{
		{ProductName: "Alpha", MarketName: "US SMB HR", MarketGrowthRate: 14},
		{ProductName: "Beta", MarketName: "US SMB HR", MarketGrowthRate: 99},
		{ProductName: "Gamma", MarketName: "EU Mid-Market HR", MarketGrowthRate: 6},
	})
	require.Len(t, markets, 2)
	assert.Equal(t, "US SMB HR", markets[0].Name)
	assert.Equal(t, 14.0, markets[0].GrowthRate) // first occurrence's rate
	assert.Equal(t, "EU Mid-Market HR", markets[1].Name)
}

func TestRunImportRejectsInvalidBatchBeforeAnyEffect(t *testing.T) {
	rows := []models.ImportRow{
		{ProductName: "Alpha", MarketName: "US", MarketGrowthRate: 14, MarketSharePercent: 30, LargestRivalSharePercent: 25},
		{ProductName: "Beta", MarketName: "", MarketGrowthRate: 12, MarketSharePercent: 18, LargestRivalSharePercent: 35},
	}
	report, err := RunImport(context.Background(), nil, rows)
	assert.Nil(t, report)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestRunImportDegradesWithoutDatabase(t *testing.T) {
	rows, err := ParseImportCSV(strings.NewReader(validCSV))
	require.NoError(t, err)

	report, err := RunImport(context.Background(), nil, rows)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, models.OutcomeComputedOnly, report.Outcome)
	assert.True(t, report.Degraded())
	assert.Equal(t, 0, report.MarketsPersisted)
	assert.Equal(t, 0, report.ProductsPersisted)
	// The chart still comes back: one point per validated row.
	require.Len(t, report.Points, len(rows))

	// Shares were converted to fractions before compute.
	assert.InDelta(t, 1.2, report.Points[0].RMS, 1e-9)
	assert.Equal(t, models.QuadrantStar, report.Points[0].Quadrant)
}

func TestRunImportComputeFailureIsFatal(t *testing.T) {
	rows := []models.ImportRow{
		{ProductName: "Alpha", MarketName: "US", MarketGrowthRate: 14, MarketSharePercent: 30, LargestRivalSharePercent: 0},
	}
	report, err := RunImport(context.Background(), nil, rows)
	assert.Nil(t, report)
	var compErr *ComputationError
	require.ErrorAs(t, err, &compErr)
}
