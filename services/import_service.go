package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// importHeaders is the required upload header set, in template order.
var importHeaders = []string{
	"product_name",
	"market_name",
	"market_growth_rate",
	"market_share_percent",
	"largest_rival_share_percent",
}

// ParseImportCSV reads the bulk upload format: a header row (matched
// case-insensitively after trimming) followed by data rows. Unknown or
// missing columns reject the file.
func ParseImportCSV(r io.Reader) ([]models.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ValidationError{Field: "file", Msg: "empty file"}
	}
	if err != nil {
		return nil, &ValidationError{Field: "file", Msg: "parse error: " + err.Error()}
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range importHeaders {
		if _, ok := index[want]; !ok {
			return nil, &ValidationError{Field: want, Msg: "missing column; ensure headers match the template"}
		}
	}

	var rows []models.ImportRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ValidationError{Row: line + 1, Field: "file", Msg: "parse error: " + err.Error()}
		}
		line++

		// Skip fully empty lines the way the dashboard's parser did.
		empty := true
		for _, cell := range record {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		cell := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		rows = append(rows, models.ImportRow{
			ProductName:              cell("product_name"),
			MarketName:               cell("market_name"),
			MarketGrowthRate:         parseOrNaN(cell("market_growth_rate")),
			MarketSharePercent:       parseOrNaN(cell("market_share_percent")),
			LargestRivalSharePercent: parseOrNaN(cell("largest_rival_share_percent")),
		})
	}
	return rows, nil
}

// parseOrNaN keeps the upload parser's behavior: empty or non-numeric text
// becomes NaN, which validation then rejects.
func parseOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ValidateRows is the all-or-nothing gate: one bad row rejects the batch so
// a partially imported dataset can never slip through silently.
func ValidateRows(rows []models.ImportRow) error {
	if len(rows) == 0 {
		return &ValidationError{Field: "file", Msg: "no data rows"}
	}
	for i, r := range rows {
		row := i + 1
		switch {
		case r.ProductName == "":
			return &ValidationError{Row: row, Field: "product_name", Msg: "must not be empty"}
		case r.MarketName == "":
			return &ValidationError{Row: row, Field: "market_name", Msg: "must not be empty"}
		case math.IsNaN(r.MarketGrowthRate):
			return &ValidationError{Row: row, Field: "market_growth_rate", Msg: "must be a number"}
		case math.IsNaN(r.MarketSharePercent):
			return &ValidationError{Row: row, Field: "market_share_percent", Msg: "must be a number"}
		case math.IsNaN(r.LargestRivalSharePercent):
			return &ValidationError{Row: row, Field: "largest_rival_share_percent", Msg: "must be a number"}
		}
	}
	return nil
}

// DedupeMarkets collapses rows referencing the same market name into one
// MarketIn each, keeping the first occurrence's growth rate.
func DedupeMarkets(rows []models.ImportRow) []models.MarketIn {
	seen := make(map[string]bool, len(rows))
	markets := make([]models.MarketIn, 0, len(rows))
	for _, r := range rows {
		if seen[r.MarketName] {
			continue
		}
		seen[r.MarketName] = true
		markets = append(markets, models.MarketIn{Name: r.MarketName, GrowthRate: r.MarketGrowthRate})
	}
	return markets
}

// RunImport is the bulk import pipeline: validate, dedupe markets, persist
// best-effort, compute always. Persistence failure (including db == nil)
// downgrades the outcome to computed-only; validation and compute failures
// are the caller's to handle.
func RunImport(ctx context.Context, db *gorm.DB, rows []models.ImportRow) (*models.ImportReport, error) {
	// 1) Validate before any effect.
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}

	report := &models.ImportReport{Outcome: OutcomeOf(false)}

	// 2+3) Unique markets, then persist markets before products. The whole
	// stage is best-effort: the chart must come back even with no storage.
	if err := persistEntities(ctx, db, rows, report); err != nil {
		log.Printf("[import] ⚠️  persistence skipped, computing only: %v", err)
		report.Outcome = OutcomeOf(true)
		report.MarketsPersisted = 0
		report.ProductsPersisted = 0
	}

	// 4) Compute. The one fatal stage.
	inputs := make([]models.ProductInput, 0, len(rows))
	for _, r := range rows {
		inputs = append(inputs, models.ProductInput{
			Name:              r.ProductName,
			MarketShare:       r.MarketSharePercent / 100,
			LargestRivalShare: r.LargestRivalSharePercent / 100,
			MarketGrowthRate:  r.MarketGrowthRate,
		})
	}
	points, err := ComputePoints(inputs)
	if err != nil {
		return nil, err
	}
	report.Points = points
	return report, nil
}

// OutcomeOf maps the degraded flag onto the outcome enum.
func OutcomeOf(degraded bool) models.ImportOutcome {
	if degraded {
		return models.OutcomeComputedOnly
	}
	return models.OutcomePersisted
}

func persistEntities(ctx context.Context, db *gorm.DB, rows []models.ImportRow, report *models.ImportReport) error {
	if db == nil {
		return fmt.Errorf("no database connection")
	}

	markets := DedupeMarkets(rows)
	records := make([]models.Market, 0, len(markets))
	for _, m := range markets {
		records = append(records, models.Market{Name: m.Name, GrowthRate: m.GrowthRate})
	}
	// Re-imports of the same file keep the existing market rows.
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&records).Error; err != nil {
		return fmt.Errorf("persist markets: %w", err)
	}

	// Resolve ids for every referenced name, including pre-existing markets
	// skipped by the conflict clause.
	names := make([]string, 0, len(markets))
	for _, m := range markets {
		names = append(names, m.Name)
	}
	var stored []models.Market
	if err := db.WithContext(ctx).Where("name IN ?", names).Find(&stored).Error; err != nil {
		return fmt.Errorf("load market ids: %w", err)
	}
	nameToID := make(map[string]uuid.UUID, len(stored))
	for _, m := range stored {
		nameToID[m.Name] = m.ID
	}

	products := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		var marketID *uuid.UUID
		if id, ok := nameToID[r.MarketName]; ok {
			id := id
			marketID = &id
		}
		products = append(products, models.Product{
			Name:              r.ProductName,
			MarketID:          marketID,
			MarketShare:       r.MarketSharePercent / 100,
			LargestRivalShare: r.LargestRivalSharePercent / 100,
		})
	}
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("persist products: %w", err)
	}

	report.MarketsPersisted = len(markets)
	report.ProductsPersisted = len(products)
	return nil
}
