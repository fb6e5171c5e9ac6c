package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/afrazja/bizanalysis-backend/config"
	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/afrazja/bizanalysis-backend/services"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// demoRows is the sample portfolio the dashboard ships with.
var demoRows = []models.ImportRow{
	{ProductName: "Alpha", MarketName: "US SMB HR", MarketGrowthRate: 14, MarketSharePercent: 30, LargestRivalSharePercent: 25},
	{ProductName: "Beta", MarketName: "US SMB HR", MarketGrowthRate: 12, MarketSharePercent: 18, LargestRivalSharePercent: 35},
	{ProductName: "Gamma", MarketName: "EU Mid-Market HR", MarketGrowthRate: 6, MarketSharePercent: 42, LargestRivalSharePercent: 28},
	{ProductName: "Delta", MarketName: "APAC Payroll", MarketGrowthRate: 4, MarketSharePercent: 12, LargestRivalSharePercent: 30},
}

// main seeds the demo portfolio: markets, products and one BCG snapshot.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("BIZ ANALYSIS - Demo Portfolio Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	if config.DB == nil {
		fmt.Println("❌ Database unavailable; nothing to seed")
		os.Exit(1)
	}
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.DB.AutoMigrate(&models.Market{}, &models.Product{}, &models.Snapshot{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Migrations applied")

	// Markets first, products second; the same ordering the import
	// pipeline guarantees.
	markets := services.DedupeMarkets(demoRows)
	records := make([]models.Market, 0, len(markets))
	for _, m := range markets {
		records = append(records, models.Market{Name: m.Name, GrowthRate: m.GrowthRate})
	}
	if err := config.DB.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&records).Error; err != nil {
		log.Fatalf("Failed to seed markets: %v", err)
	}
	log.Printf("✓ Seeded %d market(s)", len(records))

	var stored []models.Market
	if err := config.DB.Find(&stored).Error; err != nil {
		log.Fatalf("Failed to load markets: %v", err)
	}

	products := make([]models.Product, 0, len(demoRows))
	inputs := make([]models.ProductInput, 0, len(demoRows))
	for _, r := range demoRows {
		p := models.Product{
			Name:              r.ProductName,
			MarketShare:       r.MarketSharePercent / 100,
			LargestRivalShare: r.LargestRivalSharePercent / 100,
		}
		for _, m := range stored {
			if m.Name == r.MarketName {
				id := m.ID
				p.MarketID = &id
				break
			}
		}
		products = append(products, p)
		inputs = append(inputs, models.ProductInput{
			Name:              r.ProductName,
			MarketShare:       r.MarketSharePercent / 100,
			LargestRivalShare: r.LargestRivalSharePercent / 100,
			MarketGrowthRate:  r.MarketGrowthRate,
		})
	}
	if err := config.DB.Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("✓ Seeded %d product(s)", len(products))

	// One computed BCG snapshot so the compare view has something to show.
	points, err := services.ComputePoints(inputs)
	if err != nil {
		log.Fatalf("Failed to compute points: %v", err)
	}
	payload, err := json.Marshal(models.BCGPayload{Points: points})
	if err != nil {
		log.Fatalf("Failed to encode payload: %v", err)
	}
	note := "seeded demo portfolio"
	snapshot := models.Snapshot{Kind: "BCG", Payload: payload, Note: &note}
	if err := config.DB.Create(&snapshot).Error; err != nil {
		log.Fatalf("Failed to seed snapshot: %v", err)
	}
	log.Printf("✓ Seeded BCG snapshot %s with %d point(s)", snapshot.ID, len(points))

	fmt.Println()
	fmt.Println("✅ Done")
}
