// Command genmock generates JSON fixtures for frontend and API tests using the
// real domain package: a seeded synthetic dashboard and a heat-index grid over
// a range of temperatures and humidities.
//
// Usage:
//
//	go run ./cmd/genmock -out-dir data/mock -days 30 -seed 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

var fixtureTime = time.Date(2026, time.July, 15, 15, 0, 0, 0, time.UTC)

// gridCell is one classified point of the heat-index grid.
type gridCell struct {
	Temperature float64          `json:"temperature"`
	Humidity    float64          `json:"humidity"`
	HeatIndex   float64          `json:"heatIndex"`
	RiskLevel   domain.RiskLevel `json:"riskLevel"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "", "directory to write fixtures into")
	days := flag.Int("days", domain.DefaultDashboardDays, "days of dashboard history")
	seed := flag.Uint64("seed", 42, "seed for the synthetic series")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out-dir")
	}
	if *days < 1 || *days > domain.MaxDashboardDays {
		return fmt.Errorf("-days must be between 1 and %d", domain.MaxDashboardDays)
	}

	// Set a fixed clock for reproducible timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	historical := domain.GenerateHistorical(*days, domain.Now(), rng)
	dashboard := domain.BuildDashboard("metro-area", *days, historical, 125000+rng.IntN(50000))

	dashPath := filepath.Join(*outDir, "dashboard.json")
	if err := writeJSON(dashPath, dashboard); err != nil {
		return fmt.Errorf("writing dashboard fixture: %w", err)
	}
	log.Printf("wrote dashboard fixture: %s (%d days)", dashPath, len(historical))

	grid := heatIndexGrid()
	gridPath := filepath.Join(*outDir, "heat_index_grid.json")
	if err := writeJSON(gridPath, grid); err != nil {
		return fmt.Errorf("writing grid fixture: %w", err)
	}
	log.Printf("wrote heat index grid: %s (%d cells)", gridPath, len(grid))

	printStats(grid)
	return nil
}

// heatIndexGrid classifies 20-45 °C in 1 °C steps against 10-90 % humidity in
// 10 % steps.
func heatIndexGrid() []gridCell {
	cells := make([]gridCell, 0, 26*9)
	for t := 20.0; t <= 45; t++ {
		for h := 10.0; h <= 90; h += 10 {
			res := domain.Classify(domain.Reading{Temperature: t, Humidity: h})
			cells = append(cells, gridCell{
				Temperature: t,
				Humidity:    h,
				HeatIndex:   domain.Round1(res.HeatIndex),
				RiskLevel:   res.RiskLevel,
			})
		}
	}
	return cells
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(grid []gridCell) {
	counts := map[domain.RiskLevel]int{}
	for _, c := range grid {
		counts[c.RiskLevel]++
	}
	fmt.Println("\n=== Heat Index Grid ===")
	for _, l := range domain.RiskLevels() {
		fmt.Printf("  %-10s %4d\n", l, counts[l])
	}
}
