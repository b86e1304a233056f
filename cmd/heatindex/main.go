// Command heatindex classifies a single temperature/humidity reading and
// prints its heat index, risk tier, and recommendations.
//
// Usage:
//
//	go run ./cmd/heatindex -temperature 35.5 -humidity 65
//	go run ./cmd/heatindex -temperature 32 -humidity 70 -audience personal -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
)

// output is the classifier contract printed with -json.
type output struct {
	HeatIndex       float64                      `json:"heatIndex"`
	RiskLevel       domain.RiskLevel             `json:"riskLevel"`
	Recommendations map[domain.Audience][]string `json:"recommendations"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("heatindex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	temperature := fs.Float64("temperature", math.NaN(), "air temperature in °C (required)")
	humidity := fs.Float64("humidity", math.NaN(), "relative humidity in percent, 0-100 (required)")
	audience := fs.String("audience", "", "limit recommendations to personal, community, or infrastructure")
	asJSON := fs.Bool("json", false, "print JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	r, err := domain.NewReading(*temperature, *humidity)
	if err != nil {
		fmt.Fprintf(stderr, "heatindex: %v\n", err)
		fs.Usage()
		return 2
	}

	a := domain.Assess(r)
	recs := a.Recommendations
	if *audience != "" {
		aud, err := domain.ParseAudience(*audience)
		if err != nil {
			fmt.Fprintf(stderr, "heatindex: %v\n", err)
			return 2
		}
		recs = map[domain.Audience][]string{aud: recs[aud]}
	}

	out := output{HeatIndex: domain.Round1(a.HeatIndex), RiskLevel: a.RiskLevel, Recommendations: recs}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(stderr, "heatindex: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "Temperature: %.1f °C  Humidity: %.0f%%\n", r.Temperature, r.Humidity)
	fmt.Fprintf(stdout, "Heat index:  %.1f °C\n", out.HeatIndex)
	fmt.Fprintf(stdout, "Risk level:  %s\n", out.RiskLevel)
	for _, aud := range domain.Audiences() {
		items, ok := recs[aud]
		if !ok {
			continue
		}
		fmt.Fprintf(stdout, "\n%s:\n", aud)
		for _, item := range items {
			fmt.Fprintf(stdout, "  - %s\n", item)
		}
	}
	return 0
}
