// Command validate checks the integrity of persisted submissions and, when
// given, a heat index grid fixture produced by genmock. It re-runs the domain
// validation over every stored record and recomputes every grid cell.
//
// Usage:
//
//	go run ./cmd/validate -data-dir data -grid data/mock/heat_index_grid.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/heat-risk-service/internal/adapter/filestore"
	"github.com/couchcryptid/heat-risk-service/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataDir := flag.String("data-dir", "", "directory containing contacts.json and feedback.json")
	gridPath := flag.String("grid", "", "optional path to a heat index grid fixture")
	flag.Parse()

	if *dataDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dataDir, *gridPath); code != 0 {
		os.Exit(code)
	}
}

func run(dataDir, gridPath string) int {
	ctx := context.Background()

	fmt.Println("=== Heat Risk Data Validation ===")
	fmt.Println()

	// filestore.New creates missing directories; a mistyped path must fail instead.
	info, err := os.Stat(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: data dir: %v\n", err)
		return 1
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "FATAL: data dir %s is not a directory\n", dataDir)
		return 1
	}

	store, err := filestore.New(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: open data dir: %v\n", err)
		return 1
	}
	contacts, err := store.ListContacts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load contacts: %v\n", err)
		return 1
	}
	feedback, err := store.ListFeedback(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load feedback: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateContacts(contacts),
		validateFeedback(feedback),
	}

	var grid []gridCell
	if gridPath != "" {
		grid, err = loadJSON[gridCell](gridPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: load grid: %v\n", err)
			return 1
		}
		phases = append(phases, validateGrid(grid))
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d contacts, %d feedback, %d grid cells\n", len(contacts), len(feedback), len(grid))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Contacts ──
// Every stored contact must still pass form validation.

func validateContacts(contacts []domain.Contact) *phase {
	p := &phase{name: "Phase 1: Contacts"}
	seen := make(map[string]bool, len(contacts))

	for _, c := range contacts {
		if c.ID == "" {
			p.errorf("contact with empty id (email %q)", c.Email)
		} else if seen[c.ID] {
			p.errorf("duplicate contact id %s", c.ID)
		}
		seen[c.ID] = true

		if _, err := domain.NewContact(domain.ContactInput{
			Name:     c.Name,
			Email:    c.Email,
			Message:  c.Message,
			Priority: c.Priority,
		}); err != nil {
			p.errorf("contact %s: %v", c.ID, err)
		}
		if _, err := domain.ParseContactStatus(string(c.Status)); err != nil {
			p.errorf("contact %s: %v", c.ID, err)
		}
		if c.Timestamp.IsZero() {
			p.errorf("contact %s: missing timestamp", c.ID)
		}
		if c.UpdatedAt != nil && c.UpdatedAt.Before(c.Timestamp) {
			p.errorf("contact %s: updatedAt %s before timestamp %s", c.ID, c.UpdatedAt, c.Timestamp)
		}
	}
	return p
}

// ── Phase 2: Feedback ──

func validateFeedback(feedback []domain.Feedback) *phase {
	p := &phase{name: "Phase 2: Feedback"}
	seen := make(map[string]bool, len(feedback))

	for _, f := range feedback {
		if f.ID == "" {
			p.errorf("feedback with empty id")
		} else if seen[f.ID] {
			p.errorf("duplicate feedback id %s", f.ID)
		}
		seen[f.ID] = true

		in := domain.FeedbackInput{
			Name:      f.Name,
			Rating:    f.Rating,
			Category:  f.Category,
			Feedback:  f.Feedback,
			Anonymous: f.Anonymous,
		}
		if f.Email != nil {
			in.Email = *f.Email
		}
		if _, err := domain.NewFeedback(in); err != nil {
			p.errorf("feedback %s: %v", f.ID, err)
		}
		if f.Anonymous && f.Email != nil {
			p.errorf("feedback %s: anonymous entry stores an email", f.ID)
		}
		if f.Timestamp.IsZero() {
			p.errorf("feedback %s: missing timestamp", f.ID)
		}
	}
	return p
}

// ── Phase 3: Heat Index Grid ──
// Recomputes each cell and checks that the tier never drops as temperature
// rises at fixed humidity.

type gridCell struct {
	Temperature float64          `json:"temperature"`
	Humidity    float64          `json:"humidity"`
	HeatIndex   float64          `json:"heatIndex"`
	RiskLevel   domain.RiskLevel `json:"riskLevel"`
}

func validateGrid(grid []gridCell) *phase {
	p := &phase{name: "Phase 3: Heat Index Grid"}
	lastPriority := map[float64]int{}
	lastTemp := map[float64]float64{}

	for _, c := range grid {
		r, err := domain.NewReading(c.Temperature, c.Humidity)
		if err != nil {
			p.errorf("cell %.1f°C/%.0f%%: %v", c.Temperature, c.Humidity, err)
			continue
		}
		want := domain.Classify(r)
		if math.Abs(domain.Round1(want.HeatIndex)-c.HeatIndex) > 0.05 {
			p.errorf("cell %.1f°C/%.0f%%: heat index %.1f, recomputed %.1f", c.Temperature, c.Humidity, c.HeatIndex, domain.Round1(want.HeatIndex))
		}
		if want.RiskLevel != c.RiskLevel {
			p.errorf("cell %.1f°C/%.0f%%: risk %s, recomputed %s", c.Temperature, c.Humidity, c.RiskLevel, want.RiskLevel)
		}

		prio := c.RiskLevel.Priority()
		if prev, ok := lastTemp[c.Humidity]; ok && c.Temperature > prev && prio < lastPriority[c.Humidity] {
			p.errorf("cell %.1f°C/%.0f%%: risk drops to %s as temperature rises", c.Temperature, c.Humidity, c.RiskLevel)
		}
		lastTemp[c.Humidity] = c.Temperature
		lastPriority[c.Humidity] = prio
	}
	return p
}
