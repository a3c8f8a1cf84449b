// Command generate-reference produces a testdata fixture of π reference
// digit strings, computed via the independent Gauss-Legendre path rather
// than the Chudnovsky engine under test. No test in this repository reads
// the fixture; the self-test suite computes its reference in process.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/piracer/internal/pi"
)

// referenceEntry is a single test case in the fixture: N fractional digits
// at a given base, and the reference-computed digit string.
type referenceEntry struct {
	N      uint64 `json:"n"`
	Base   uint   `json:"base"`
	Digits string `json:"digits"`
}

func main() {
	outputDir := flag.String("out", "internal/pi/testdata", "Output directory for the reference fixture")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "pi_reference.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	targets := []struct {
		n    uint64
		base uint
	}{
		{1, 10}, {5, 10}, {10, 10}, {50, 10}, {100, 10}, {1000, 10},
		{10, 16}, {50, 16}, {100, 16}, {1000, 16},
	}

	var data []referenceEntry

	fmt.Println("Generating reference data...")

	for _, target := range targets {
		digits, err := referenceDigits(target.n, target.base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing reference for N=%d base=%d: %v\n", target.n, target.base, err)
			os.Exit(1)
		}
		data = append(data, referenceEntry{N: target.n, Base: target.base, Digits: digits})
		fmt.Printf("Generated N=%d base=%d\n", target.n, target.base)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated reference file at %s\n", filename)
}

// referenceDigits computes π's reference digit string at N fractional
// digits in base via the Gauss-Legendre iteration, independent of the
// Chudnovsky engine the fixture exists to check.
func referenceDigits(n uint64, base uint) (string, error) {
	plan, err := pi.NewPlan(n, base)
	if err != nil {
		return "", err
	}
	refFloat := pi.ReferencePi(plan.Prec)
	return pi.FormatFixed(refFloat, int(n), base)
}
