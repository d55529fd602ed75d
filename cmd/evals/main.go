// Command evals runs business ID validation evaluations.
//
// Usage:
//
//	go run ./cmd/evals -suite ./evals/validation.json
//
// The suite is a JSON corpus of inputs with the expected verdict and reason
// kinds. The command exits non-zero when accuracy falls below -min-accuracy.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olgasafonova/ytunnus-mcp-server/evals"
	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
)

func main() {
	suitePath := flag.String("suite", filepath.Join("evals", evals.DefaultSuiteFile), "Path to the validation suite JSON file")
	minAccuracy := flag.Float64("min-accuracy", 1.0, "Fail when accuracy is below this fraction")
	verbose := flag.Bool("verbose", false, "Show every test case")
	flag.Parse()

	fmt.Println("Finnish Business ID Validator - Evaluation Framework")
	fmt.Println("====================================================")
	fmt.Println()

	suite, err := evals.LoadValidationSuite(*suitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading validation suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Validation Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))

	metrics, results := evals.EvaluateValidation(suite, finland.New())
	fmt.Print(evals.FormatMetrics(metrics, suite.Name))

	if *verbose {
		fmt.Println("\nTest Cases:")
		for _, r := range results {
			mark := "✓"
			if !r.Passed {
				mark = "✗"
			}
			fmt.Printf("  %s [%s] %q\n", mark, r.TestID, r.Input)
			fmt.Printf("    expected valid=%t %v\n", r.ExpectedValid, r.ExpectedReasons)
			fmt.Printf("    actual   valid=%t %v\n", r.ActualValid, r.ActualReasons)
		}
	}

	if metrics.Accuracy < *minAccuracy {
		fmt.Fprintf(os.Stderr, "\nAccuracy %.1f%% is below the required %.1f%%\n", metrics.Accuracy*100, *minAccuracy*100)
		os.Exit(1)
	}
}
