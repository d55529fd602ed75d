// Package evals provides an evaluation framework for business ID validators.
// A suite is a JSON corpus of inputs with the expected verdict and reason
// kinds; evaluation reports accuracy per category and per reason kind.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
)

// DefaultSuiteFile is the corpus shipped with the repository.
const DefaultSuiteFile = "validation.json"

// ValidationTest represents a single evaluation case
type ValidationTest struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	Input           string   `json:"input"`
	ExpectedValid   bool     `json:"expected_valid"`
	ExpectedReasons []string `json:"expected_reasons"`
	NotReasons      []string `json:"not_reasons"`
	Notes           string   `json:"notes,omitempty"`
}

// ValidationSuite contains all validation tests
type ValidationSuite struct {
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Tests       []ValidationTest `json:"tests"`
}

// ValidationResult represents the result of a single evaluation
type ValidationResult struct {
	TestID          string
	Input           string
	ExpectedValid   bool
	ActualValid     bool
	ExpectedReasons []string
	ActualReasons   []string
	Passed          bool
	Errors          []string
}

// EvalMetrics contains aggregate metrics for an evaluation run
type EvalMetrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64 // PassedTests / TotalTests
	ByCategory    map[string]*CategoryMetrics
	ByReason      map[string]*ReasonMetrics
	FailedDetails []string
}

// CategoryMetrics contains metrics per category
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// ReasonMetrics contains metrics per reason kind
type ReasonMetrics struct {
	ExpectedCount  int // times the kind was expected
	ReportedCount  int // times the kind was reported
	CorrectCount   int // times it was expected and reported
	FalsePositives int // reported but not expected
	FalseNegatives int // expected but not reported
}

// LoadValidationSuite loads validation tests from a JSON file
func LoadValidationSuite(path string) (*ValidationSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite ValidationSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	if err := suite.check(); err != nil {
		return nil, err
	}
	return &suite, nil
}

// check rejects suites that reference unknown reason kinds
func (s *ValidationSuite) check() error {
	for _, test := range s.Tests {
		for _, name := range append(append([]string{}, test.ExpectedReasons...), test.NotReasons...) {
			var kind finland.ReasonKind
			if err := kind.UnmarshalText([]byte(name)); err != nil {
				return fmt.Errorf("test %s: %w", test.ID, err)
			}
		}
		if test.ExpectedValid && len(test.ExpectedReasons) > 0 {
			return fmt.Errorf("test %s: a valid case cannot expect reasons", test.ID)
		}
	}
	return nil
}

// EvaluateValidation runs every test in suite against spec
func EvaluateValidation(suite *ValidationSuite, spec finland.Specification) (*EvalMetrics, []ValidationResult) {
	metrics := &EvalMetrics{
		ByCategory: make(map[string]*CategoryMetrics),
		ByReason:   make(map[string]*ReasonMetrics),
	}
	var results []ValidationResult

	for _, test := range suite.Tests {
		metrics.TotalTests++

		// Initialize category metrics
		if metrics.ByCategory[test.Category] == nil {
			metrics.ByCategory[test.Category] = &CategoryMetrics{}
		}
		metrics.ByCategory[test.Category].Total++

		actual := spec.Validate(test.Input)
		actualKinds := distinctKinds(actual)

		result := ValidationResult{
			TestID:          test.ID,
			Input:           test.Input,
			ExpectedValid:   test.ExpectedValid,
			ActualValid:     actual.Valid,
			ExpectedReasons: test.ExpectedReasons,
			ActualReasons:   actualKinds,
			Passed:          true,
		}

		// Check verdict
		if actual.Valid != test.ExpectedValid {
			result.Passed = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("wrong verdict: expected valid=%t, got valid=%t", test.ExpectedValid, actual.Valid))
		}

		// Check expected reasons, tracking per-kind confusion
		reported := make(map[string]bool, len(actualKinds))
		for _, kind := range actualKinds {
			reported[kind] = true
			metrics.reason(kind).ReportedCount++
		}
		expected := make(map[string]bool, len(test.ExpectedReasons))
		for _, kind := range test.ExpectedReasons {
			expected[kind] = true
			metrics.reason(kind).ExpectedCount++
			if reported[kind] {
				metrics.reason(kind).CorrectCount++
			} else {
				metrics.reason(kind).FalseNegatives++
				result.Passed = false
				result.Errors = append(result.Errors, fmt.Sprintf("missing reason %s", kind))
			}
		}
		for _, kind := range actualKinds {
			if !expected[kind] {
				metrics.reason(kind).FalsePositives++
			}
		}

		// Check forbidden reasons
		for _, forbidden := range test.NotReasons {
			if reported[forbidden] {
				result.Passed = false
				result.Errors = append(result.Errors, fmt.Sprintf("reported forbidden reason %s", forbidden))
			}
		}

		// Update metrics
		if result.Passed {
			metrics.PassedTests++
			metrics.ByCategory[test.Category].Passed++
		} else {
			metrics.FailedTests++
			metrics.ByCategory[test.Category].Failed++
			metrics.FailedDetails = append(metrics.FailedDetails,
				fmt.Sprintf("[%s] %q: %s", test.ID, test.Input, strings.Join(result.Errors, "; ")))
		}

		results = append(results, result)
	}

	if metrics.TotalTests > 0 {
		metrics.Accuracy = float64(metrics.PassedTests) / float64(metrics.TotalTests)
	}

	return metrics, results
}

func (m *EvalMetrics) reason(kind string) *ReasonMetrics {
	if m.ByReason[kind] == nil {
		m.ByReason[kind] = &ReasonMetrics{}
	}
	return m.ByReason[kind]
}

// distinctKinds returns the reason kinds of r in first-seen order
func distinctKinds(r finland.Result) []string {
	var kinds []string
	seen := make(map[finland.ReasonKind]bool)
	for _, reason := range r.Reasons {
		if !seen[reason.Kind] {
			seen[reason.Kind] = true
			kinds = append(kinds, reason.Kind.String())
		}
	}
	return kinds
}

// FormatMetrics returns a human-readable summary of evaluation metrics
func FormatMetrics(metrics *EvalMetrics, suiteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", suiteName)
	fmt.Fprintf(&b, "Total: %d tests\n", metrics.TotalTests)
	fmt.Fprintf(&b, "Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100)
	fmt.Fprintf(&b, "Failed: %d\n", metrics.FailedTests)

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for _, cat := range sortedKeys(metrics.ByCategory) {
			m := metrics.ByCategory[cat]
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				fmt.Fprintf(&b, "  %-25s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc)
			}
		}
	}

	if len(metrics.ByReason) > 0 {
		b.WriteString("\nBy Reason:\n")
		for _, kind := range sortedKeys(metrics.ByReason) {
			m := metrics.ByReason[kind]
			fmt.Fprintf(&b, "  %-25s: expected %d, reported %d, fp %d, fn %d\n",
				kind, m.ExpectedCount, m.ReportedCount, m.FalsePositives, m.FalseNegatives)
		}
	}

	if len(metrics.FailedDetails) > 0 && len(metrics.FailedDetails) <= 10 {
		b.WriteString("\nFailed Tests:\n")
		for _, detail := range metrics.FailedDetails {
			fmt.Fprintf(&b, "  - %s\n", detail)
		}
	} else if len(metrics.FailedDetails) > 10 {
		fmt.Fprintf(&b, "\nFailed Tests (showing first 10 of %d):\n", len(metrics.FailedDetails))
		for _, detail := range metrics.FailedDetails[:10] {
			fmt.Fprintf(&b, "  - %s\n", detail)
		}
	}

	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
