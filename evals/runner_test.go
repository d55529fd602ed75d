package evals

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
)

// MockValidator returns canned results for known inputs
type MockValidator struct {
	Responses map[string]finland.Result
}

func (m *MockValidator) Validate(input string) finland.Result {
	if r, ok := m.Responses[input]; ok {
		return r
	}
	return finland.Result{Input: input, Valid: true}
}

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing suite: %v", err)
	}
	return path
}

func TestLoadValidationSuite(t *testing.T) {
	suite, err := LoadValidationSuite(filepath.Join(".", DefaultSuiteFile))
	if err != nil {
		t.Fatalf("Failed to load validation suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}

	if len(suite.Tests) == 0 {
		t.Error("Suite should have tests")
	}

	ids := make(map[string]bool)
	for _, test := range suite.Tests {
		if test.ID == "" {
			t.Error("Test ID should not be empty")
		}
		if ids[test.ID] {
			t.Errorf("Duplicate test ID %s", test.ID)
		}
		ids[test.ID] = true
		if test.Category == "" {
			t.Errorf("Test %s has no category", test.ID)
		}
		if !test.ExpectedValid && len(test.ExpectedReasons) == 0 {
			t.Errorf("Invalid case %s should name its reasons", test.ID)
		}
	}
}

func TestLoadValidationSuite_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed JSON",
			content: `{"name": `,
			wantErr: "parsing JSON",
		},
		{
			name:    "unknown reason kind",
			content: `{"tests": [{"id": "x", "input": "1", "expected_reasons": ["too_wide"]}]}`,
			wantErr: "test x",
		},
		{
			name:    "valid case with reasons",
			content: `{"tests": [{"id": "y", "input": "2471384-9", "expected_valid": true, "expected_reasons": ["too_short"]}]}`,
			wantErr: "cannot expect reasons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadValidationSuite(writeSuite(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadValidationSuite(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestEvaluateValidation_ShippedCorpus(t *testing.T) {
	suite, err := LoadValidationSuite(filepath.Join(".", DefaultSuiteFile))
	if err != nil {
		t.Fatalf("Failed to load validation suite: %v", err)
	}

	metrics, results := EvaluateValidation(suite, finland.New())

	if metrics.Accuracy != 1.0 {
		t.Errorf("Accuracy = %.2f, want 1.0\n%s", metrics.Accuracy, FormatMetrics(metrics, suite.Name))
	}
	if len(results) != len(suite.Tests) {
		t.Errorf("got %d results, want %d", len(results), len(suite.Tests))
	}
	for kind, m := range metrics.ByReason {
		if m.FalseNegatives != 0 {
			t.Errorf("reason %s: %d false negatives", kind, m.FalseNegatives)
		}
	}
}

func TestEvaluateValidation_Metrics(t *testing.T) {
	suite := &ValidationSuite{
		Name: "mock",
		Tests: []ValidationTest{
			{ID: "1", Category: "valid", Input: "ok", ExpectedValid: true},
			{ID: "2", Category: "length", Input: "short", ExpectedReasons: []string{"too_short"}},
			{ID: "3", Category: "length", Input: "wrong", ExpectedReasons: []string{"too_long"}, NotReasons: []string{"invalid_separator"}},
		},
	}
	mock := &MockValidator{Responses: map[string]finland.Result{
		"short": {Valid: false, Reasons: []finland.Reason{{Kind: finland.TooShort}}},
		"wrong": {Valid: false, Reasons: []finland.Reason{{Kind: finland.TooShort}, {Kind: finland.InvalidSeparator}}},
	}}

	metrics, results := EvaluateValidation(suite, mock)

	if metrics.TotalTests != 3 || metrics.PassedTests != 2 || metrics.FailedTests != 1 {
		t.Errorf("totals = %d/%d/%d, want 3/2/1", metrics.TotalTests, metrics.PassedTests, metrics.FailedTests)
	}
	if got := metrics.ByCategory["length"]; got.Total != 2 || got.Failed != 1 {
		t.Errorf("length category = %+v", got)
	}

	short := metrics.ByReason["too_short"]
	if short.ExpectedCount != 1 || short.ReportedCount != 2 || short.CorrectCount != 1 || short.FalsePositives != 1 {
		t.Errorf("too_short metrics = %+v", short)
	}
	if long := metrics.ByReason["too_long"]; long.FalseNegatives != 1 {
		t.Errorf("too_long metrics = %+v", long)
	}

	failed := results[2]
	if failed.Passed {
		t.Fatal("test 3 should fail")
	}
	joined := strings.Join(failed.Errors, "; ")
	for _, want := range []string{"missing reason too_long", "forbidden reason invalid_separator"} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors %q should contain %q", joined, want)
		}
	}
}

func TestEvaluateValidation_WrongVerdict(t *testing.T) {
	suite := &ValidationSuite{Tests: []ValidationTest{
		{ID: "v", Category: "valid", Input: "2471384-9", ExpectedValid: false, ExpectedReasons: []string{"checksum_mismatch"}},
	}}

	metrics, results := EvaluateValidation(suite, finland.New())

	if metrics.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0", metrics.Accuracy)
	}
	if !strings.Contains(results[0].Errors[0], "wrong verdict") {
		t.Errorf("first error = %q", results[0].Errors[0])
	}
}

func TestDistinctKinds(t *testing.T) {
	got := distinctKinds(finland.Validate("a4b1C8D-E"))
	if len(got) != 1 || got[0] != "invalid_character" {
		t.Errorf("distinctKinds = %v, want [invalid_character]", got)
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &EvalMetrics{
		TotalTests:  2,
		PassedTests: 1,
		FailedTests: 1,
		Accuracy:    0.5,
		ByCategory: map[string]*CategoryMetrics{
			"checksum": {Total: 2, Passed: 1, Failed: 1},
		},
		ByReason: map[string]*ReasonMetrics{
			"checksum_mismatch": {ExpectedCount: 1, ReportedCount: 0, FalseNegatives: 1},
		},
		FailedDetails: []string{"[x] \"2471385-9\": missing reason checksum_mismatch"},
	}

	out := FormatMetrics(metrics, "Test Suite")

	for _, want := range []string{
		"=== Test Suite ===",
		"Total: 2 tests",
		"Passed: 1 (50.0%)",
		"By Category:",
		"By Reason:",
		"fn 1",
		"Failed Tests:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatMetrics output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatMetrics_TruncatesFailures(t *testing.T) {
	metrics := &EvalMetrics{ByCategory: map[string]*CategoryMetrics{}, ByReason: map[string]*ReasonMetrics{}}
	for i := 0; i < 12; i++ {
		metrics.FailedDetails = append(metrics.FailedDetails, "failure")
	}

	out := FormatMetrics(metrics, "Many")
	if !strings.Contains(out, "showing first 10 of 12") {
		t.Errorf("expected truncation notice:\n%s", out)
	}
}
