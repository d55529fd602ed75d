package selftest

import (
	"testing"

	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
)

// acceptAll is a Specification that approves every input.
type acceptAll struct{}

func (acceptAll) Validate(input string) finland.Result {
	return finland.Result{Input: input, Valid: true}
}

func TestRun_DefaultCases(t *testing.T) {
	report := Run(finland.New(), nil)

	if report.Total() != len(DefaultCases) {
		t.Fatalf("Total() = %d, want %d", report.Total(), len(DefaultCases))
	}
	if !report.OK() {
		for _, o := range report.Outcomes {
			if !o.Passed {
				t.Errorf("case %q (%s) failed: got valid=%v, reasons %v",
					o.Case.Input, o.Case.Description, o.Result.Valid, o.Result.Messages())
			}
		}
	}
	if report.Passed != len(DefaultCases) {
		t.Errorf("Passed = %d, want %d", report.Passed, len(DefaultCases))
	}
}

func TestRun_PreservesOrder(t *testing.T) {
	report := Run(finland.New(), nil)

	for i, o := range report.Outcomes {
		if o.Case.Input != DefaultCases[i].Input {
			t.Errorf("Outcomes[%d].Case.Input = %q, want %q", i, o.Case.Input, DefaultCases[i].Input)
		}
		if o.Result.Input != o.Case.Input {
			t.Errorf("Outcomes[%d].Result.Input = %q, want %q", i, o.Result.Input, o.Case.Input)
		}
	}
}

func TestRun_DetectsFailures(t *testing.T) {
	report := Run(acceptAll{}, nil)

	wantPassed := 0
	for _, c := range DefaultCases {
		if c.Expected {
			wantPassed++
		}
	}

	if report.OK() {
		t.Error("OK() should be false when the validator accepts everything")
	}
	if report.Passed != wantPassed {
		t.Errorf("Passed = %d, want %d", report.Passed, wantPassed)
	}
	if report.Failed != len(DefaultCases)-wantPassed {
		t.Errorf("Failed = %d, want %d", report.Failed, len(DefaultCases)-wantPassed)
	}
}

func TestRun_CustomCases(t *testing.T) {
	cases := []Case{
		{Input: "0112038-9", Expected: true},
		{Input: "0112038-1", Expected: false},
	}

	report := Run(finland.New(), cases)

	if report.Total() != 2 || !report.OK() {
		t.Errorf("Run() = %+v, want 2 passing cases", report)
	}
}

func TestRun_EmptyCases(t *testing.T) {
	report := Run(finland.New(), []Case{})

	if report.Total() != 0 {
		t.Errorf("Total() = %d, want 0", report.Total())
	}
	if !report.OK() {
		t.Error("an empty run should be OK")
	}
}
