// Package selftest holds the built-in set of business IDs with known outcomes
// and runs them against a validator.
package selftest

import (
	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
)

// Case is a single input with its expected validity.
type Case struct {
	Input       string `json:"input"`
	Expected    bool   `json:"expected"`
	Description string `json:"description"`
}

// DefaultCases is the built-in test set, in the order it is run.
var DefaultCases = []Case{
	{Input: "12", Expected: false, Description: "too short"},
	{Input: "3232324713849XX", Expected: false, Description: "too long"},
	{Input: "24713849", Expected: false, Description: "too short and missing separator"},
	{Input: "2471385-9", Expected: false, Description: "check digit does not match"},
	{Input: "2471384-8", Expected: false, Description: "check digit does not match"},
	{Input: "2471A84-9", Expected: false, Description: "contains a letter"},
	{Input: "a4b1C8D-E", Expected: false, Description: "contains letters"},
	{Input: "2471384-1", Expected: false, Description: "check digit one"},
	{Input: "1001000-9", Expected: false, Description: "control mark remainder one"},
	{Input: "2471384-9", Expected: true, Description: "proper business ID"},
	{Input: "1572860-0", Expected: true, Description: "proper business ID with check digit zero"},
}

// Outcome is the result of running one case.
type Outcome struct {
	Case   Case           `json:"case"`
	Result finland.Result `json:"result"`
	Passed bool           `json:"passed"`
}

// Report summarizes a self-test run.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
}

// OK reports whether every case matched its expected outcome.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Total returns the number of cases run.
func (r Report) Total() int {
	return len(r.Outcomes)
}

// Run validates each case with spec. A nil cases slice runs DefaultCases.
func Run(spec finland.Specification, cases []Case) Report {
	if cases == nil {
		cases = DefaultCases
	}

	report := Report{Outcomes: make([]Outcome, 0, len(cases))}
	for _, c := range cases {
		result := spec.Validate(c.Input)
		passed := result.Valid == c.Expected
		if passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Outcomes = append(report.Outcomes, Outcome{
			Case:   c,
			Result: result,
			Passed: passed,
		})
	}
	return report
}
