// Package cli is the console front end of the validator: an interactive
// prompt loop plus one-shot cobra commands. It holds no validation logic.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
	"github.com/olgasafonova/ytunnus-mcp-server/internal/selftest"
)

const (
	promptText = "\nWrite 'test' to run the test set. Write 'exit' to exit.\nEnter Business ID:"

	commandTest = "test"
	commandExit = "exit"

	// maxLineBytes caps a single input line. Longer lines end the loop with
	// bufio.ErrTooLong.
	maxLineBytes = 16 << 20
)

var (
	validColor   = color.New(color.FgGreen)
	invalidColor = color.New(color.FgRed)
	passColor    = color.New(color.FgHiGreen)
	failColor    = color.New(color.FgHiRed)
)

// Console prints validation results for one output stream.
type Console struct {
	spec finland.Specification
	out  io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(spec finland.Specification, out io.Writer) *Console {
	return &Console{spec: spec, out: out}
}

// Check validates input, prints the outcome and returns whether it was valid.
func (c *Console) Check(input string) bool {
	result := c.spec.Validate(input)
	c.PrintResult(result)
	return result.Valid
}

// PrintResult prints a valid message or every reason for invalidity.
func (c *Console) PrintResult(result finland.Result) {
	if result.Valid {
		validColor.Fprintln(c.out, "The Business ID is valid.")
		return
	}

	invalidColor.Fprintln(c.out, "The Business ID is invalid!\nThe reasons for invalidity: ")
	for _, msg := range result.Messages() {
		fmt.Fprintln(c.out, msg)
	}
}

// RunSelfTest runs the built-in cases, printing each one, and returns the report.
func (c *Console) RunSelfTest() selftest.Report {
	report := selftest.Run(c.spec, nil)

	for _, o := range report.Outcomes {
		fmt.Fprintf(c.out, "\n%s: ", o.Case.Input)
		c.PrintResult(o.Result)
		if o.Passed {
			passColor.Fprintln(c.out, "Test passed.")
		} else {
			failColor.Fprintln(c.out, "Test failed.")
		}
	}

	fmt.Fprintf(c.out, "\n%d of %d tests passed.\n", report.Passed, report.Total())
	return report
}

// Interactive reads business IDs line by line until "exit", end of input or
// context cancellation. "test" runs the self-test; blank lines are ignored.
func (c *Console) Interactive(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out, promptText)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		switch strings.ToLower(line) {
		case commandTest:
			c.RunSelfTest()
		case commandExit:
			return nil
		case "":
			// Nothing entered.
		default:
			c.Check(line)
		}
	}
}
