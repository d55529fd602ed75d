package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	apperrors "github.com/olgasafonova/ytunnus-mcp-server/internal/errors"
	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// invertedSpec flips every verdict so that all self-test cases fail.
type invertedSpec struct{}

func (invertedSpec) Validate(input string) finland.Result {
	r := finland.Validate(input)
	r.Valid = !r.Valid
	return r
}

func TestConsole_CheckValid(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(finland.New(), &out)

	if !c.Check("2471384-9") {
		t.Error("Check(2471384-9) should be valid")
	}
	if got, want := out.String(), "The Business ID is valid.\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConsole_CheckInvalid(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(finland.New(), &out)

	if c.Check("2471A84-9") {
		t.Error("Check(2471A84-9) should be invalid")
	}

	got := out.String()
	for _, want := range []string{
		"The Business ID is invalid!",
		"The reasons for invalidity: ",
		"Invalid character: A",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConsole_PrintsEveryReason(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(finland.New(), &out)
	c.Check("12")

	got := out.String()
	for _, want := range []string{
		"Given string is too short.",
		"Invalid separator character (-).",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConsole_RunSelfTest(t *testing.T) {
	var out bytes.Buffer
	report := NewConsole(finland.New(), &out).RunSelfTest()

	if !report.OK() {
		t.Fatalf("self-test failed: %d of %d", report.Failed, report.Total())
	}

	got := out.String()
	if n := strings.Count(got, "Test passed."); n != report.Total() {
		t.Errorf("printed %d passes, want %d", n, report.Total())
	}
	if strings.Contains(got, "Test failed.") {
		t.Error("no case should print a failure")
	}
	if !strings.Contains(got, "\n2471384-9: ") {
		t.Error("each case should be prefixed by its input")
	}
}

func TestConsole_RunSelfTestFailures(t *testing.T) {
	var out bytes.Buffer
	report := NewConsole(invertedSpec{}, &out).RunSelfTest()

	if report.OK() {
		t.Fatal("inverted validator should fail the self-test")
	}
	if n := strings.Count(out.String(), "Test failed."); n != report.Total() {
		t.Errorf("printed %d failures, want %d", n, report.Total())
	}
}

func TestConsole_Interactive(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
		prompts     int
	}{
		{
			name:        "exit stops the loop",
			input:       "exit\n2471384-9\n",
			prompts:     1,
			notContains: []string{"The Business ID is valid."},
		},
		{
			name:    "exit is case-insensitive",
			input:   "EXIT\n",
			prompts: 1,
		},
		{
			name:     "end of input stops the loop",
			input:    "2471384-9\n",
			contains: []string{"The Business ID is valid."},
			prompts:  2,
		},
		{
			name:        "blank lines are ignored",
			input:       "\n\nexit\n",
			prompts:     3,
			notContains: []string{"invalid"},
		},
		{
			name:     "test runs the test set",
			input:    "Test\nexit\n",
			contains: []string{"Test passed.", "11 of 11 tests passed."},
			prompts:  2,
		},
		{
			name:     "windows line endings",
			input:    "2471384-9\r\nexit\r\n",
			contains: []string{"The Business ID is valid."},
			prompts:  2,
		},
		{
			name:     "line longer than the default scanner buffer",
			input:    strings.Repeat("1", 100_000) + "\nexit\n",
			contains: []string{"Given string is too long."},
			prompts:  2,
		},
		{
			name:     "invalid id",
			input:    "2471384-1\nexit\n",
			contains: []string{"Check number does not match with control mark (mismatch)."},
			prompts:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConsole(finland.New(), &out)

			if err := c.Interactive(context.Background(), strings.NewReader(tt.input)); err != nil {
				t.Fatalf("Interactive() error = %v", err)
			}

			got := out.String()
			if n := strings.Count(got, "Enter Business ID:"); n != tt.prompts {
				t.Errorf("prompted %d times, want %d", n, tt.prompts)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestConsole_InteractiveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewConsole(finland.New(), &out).Interactive(ctx, strings.NewReader("2471384-9\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Interactive() error = %v, want context.Canceled", err)
	}
}

func executeCmd(t *testing.T, spec finland.Specification, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(spec)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	out, err := executeCmd(t, finland.New(), "", "check", "2471384-9", "1572860-0")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if n := strings.Count(out, "The Business ID is valid."); n != 2 {
		t.Errorf("got %d valid lines, want 2:\n%s", n, out)
	}
}

func TestCheckCmd_AnyInvalidFails(t *testing.T) {
	out, err := executeCmd(t, finland.New(), "", "check", "2471384-9", "2471384-8")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("check error = %v, want ErrInvalid", err)
	}
	if !strings.Contains(out, "2471384-8: ") {
		t.Errorf("output should name the invalid id:\n%s", out)
	}
}

func TestCheckCmd_RequiresArgs(t *testing.T) {
	if _, err := executeCmd(t, finland.New(), "", "check"); err == nil {
		t.Error("check without arguments should fail")
	}
}

func TestTestCmd(t *testing.T) {
	out, err := executeCmd(t, finland.New(), "", "test")
	if err != nil {
		t.Fatalf("test error = %v", err)
	}
	if !strings.Contains(out, "11 of 11 tests passed.") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestTestCmd_Failure(t *testing.T) {
	_, err := executeCmd(t, invertedSpec{}, "", "test")
	if !apperrors.IsSelfTest(err) {
		t.Errorf("test error = %v, want SelfTestError", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCmd(t, finland.New(), "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if want := "ytunnus " + Version + "\n"; out != want {
		t.Errorf("version output = %q, want %q", out, want)
	}
}

func TestRootCmd_Interactive(t *testing.T) {
	out, err := executeCmd(t, finland.New(), "2471384-9\nexit\n", "--no-color")
	if err != nil {
		t.Fatalf("root error = %v", err)
	}
	if !strings.Contains(out, "The Business ID is valid.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
