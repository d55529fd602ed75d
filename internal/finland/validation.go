package finland

import "strings"

// Business ID (Y-tunnus) layout: 7 digits, a hyphen and a check digit (e.g., 2471384-9).
const (
	BusinessIDLength = 9
	separatorIndex   = 7
	checkDigitIndex  = 8
	separator        = '-'
)

// Weights are applied left to right to the seven digits before the separator.
var Weights = [7]int{7, 9, 10, 5, 8, 4, 2}

// Specification is implemented by anything that can judge a business ID.
type Specification interface {
	Validate(input string) Result
}

// Result is the outcome of validating one candidate string.
// Valid is true if and only if Reasons is empty.
type Result struct {
	Input   string   `json:"input"`
	Valid   bool     `json:"valid"`
	Reasons []Reason `json:"reasons,omitempty"`
}

// Messages returns the human-readable reasons in detection order.
func (r Result) Messages() []string {
	msgs := make([]string, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		msgs = append(msgs, reason.Message())
	}
	return msgs
}

// Kinds returns the reason kinds in detection order.
func (r Result) Kinds() []ReasonKind {
	kinds := make([]ReasonKind, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		kinds = append(kinds, reason.Kind)
	}
	return kinds
}

// Has reports whether the result contains at least one reason of the given kind.
func (r Result) Has(kind ReasonKind) bool {
	return r.Count(kind) > 0
}

// Count returns how many reasons of the given kind were collected.
func (r Result) Count(kind ReasonKind) int {
	n := 0
	for _, reason := range r.Reasons {
		if reason.Kind == kind {
			n++
		}
	}
	return n
}

// String joins the reason messages with newlines, or reports validity.
func (r Result) String() string {
	if r.Valid {
		return "valid"
	}
	return strings.Join(r.Messages(), "\n")
}

// Validator checks Finnish business IDs. It holds no state, so a single
// instance may be shared between goroutines.
type Validator struct{}

// New returns a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate implements Specification.
func (v *Validator) Validate(input string) Result {
	return Validate(input)
}

// Validate runs every structural check on input and, when those all pass,
// the control mark check. It never fails; defects are returned as reasons.
// Lengths and positions count characters, not bytes.
func Validate(input string) Result {
	chars := []rune(input)
	var reasons []Reason

	if len(chars) < BusinessIDLength {
		reasons = append(reasons, Reason{Kind: TooShort})
	}
	if len(chars) > BusinessIDLength {
		reasons = append(reasons, Reason{Kind: TooLong})
	}
	if len(chars) <= separatorIndex || chars[separatorIndex] != separator {
		reasons = append(reasons, Reason{Kind: InvalidSeparator})
	}
	reasons = appendInvalidCharacters(reasons, chars)

	// The control mark is meaningless unless the layout is right.
	if len(reasons) == 0 {
		reasons = appendControlMark(reasons, input)
	}

	return Result{
		Input:   input,
		Valid:   len(reasons) == 0,
		Reasons: reasons,
	}
}

// appendInvalidCharacters adds one reason per non-digit outside the separator position.
func appendInvalidCharacters(reasons []Reason, chars []rune) []Reason {
	for i, c := range chars {
		if i == separatorIndex || isDigit(c) {
			continue
		}
		reasons = append(reasons, Reason{Kind: InvalidCharacter, Char: string(c)})
	}
	return reasons
}

// appendControlMark verifies the check digit. input must already be
// seven ASCII digits, a hyphen and an ASCII digit.
func appendControlMark(reasons []Reason, input string) []Reason {
	remainder := weightedRemainder(input[:separatorIndex])
	expected := checkDigitFor(remainder)
	if remainder == 1 {
		// No business IDs are issued for this prefix. The mark is still
		// compared against the remainder itself.
		reasons = append(reasons, Reason{Kind: ChecksumRemainderOne})
		expected = 1
	}

	if int(input[checkDigitIndex]-'0') != expected {
		reasons = append(reasons, Reason{Kind: ChecksumMismatch})
	}
	return reasons
}

// CheckDigit returns the control mark for a seven-digit prefix.
// ok is false when the prefix is malformed or yields remainder one.
func CheckDigit(prefix string) (digit int, ok bool) {
	if len(prefix) != len(Weights) {
		return 0, false
	}
	for _, c := range prefix {
		if !isDigit(c) {
			return 0, false
		}
	}

	remainder := weightedRemainder(prefix)
	if remainder == 1 {
		return 0, false
	}
	return checkDigitFor(remainder), true
}

func weightedRemainder(digits string) int {
	sum := 0
	for i, w := range Weights {
		sum += int(digits[i]-'0') * w
	}
	return sum % 11
}

func checkDigitFor(remainder int) int {
	if remainder == 0 {
		return 0
	}
	return 11 - remainder
}

// isDigit accepts ASCII decimal digits only.
func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
