package finland

import (
	"fmt"
)

// ReasonKind identifies one category of business ID defect.
type ReasonKind int

const (
	TooShort ReasonKind = iota + 1
	TooLong
	InvalidSeparator
	InvalidCharacter
	ChecksumRemainderOne
	ChecksumMismatch

	// NotText is reported by boundary adapters that receive something other
	// than a string. Validate never produces it.
	NotText
)

var reasonKindNames = map[ReasonKind]string{
	TooShort:             "too_short",
	TooLong:              "too_long",
	InvalidSeparator:     "invalid_separator",
	InvalidCharacter:     "invalid_character",
	ChecksumRemainderOne: "checksum_remainder_one",
	ChecksumMismatch:     "checksum_mismatch",
	NotText:              "not_text",
}

// String returns the snake_case name used in JSON output and metric labels.
func (k ReasonKind) String() string {
	if name, ok := reasonKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("reason_kind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k ReasonKind) MarshalText() ([]byte, error) {
	if _, ok := reasonKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown reason kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *ReasonKind) UnmarshalText(text []byte) error {
	for kind, name := range reasonKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown reason kind %q", string(text))
}

// Reason is a single defect found in a candidate business ID.
type Reason struct {
	Kind ReasonKind `json:"kind"`
	// Char is the offending character, set only for InvalidCharacter.
	Char string `json:"char,omitempty"`
}

// Message returns the user-facing description of the defect.
func (r Reason) Message() string {
	switch r.Kind {
	case TooShort:
		return "Given string is too short."
	case TooLong:
		return "Given string is too long."
	case InvalidSeparator:
		return "Invalid separator character (-)."
	case InvalidCharacter:
		return "Invalid character: " + r.Char
	case ChecksumRemainderOne:
		return "Error in control mark - check number result is one."
	case ChecksumMismatch:
		return "Check number does not match with control mark (mismatch)."
	case NotText:
		return "Invalid format - input isn't a string."
	default:
		return "Unknown defect."
	}
}

func (r Reason) String() string {
	return r.Message()
}

// NotTextResult is what boundary adapters return for non-string input.
func NotTextResult() Result {
	return Result{
		Valid:   false,
		Reasons: []Reason{{Kind: NotText}},
	}
}
