package tools

// ValidateBusinessIDArgs contains parameters for business ID validation.
// BusinessID is untyped so that non-string input reaches the handler and is
// reported as a defect instead of failing argument decoding.
type ValidateBusinessIDArgs struct {
	BusinessID any `json:"business_id,omitempty" jsonschema:"Finnish business ID (Y-tunnus) to check, e.g. 2471384-9"`
}

// ReasonInfo describes one defect of a business ID
type ReasonInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Char    string `json:"char,omitempty"`
}

// ValidateBusinessIDResult is the result of validating a business ID
type ValidateBusinessIDResult struct {
	BusinessID string       `json:"business_id"`
	Valid      bool         `json:"valid"`
	Reasons    []ReasonInfo `json:"reasons,omitempty"`
}

// RunSelfTestArgs takes no parameters
type RunSelfTestArgs struct{}

// SelfTestCaseResult is the outcome of one built-in case
type SelfTestCaseResult struct {
	Input       string   `json:"input"`
	Description string   `json:"description"`
	Expected    bool     `json:"expected"`
	Valid       bool     `json:"valid"`
	Passed      bool     `json:"passed"`
	Reasons     []string `json:"reasons,omitempty"`
}

// RunSelfTestResult is the result of a self-test run
type RunSelfTestResult struct {
	Cases  []SelfTestCaseResult `json:"cases"`
	Total  int                  `json:"total"`
	Passed int                  `json:"passed"`
	Failed int                  `json:"failed"`
}
