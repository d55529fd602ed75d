package tools

// AllTools contains all tool specifications for the business ID MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	{
		Name:     "finland_validate_business_id",
		Method:   "ValidateBusinessID",
		Title:    "Validate Finnish Business ID",
		Category: "validation",
		Country:  "finland",
		Description: `Check whether a Finnish Business ID (Y-tunnus) is valid and list every reason it is not.

USE WHEN: User asks "is 2471384-9 a valid Y-tunnus", "check this business ID", "why is this business ID rejected".

NOT FOR: Looking up the company behind an ID. Not for IDs from other countries.

PARAMETERS:
- business_id: The candidate string, e.g. "2471384-9" (required)

RETURNS: valid flag and, for invalid input, all defects found: length, separator, invalid characters, or control mark (check digit) errors.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "finland_run_self_test",
		Method:   "RunSelfTest",
		Title:    "Run Business ID Self-Test",
		Category: "diagnostics",
		Country:  "finland",
		Description: `Run the built-in set of business IDs with known outcomes through the validator.

USE WHEN: User asks "does the validator work", "run the test set", "show sample valid and invalid business IDs".

NOT FOR: Validating a user-supplied ID (use finland_validate_business_id).

PARAMETERS: none

RETURNS: Each case with its expected and actual validity, the reasons found, and pass/fail totals.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}
