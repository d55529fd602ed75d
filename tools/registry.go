// Package tools exposes business ID validation as MCP tools. Tools are
// defined declaratively and registered through type-safe handlers, which
// also act as the boundary that rejects non-text input.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a HandlerRegistry method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "finland_validate_business_id")
	Name string

	// Method is the handler method name (e.g., "ValidateBusinessID")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (validation, diagnostics)
	Category string

	// Country indicates which country's identifier format the tool handles
	Country string

	// ReadOnly indicates the tool doesn't modify any state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
