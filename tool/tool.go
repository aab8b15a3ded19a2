// Package tool defines the callable-tool contract and the JSON schema types
// tools use to describe their inputs.
package tool

import "context"

type Type string

const (
	TypeJson    Type = "object"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
)

// PropertySchema describes one input field.
type PropertySchema struct {
	Type        Type   `json:"type"`
	Description string `json:"description,omitempty"`
}

// PropertiesSchema is the JSON schema for a tool's input object.
type PropertiesSchema struct {
	Type       Type                      `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// Tool is a named capability that takes a JSON string and returns text.
// Input validation problems are reported in the returned string rather than
// as errors, so a caller can feed them back verbatim.
type Tool interface {
	Name() string
	Description() string
	Schema() *PropertiesSchema
	Strict() bool
	Call(ctx context.Context, input string) (string, error)
}
