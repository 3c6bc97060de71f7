// Package types defines the data structures shared by the CLI and the MCP server.
package types

type (
	// PickResult contains the outcome of a pick. Path and URI are empty when
	// no file matched.
	PickResult struct {
		Found      bool     `json:"found"`
		Path       string   `json:"path,omitempty"`
		URI        string   `json:"uri,omitempty"`
		Candidates int      `json:"candidates"`
		Extensions []string `json:"extensions,omitempty"`
	}
)
