package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// PickInput contains parameters for picking a random file.
	PickInput struct {
		Root       string   `json:"root,omitempty" jsonschema:"Directory to pick from, relative to the served root (default: served root)"`
		Extensions []string `json:"extensions,omitempty" jsonschema:"Only pick files with these extensions, without the leading dot (case-sensitive)"`
		Args       []string `json:"args,omitempty" jsonschema:"Argument list of -e <extension> pairs, merged with extensions"`
		Exclude    []string `json:"exclude,omitempty" jsonschema:"Glob patterns, relative to root, for paths to skip"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "pick",
		Description: "Pick one file uniformly at random from a directory tree. Symlinks are skipped. Returns found=false when no file matches.",
	}, handlePick)
}
