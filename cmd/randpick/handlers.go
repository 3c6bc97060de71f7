package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/randpick/internal/config"
	"github.com/taigrr/randpick/internal/pathfilter"
	"github.com/taigrr/randpick/internal/picker"
	"github.com/taigrr/randpick/internal/types"
)

func handlePick(ctx context.Context, req *mcp.CallToolRequest, input PickInput) (*mcp.CallToolResult, types.PickResult, error) {
	root, err := picker.ResolveRoot(servedRoot, input.Root)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.PickResult{}, err
	}

	result, err := pickerSvc.Pick(root, pickConfig(input).Filter())
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.PickResult{}, err
	}

	return nil, result, nil
}

// pickConfig merges tool input over the served config. Explicit extensions
// and -e pairs replace configured extensions; excludes accumulate.
func pickConfig(input PickInput) *config.Config {
	extensions := append(append([]string{}, input.Extensions...), pathfilter.FromArgs(input.Args)...)

	cfg := serveCfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg.WithOverrides(extensions, input.Exclude)
}
