package main

import (
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/randpick/internal/config"
	"github.com/taigrr/randpick/internal/picker"
)

var (
	servedRoot string
	pickerSvc  *picker.Picker
	serveCfg   *config.Config
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve [root]",
		Short: "Serve random picks over MCP",
		Long: `serve runs a Model Context Protocol (MCP) server on stdio that
exposes a "pick" tool. Picks are confined to the served root.`,
		Example: `randpick serve ~/notes`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, opts)
		},
	}
}

func runServer(cmd *cobra.Command, args []string, opts *options) error {
	log := newLogger(cmd, opts)

	root, err := serveRoot(args, opts)
	if err != nil {
		log.Errorf("serve: %v", err)
		return err
	}

	// Initialize services
	servedRoot = root
	pickerSvc = picker.New(nil)
	log.Debugf("serving %s", root)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "randpick",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		log.Errorf("serve: %v", err)
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}

// serveRoot loads the config into serveCfg and returns the directory to serve.
func serveRoot(args []string, opts *options) (string, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return "", err
	}
	serveCfg = cfg

	root, err := resolveRoot(args, cfg)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("failed to open root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root is not a directory: %s", root)
	}
	return root, nil
}
