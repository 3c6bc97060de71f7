// Package main implements the randpick command.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/randpick/internal/config"
	"github.com/taigrr/randpick/internal/console"
	"github.com/taigrr/randpick/internal/pathfilter"
	"github.com/taigrr/randpick/internal/picker"
	"github.com/taigrr/randpick/internal/types"
)

type options struct {
	extensions []string
	exclude    []string
	configPath string
	printURI   bool
	printJSON  bool
	verbose    bool
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "randpick [root]",
		Short: "Pick a random file from a directory tree",
		Long: `randpick walks a directory tree and prints one file chosen uniformly
at random. Use -e to restrict the pick to files with the given
extensions. Symlinks are never followed. When nothing matches,
nothing is printed.`,
		Example: `randpick ~/notes -e md
randpick -e jpg -e png --uri ~/Pictures`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.extensions, "ext", "e", nil, "only pick files with this extension (repeatable, case-sensitive)")
	flags.StringArrayVar(&opts.exclude, "exclude", nil, "skip files and directories matching this glob, relative to root (repeatable; devices, sockets and pipes still abort the walk)")
	flags.BoolVar(&opts.printURI, "uri", false, "print a file:// URI instead of a path")
	flags.BoolVar(&opts.printJSON, "json", false, "print the result as JSON")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/randpick/config.yaml)")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

func runPick(cmd *cobra.Command, args []string, opts *options) error {
	log := newLogger(cmd, opts)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if path := cfg.GetConfigFilePath(); path != "" {
		log.Debugf("config file: %s", path)
	}

	root, err := resolveRoot(args, cfg)
	if err != nil {
		return err
	}

	filter := buildFilter(cmd, cfg, opts)
	log.Debugf("root: %s", root)
	log.Debugf("extensions: %q", filter.Extensions())

	result, err := picker.New(nil).Pick(root, filter)
	if err != nil {
		return fmt.Errorf("failed to pick from %s: %w", root, err)
	}
	log.Debugf("candidates: %d", result.Candidates)
	if !result.Found {
		log.Infof("no matching files under %s", root)
	}

	return writeResult(cmd.OutOrStdout(), result, opts)
}

func newLogger(cmd *cobra.Command, opts *options) *console.Logger {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	return console.New(cmd.ErrOrStderr(), level)
}

// resolveRoot picks the walk root: the positional argument, then the config
// file, then the working directory.
func resolveRoot(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Root != "" {
		return cfg.Root, nil
	}
	root, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return root, nil
}

// buildFilter merges flag values over the config file. Extensions given on
// the command line replace configured ones; excludes accumulate.
func buildFilter(cmd *cobra.Command, cfg *config.Config, opts *options) *pathfilter.Filter {
	var extensions []string
	if cmd.Flags().Changed("ext") {
		extensions = opts.extensions
	}
	return cfg.WithOverrides(extensions, opts.exclude).Filter()
}

func writeResult(w io.Writer, result types.PickResult, opts *options) error {
	switch {
	case opts.printJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case !result.Found:
		return nil
	case opts.printURI:
		_, err := fmt.Fprintln(w, result.URI)
		return err
	default:
		_, err := fmt.Fprintln(w, result.Path)
		return err
	}
}
