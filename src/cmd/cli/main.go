// hypergrab-cli performs one headless capture: grab the primary display and
// save it under a collision-free name derived from a test-case code. No
// window to hide means no settle delay; the grab happens immediately.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danico-oss/hypergrab/src/capture"
	"github.com/danico-oss/hypergrab/src/config"
	"github.com/danico-oss/hypergrab/src/journal"
	"github.com/danico-oss/hypergrab/src/logutil"
)

type cliOptions struct {
	code    string
	dir     string
	verbose bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(os.Args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hypergrab-cli",
		Short:         "Capture the primary display into a named evidence file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOptions(*opts)
		},
	}

	cmd.Flags().StringVarP(&opts.code, "code", "c", "", "test case code used as the filename stem (required)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "directory the image is written to")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to file per configuration")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func runWithOptions(opts cliOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logutil.Setup(opts.verbose && cfg.EnableFileLogging)

	if opts.code == "" {
		return errors.New("a non-empty --code is required")
	}
	if info, err := os.Stat(opts.dir); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %q is not usable", opts.dir)
	}

	path, err := capture.Execute(opts.dir, opts.code)

	if cfg.JournalPath != "" {
		if j, jerr := journal.Open(cfg.JournalPath); jerr == nil {
			_ = j.Record(opts.code, path, err)
			_ = j.Close()
		}
	}

	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
