/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command pptheaders prints the header, footer and date settings of binary slide documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
	"github.com/unidoc/unippt/ppt/model"
)

// logLevelEnv names the environment variable read when --log-level is not given.
const logLevelEnv = "UNIPPT_LOG_LEVEL"

var (
	logLevel   string
	showNotes  bool
	slideIndex int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pptheaders",
		Short: "Inspect header and footer settings of .ppt files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := resolveLogLevel(logLevel, os.Getenv(logLevelEnv))
			if err != nil {
				return err
			}
			logger := common.NewConsoleLogger(level)
			logger.Output = os.Stderr
			common.SetLogger(logger)
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: trace, debug, info, notice, warning, error (default from "+logLevelEnv+", else error)")

	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the header/footer settings",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().BoolVar(&showNotes, "notes", false, "Show the notes settings instead of the slide settings")
	showCmd.Flags().IntVar(&slideIndex, "slide", 0, "Resolve through slide N (1-based) instead of the first master")

	dumpCmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the record tree of the document stream",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}

	rootCmd.AddCommand(showCmd, dumpCmd)
	return rootCmd
}

// resolveLogLevel picks the level from the flag, then the environment. Neither set means errors only.
func resolveLogLevel(flag, env string) (common.LogLevel, error) {
	name := flag
	if name == "" {
		name = env
	}
	if name == "" {
		return common.LogLevelError, nil
	}
	level, ok := common.ParseLogLevel(name)
	if !ok {
		return level, fmt.Errorf("invalid log level: %q", name)
	}
	return level, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ppt, err := model.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}

	hf, err := selectHeadersFooters(ppt, showNotes, slideIndex)
	if err != nil {
		return err
	}
	return printHeadersFooters(cmd.OutOrStdout(), hf)
}

func runDump(cmd *cobra.Command, args []string) error {
	ppt, err := model.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	return core.Dump(cmd.OutOrStdout(), ppt.Records())
}
