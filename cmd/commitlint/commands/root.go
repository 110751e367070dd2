// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitlint - Commitlint checks commit messages against the Conventional Commits format.
It lints a single message, a commit message file, a git commit or a range of git commits, and reports every violation in a form readable by humans and CI systems.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bartekus/commitlint/cmd/commitlint/internal/clierr"
	"github.com/bartekus/commitlint/internal/config"
	"github.com/bartekus/commitlint/internal/console"
	"github.com/bartekus/commitlint/internal/history"
	"github.com/bartekus/commitlint/internal/linter"
	"github.com/bartekus/commitlint/internal/rules"
	"github.com/bartekus/commitlint/internal/runner"
)

type rootOptions struct {
	file       string
	hash       string
	fromHash   string
	toHash     string
	skipDetail bool
	hideInput  bool
	verbose    bool
	quiet      bool
	noColor    bool
	listRules  bool
	configPath string
	reportFile string
	repoDir    string
}

// NewRootCmd constructs the commitlint root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COMMITLINT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "commitlint [commit_message]",
		Short: "Check commit messages against the Conventional Commits format",
		Long: `Check commit messages against the Conventional Commits format.

The message to check is given as an argument, read from a file (lines
starting with '#' are ignored), or taken from git by hash or hash range.`,
		Example: `  commitlint "feat(api): add pagination"
  commitlint --file .git/COMMIT_EDITMSG
  commitlint --hash HEAD
  commitlint --from-hash origin/main --to-hash HEAD`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return validateArgs(cmd, opts, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args)
		},
	}

	// Flags in alphabetical order for deterministic help output
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default: $"+config.EnvConfigPath+" or .commitlint.yaml)")
	f.StringVar(&opts.file, "file", "", "path to a file containing the commit message")
	f.StringVar(&opts.fromHash, "from-hash", "", "first commit of the range to check (inclusive)")
	f.StringVar(&opts.hash, "hash", "", "commit hash to check")
	f.BoolVar(&opts.hideInput, "hide-input", false, "do not echo the checked message")
	f.BoolVar(&opts.listRules, "list-rules", false, "list the rules in evaluation order and exit")
	f.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print nothing; only set the exit code")
	f.StringVar(&opts.reportFile, "report-file", "", "write a JSON report to this path")
	f.StringVar(&opts.repoDir, "repo-dir", "", "git repository and config directory (default: current directory)")
	f.BoolVar(&opts.skipDetail, "skip-detail", false, "print a single line instead of every error")
	f.StringVar(&opts.toHash, "to-hash", history.DefaultToHash, "last commit of the range to check (inclusive)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print rule evaluation diagnostics")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.ExitUsage, "invalid usage", err)
	})

	return cmd
}

// validateArgs rejects contradictory or missing input before any linting.
func validateArgs(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if len(args) > 1 {
		return clierr.Usagef("accepts at most one commit message, received %d arguments", len(args))
	}
	if opts.quiet && opts.verbose {
		return clierr.Usagef("--quiet and --verbose cannot be used together")
	}
	if cmd.Flags().Changed("to-hash") && opts.fromHash == "" {
		return clierr.Usagef("--to-hash requires --from-hash")
	}
	if opts.listRules {
		return nil
	}

	given := 0
	for _, set := range []bool{len(args) == 1, opts.file != "", opts.hash != "", opts.fromHash != ""} {
		if set {
			given++
		}
	}
	switch {
	case given == 0:
		return clierr.Usagef("a commit message, --file, --hash or --from-hash is required")
	case given > 1:
		return clierr.Usagef("only one of commit message, --file, --hash or --from-hash may be given")
	}
	return nil
}

func runLint(cmd *cobra.Command, opts *rootOptions, args []string) error {
	var out console.Console = console.Discard{}
	if !opts.quiet {
		var copts []console.Option
		if opts.noColor {
			copts = append(copts, console.WithNoColor())
		}
		out = console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), copts...)
	}

	log := newLogger(cmd.ErrOrStderr(), opts)

	registry := rules.NewDefaultRegistry()
	if opts.listRules {
		for _, r := range registry.Rules() {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", r.Name(), r.Description())
		}
		return nil
	}

	dir := opts.repoDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fail(out, err)
		}
		dir = wd
	}

	cfg, err := config.Resolve(opts.configPath, dir)
	if err != nil {
		return fail(out, err)
	}
	cfg.Quiet = opts.quiet
	cfg.Verbose = opts.verbose
	cfg.HideInput = opts.hideInput
	cfg.SkipDetail = opts.skipDetail

	deps := &runner.Deps{
		Config:  cfg,
		Engine:  linter.New(cfg, registry, log),
		History: history.NewGit(dir, log),
		Console: out,
		Log:     log,
	}
	if opts.reportFile != "" {
		deps.Store = runner.NewReportStore(opts.reportFile)
	}

	in := runner.Input{
		File:     opts.file,
		Hash:     opts.hash,
		FromHash: opts.fromHash,
		ToHash:   opts.toHash,
	}
	if len(args) == 1 {
		in.Message = args[0]
		in.Literal = true
	}

	dec, err := runner.NewRunner(deps).Run(cmd.Context(), in)
	if err != nil {
		return fail(out, err)
	}
	if dec.ExitCode != clierr.ExitOK {
		return clierr.Reported(dec.ExitCode, fmt.Errorf("%d of %d commit message(s) failed validation", dec.Failed, len(dec.Results)))
	}
	return nil
}

// fail shows err once through the error channel and exits 1.
func fail(out console.Console, err error) error {
	out.Error(err.Error())
	return clierr.Reported(clierr.ExitFailure, err)
}

func newLogger(w io.Writer, opts *rootOptions) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if opts.quiet {
		log.SetOutput(io.Discard)
	}
	return log
}
