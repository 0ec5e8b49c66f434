// Command lci is the entry point for the LOLCODE interpreter.
//
// With no arguments it starts an interactive REPL; given a file it runs
// that file's `HAI ... KTHXBYE` program to completion, exiting with the
// stable code the triggering diagnostic carries (see package errs), or 0
// on success.
package main

import (
	"os"

	"github.com/golci/lci/config"
	"github.com/golci/lci/errs"
	"github.com/golci/lci/eval"
	"github.com/golci/lci/parser"
	"github.com/golci/lci/repl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var redColor = color.New(color.FgRed)

const version = "v0.1.0"

func main() {
	var configPath string
	var verbose bool
	var allowSystemCommands bool

	rootCmd := &cobra.Command{
		Use:           "lci [file.lol]",
		Short:         "Run or interactively evaluate LOLCODE programs",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cerr := config.Load(configPath)
			if cerr != nil {
				redColor.Fprintf(os.Stderr, "%s\n", cerr.Error())
				os.Exit(cerr.ExitCode())
			}
			if verbose {
				cfg.Verbose = true
			}
			if allowSystemCommands {
				cfg.AllowSystemCommands = true
			}

			if len(args) == 0 {
				startRepl(cfg)
				return nil
			}
			return runFile(args[0], cfg)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", ".lci.yaml", "path to the run configuration file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable trace logging")
	rootCmd.Flags().BoolVar(&allowSystemCommands, "allow-system-commands", false, "permit I DUZ to shell out")

	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// runFile reads and executes a single LOLCODE source file, propagating
// the diagnostic's exit code on failure.
func runFile(path string, cfg *config.Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		oerr := errs.New(errs.FileOpenFailed, path, 0, "", path, err)
		redColor.Fprintf(os.Stderr, "%s\n", oerr.Error())
		os.Exit(oerr.ExitCode())
	}

	main, perr := parser.Parse(string(src), path)
	if perr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", perr.Error())
		os.Exit(perr.ExitCode())
	}

	ev := eval.New(os.Stdout, os.Stdin, cfg, path)
	if rerr := ev.Run(main); rerr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", rerr.Error())
		os.Exit(rerr.ExitCode())
	}
	return nil
}

// startRepl launches the interactive session on stdin/stdout.
func startRepl(cfg *config.Config) {
	r := repl.New(repl.Banner, version, "golci contributors", repl.Line, "MIT", "lci> ", cfg)
	r.Start(os.Stdin, os.Stdout)
}
