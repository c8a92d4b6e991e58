package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hpkotak/execgate/internal/config"
	"github.com/hpkotak/execgate/internal/policy"
	"github.com/spf13/cobra"
)

var (
	policyFlags []string
	noDefaults  bool
)

// Package-level function variables for testability.
// Tests override these to avoid touching the real config or process exit.
var (
	loadConfig           = config.Load
	saveConfig           = config.Save
	osExit               = os.Exit
	ioIn       io.Reader = os.Stdin
	ioOut      io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "execgate",
	Short: "Decide whether a command is provably safe to run unsandboxed",
	Long: `execgate checks a program invocation against declarative per-program
policies and reports one of three verdicts:

  allow      the call fully matches its policy and may run directly
  ask-user   the program is known but the call violates its policy
  sandbox    no policy covers the program

A policy describes the exact argument shape a program may be invoked
with: fixed subcommands, file arguments with read or write roles, and
optional flags. Anything a policy cannot fully account for is never
treated as safe.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&policyFlags, "policy", nil, "additional policy file (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&noDefaults, "no-defaults", false, "skip the built-in policy set")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadPolicy assembles the active policy: built-in defaults unless
// disabled, files listed in the config, then files from --policy. A
// program declared by more than one source is an error.
func loadPolicy() (*policy.Policy, error) {
	cfg, err := loadConfig()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
	}

	var parts []*policy.Policy
	if !noDefaults && !cfg.DisableDefaults {
		def, err := policy.Default()
		if err != nil {
			return nil, fmt.Errorf("loading built-in policies: %w", err)
		}
		parts = append(parts, def)
	}

	files := make([]string, 0, len(cfg.PolicyFiles)+len(policyFlags))
	files = append(files, cfg.PolicyFiles...)
	files = append(files, policyFlags...)
	for _, path := range files {
		p, err := policy.LoadPolicyFile(path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}

	return policy.Combine(parts...)
}
