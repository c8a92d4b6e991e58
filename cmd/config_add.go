package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/hpkotak/execgate/internal/config"
	"github.com/hpkotak/execgate/internal/policy"
	"github.com/spf13/cobra"
)

var configAddPolicyCmd = &cobra.Command{
	Use:   "add-policy <file>",
	Short: "Add a policy file to the configuration",
	Long: `Add a policy file to the configuration. The file is parsed first so a
broken source is rejected before it can shadow every future check.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigAddPolicy,
}

func init() {
	configCmd.AddCommand(configAddPolicyCmd)
}

func runConfigAddPolicy(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	if _, err := policy.LoadPolicyFile(path); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
	}

	if slices.Contains(cfg.PolicyFiles, path) {
		_, _ = fmt.Fprintf(ioOut, "%s already configured\n", path)
		return nil
	}
	cfg.PolicyFiles = append(cfg.PolicyFiles, path)

	if err := saveConfig(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "Added policy file %s\n", path)
	return nil
}
