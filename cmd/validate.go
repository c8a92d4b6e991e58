package cmd

import (
	"fmt"

	"github.com/hpkotak/execgate/internal/policy"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Parse policy files and report any errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		p, err := policy.LoadPolicyFile(path)
		if err != nil {
			failed++
			_, _ = fmt.Fprintf(ioOut, "error: %v\n", err)
			continue
		}
		_, _ = fmt.Fprintf(ioOut, "ok: %s (%d programs)\n", path, len(p.Programs()))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d policy files failed to parse", failed, len(args))
	}
	return nil
}
