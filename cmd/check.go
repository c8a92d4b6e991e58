package cmd

import (
	"fmt"

	"github.com/hpkotak/execgate/internal/decision"
	"github.com/hpkotak/execgate/internal/executor"
	"github.com/hpkotak/execgate/internal/platform"
	"github.com/hpkotak/execgate/internal/policy"
	"github.com/spf13/cobra"
)

// Exit codes for check, so scripts and wrappers can branch on the verdict.
const (
	exitAskUser = 2
	exitSandbox = 3
)

var runFlag bool

var (
	runCommand  = executor.Run
	resolvePath = platform.Resolve
)

var checkCmd = &cobra.Command{
	Use:   "check PROGRAM [ARG...]",
	Short: "Check one invocation against the loaded policies",
	Long: `Check decides whether PROGRAM invoked with ARG... is provably covered
by the loaded policies. Exit codes: 0 allow, 1 error, 2 ask-user, 3 sandbox.

Examples:
  execgate check pwd -L
  execgate check cp src1 src2 dest
  execgate check --policy team.policy deploy --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	// Everything after PROGRAM belongs to the checked invocation, so flag
	// parsing stops at the first non-flag argument.
	checkCmd.Flags().SetInterspersed(false)
	checkCmd.Flags().BoolVar(&runFlag, "run", false, "execute the command if the verdict is allow")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := loadPolicy()
	if err != nil {
		return err
	}

	call := policy.NewExecCall(args[0], args[1:]...)
	v := decision.Evaluate(p, call)

	switch v.Mode {
	case decision.Allow:
		printMatch(v.Match)
		if runFlag {
			return runMatched(call, v.Match)
		}
	case decision.AskUser:
		_, _ = fmt.Fprintf(ioOut, "ask-user: %s\n", v.Reason)
		osExit(exitAskUser)
	case decision.Sandbox:
		_, _ = fmt.Fprintf(ioOut, "sandbox: %s\n", v.Reason)
		osExit(exitSandbox)
	}
	return nil
}

func printMatch(m *policy.MatchedExec) {
	_, _ = fmt.Fprintf(ioOut, "allow: %s\n", m.Exec.Program)
	for _, a := range m.Exec.Args {
		_, _ = fmt.Fprintf(ioOut, "  arg[%d] %s: %s\n", a.Index, a.Type, a.Value)
	}
	for _, f := range m.Exec.Flags {
		_, _ = fmt.Fprintf(ioOut, "  flag: %s\n", f.Flag)
	}
}

// runMatched executes an allowed call after verifying that the program
// resolves to a location the policy trusts.
func runMatched(call policy.ExecCall, m *policy.MatchedExec) error {
	resolved, err := resolvePath(call.Program)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", call.Program, err)
	}
	if len(m.Exec.SystemPath) > 0 && !platform.Trusted(resolved, m.Exec.SystemPath) {
		return fmt.Errorf("%s resolves to %s, which is not a trusted location", call.Program, resolved)
	}

	if !executor.Confirm(fmt.Sprintf("Run %s?", resolved), true, ioIn, ioOut) {
		_, _ = fmt.Fprintln(ioOut, "Cancelled.")
		return nil
	}
	return runCommand(resolved, call.Args)
}
