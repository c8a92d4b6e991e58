package cmd

import (
	"fmt"
	"strings"

	"github.com/hpkotak/execgate/internal/policy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var programsFormat string

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List programs covered by the loaded policies",
	Args:  cobra.NoArgs,
	RunE:  runPrograms,
}

func init() {
	programsCmd.Flags().StringVar(&programsFormat, "format", "text", "output format: text or yaml")
	rootCmd.AddCommand(programsCmd)
}

type programInfo struct {
	Args       []string `yaml:"args,omitempty"`
	Flags      []string `yaml:"flags,omitempty"`
	SystemPath []string `yaml:"system_path,omitempty"`
}

func runPrograms(cmd *cobra.Command, args []string) error {
	p, err := loadPolicy()
	if err != nil {
		return err
	}

	switch programsFormat {
	case "text":
		for _, name := range p.Programs() {
			pp, _ := p.Get(name)
			_, _ = fmt.Fprintf(ioOut, "%s%s\n", name, describePatterns(pp))
		}
	case "yaml":
		out := make(map[string]programInfo, len(p.Programs()))
		for _, name := range p.Programs() {
			pp, _ := p.Get(name)
			info := programInfo{Flags: pp.Flags, SystemPath: pp.SystemPath}
			for _, m := range pp.ArgPatterns {
				info.Args = append(info.Args, m.String())
			}
			out[name] = info
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("encoding programs: %w", err)
		}
		_, _ = fmt.Fprint(ioOut, string(data))
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", programsFormat)
	}
	return nil
}

func describePatterns(pp *policy.ProgramPolicy) string {
	var parts []string
	for _, m := range pp.ArgPatterns {
		parts = append(parts, m.String())
	}
	for _, f := range pp.Flags {
		parts = append(parts, fmt.Sprintf("[%s]", f))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}
