package cmd

import (
	"github.com/mouse-blink/valdiff/internal/domain"
	m "github.com/mouse-blink/valdiff/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var diffConfigFlags = m.DefaultDiffConfig()
var diffAllFlag bool
var diffSaveFlag string

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <first> <second>",
		Short: "Compare two reports",
		Long: `Compare two reports and list every measurement or value that is missing
from one of them or whose raw value changed. Only coding measurements are
compared unless other kinds are enabled.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			config := diffConfigFlags
			if diffAllFlag {
				config = m.AllDiffConfig()
			}

			return workflow.Diff(domain.DiffArgs{
				First:  m.Path(args[0]),
				Second: m.Path(args[1]),
				Config: config,
				Save:   m.Path(diffSaveFlag),
			})
		},
	}
	diffConfigFlags = m.DefaultDiffConfig()
	bindDiffConfigFlags(cmd.Flags(), &diffConfigFlags)
	cmd.Flags().BoolVarP(&diffAllFlag, "all", "a", false, "compare every measurement kind")
	cmd.Flags().StringVarP(&diffSaveFlag, "save", "o", "", "also write the result as YAML to this file")

	return cmd
}

func bindDiffConfigFlags(flags *pflag.FlagSet, cfg *m.DiffConfig) {
	flags.BoolVar(&cfg.IncludeCoding, "include-coding", cfg.IncludeCoding, "compare coding measurements")
	flags.BoolVar(&cfg.IncludeMistakes, "include-mistakes", cfg.IncludeMistakes, "compare mistake measurements")
	flags.BoolVar(&cfg.IncludeIdentification, "include-identification", cfg.IncludeIdentification, "compare identification measurements")
	flags.BoolVar(&cfg.IncludeValues, "include-values", cfg.IncludeValues, "compare measured values")
	flags.BoolVar(&cfg.IncludeExtendedErrors, "include-extended-errors", cfg.IncludeExtendedErrors, "compare extended error memory")
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
