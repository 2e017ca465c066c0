package cmd

import (
	"github.com/mouse-blink/valdiff/internal/domain"
	m "github.com/mouse-blink/valdiff/internal/model"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command.
var dumpCmd = newDumpCmd()

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <report>",
		Short: "Print every value of a report",
		Long: `Print every value of a report, one line per value, qualified by the
section and measurement titles that contain it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Dump(domain.DumpArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
