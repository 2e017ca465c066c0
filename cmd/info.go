package cmd

import (
	"github.com/mouse-blink/valdiff/internal/domain"
	m "github.com/mouse-blink/valdiff/internal/model"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command.
var infoCmd = newInfoCmd()

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <report>",
		Short: "Show the vehicle and test header of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Info(domain.InfoArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
