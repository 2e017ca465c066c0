package cmd

import (
	"github.com/mouse-blink/valdiff/internal/domain"
	m "github.com/mouse-blink/valdiff/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <result.yaml>",
		Short: "View a comparison saved with diff --save",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{Saved: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
