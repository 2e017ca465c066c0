// Package cmd provides the root command and CLI setup for valdiff.
package cmd

import (
	"io"
	"os"

	"github.com/mouse-blink/valdiff/internal/adapter"
	"github.com/mouse-blink/valdiff/internal/controller"
	"github.com/mouse-blink/valdiff/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var logger = logrus.New()

// workflow is built on first use so tests can install a mock beforehand.
var workflow domain.Workflow

var logLevelFlag = logLevelValue{level: logrus.WarnLevel}
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valdiff",
		Short: "Inspect and compare VAL vehicle diagnostic reports",
		Long: `valdiff reads VAL diagnostic reports, either zip archives holding the report
XML or the XML file itself, and prints their content or the differences
between two of them.

  valdiff dump report.val            list every value of a report
  valdiff diff before.val after.val  list what changed between two reports
  valdiff info report.val            show vehicle and test header
  valdiff view result.yaml           show a diff saved with diff --save`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(cmd.ErrOrStderr())

			if workflow == nil {
				useTTY := !plainFlag && controller.IsTTY(cmd.OutOrStdout())
				workflow = newWorkflow(controller.NewUI(cmd, useTTY))
			}

			return nil
		},
	}
	cmd.PersistentFlags().Var(&logLevelFlag, "log-level", "log verbosity (panic, fatal, error, warn, info, debug, trace)")
	cmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "disable styling and interactive paging")

	return cmd
}

func configureLogger(out io.Writer) {
	logger.SetOutput(out)
	logger.SetLevel(logLevelFlag.level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func newWorkflow(ui controller.UI) domain.Workflow {
	log := logrus.NewEntry(logger)

	loader := adapter.NewReportLoader(
		adapter.NewLocalReportFSAdapter(afero.NewOsFs(), log.WithField("component", "fs")),
		adapter.NewXMLReportDecoder(),
		log.WithField("component", "loader"),
	)

	return domain.NewWorkflow(
		loader,
		adapter.NewLocalResultStore(afero.NewOsFs(), log.WithField("component", "store")),
		ui,
		domain.NewDumper(),
		domain.NewDiffer(),
		log.WithField("component", "workflow"),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// logLevelValue is a pflag.Value accepting logrus level names.
type logLevelValue struct {
	level logrus.Level
}

var _ pflag.Value = (*logLevelValue)(nil)

func (v *logLevelValue) String() string {
	return v.level.String()
}

func (v *logLevelValue) Set(s string) error {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return err
	}

	v.level = level

	return nil
}

func (v *logLevelValue) Type() string {
	return "level"
}
