package domain

import (
	"github.com/mouse-blink/valdiff/internal/adapter"
	"github.com/mouse-blink/valdiff/internal/controller"
	m "github.com/mouse-blink/valdiff/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DumpArgs holds the arguments of a dump run.
type DumpArgs struct {
	Report m.Path
}

// DiffArgs holds the arguments of a comparison run.
type DiffArgs struct {
	First  m.Path
	Second m.Path
	Config m.DiffConfig
	Save   m.Path // optional, where to store the result
}

// InfoArgs holds the arguments of an info run.
type InfoArgs struct {
	Report m.Path
}

// ViewArgs holds the arguments for displaying a stored comparison.
type ViewArgs struct {
	Saved m.Path
}

// Workflow defines the user facing report operations.
type Workflow interface {
	Dump(args DumpArgs) error
	Diff(args DiffArgs) error
	Info(args InfoArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	loader adapter.ReportLoader
	store  adapter.ResultStore
	ui     controller.UI
	dumper Dumper
	differ Differ
	log    *logrus.Entry
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	loader adapter.ReportLoader,
	store adapter.ResultStore,
	ui controller.UI,
	dumper Dumper,
	differ Differ,
	log *logrus.Entry,
) Workflow {
	return &workflow{
		loader: loader,
		store:  store,
		ui:     ui,
		dumper: dumper,
		differ: differ,
		log:    log,
	}
}

// Dump loads a report and displays every value it holds.
func (w *workflow) Dump(args DumpArgs) error {
	doc, err := w.loader.Load(args.Report)
	if err != nil {
		return err
	}

	records := w.dumper.Dump(doc)
	w.log.WithField("values", len(records)).Debugf("dumped %s", args.Report)

	return w.ui.DisplayDump(records)
}

// Diff loads both reports concurrently and displays their differences.
func (w *workflow) Diff(args DiffArgs) error {
	var first, second *m.Document

	var g errgroup.Group

	g.Go(func() error {
		doc, err := w.loader.Load(args.First)
		if err != nil {
			return errors.Wrap(err, "first report")
		}

		first = doc

		return nil
	})

	g.Go(func() error {
		doc, err := w.loader.Load(args.Second)
		if err != nil {
			return errors.Wrap(err, "second report")
		}

		second = doc

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	result := w.differ.Diff(first, second, args.Config)
	w.log.WithFields(logrus.Fields{
		"records":           len(result.Records),
		"missing_in_first":  len(result.MissingInFirst),
		"missing_in_second": len(result.MissingInSecond),
	}).Debug("compared reports")

	if args.Save != "" {
		if err := w.store.SaveDiff(args.Save, result); err != nil {
			return err
		}
	}

	return w.ui.DisplayDiff(result)
}

// View displays a comparison stored by an earlier Diff.
func (w *workflow) View(args ViewArgs) error {
	result, err := w.store.LoadDiff(args.Saved)
	if err != nil {
		return err
	}

	return w.ui.DisplayDiff(result)
}

// Info loads a report and displays its header.
func (w *workflow) Info(args InfoArgs) error {
	doc, err := w.loader.Load(args.Report)
	if err != nil {
		return err
	}

	return w.ui.DisplayInfo(doc)
}
