package adapter

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	m "github.com/mouse-blink/valdiff/internal/model"
)

// ReportLoader loads a fully decoded report document from disk.
type ReportLoader interface {
	Load(path m.Path) (*m.Document, error)
}

type reportLoader struct {
	fsAdapter ReportFSAdapter
	decoder   ReportDecoder
	log       *logrus.Entry
}

// NewReportLoader constructs a ReportLoader from a filesystem adapter and a decoder.
func NewReportLoader(fsAdapter ReportFSAdapter, decoder ReportDecoder, log *logrus.Entry) ReportLoader {
	return &reportLoader{
		fsAdapter: fsAdapter,
		decoder:   decoder,
		log:       log,
	}
}

// Load opens, decodes and releases the report at path. A report either decodes
// completely or not at all.
func (l *reportLoader) Load(path m.Path) (doc *m.Document, err error) {
	rc, entry, err := l.fsAdapter.OpenPayload(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			err = multierror.Append(err, errors.Wrapf(closeErr, "failed to close %s", path)).ErrorOrNil()
			doc = nil
		}
	}()

	log := l.log.WithFields(logrus.Fields{"path": path, "entry": entry})
	log.Debug("Decoding report")

	doc, err = l.decoder.Decode(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed deserializing %s", path)
	}

	log.WithField("sections", len(doc.Sections())).Debug("Report decoded")

	return doc, nil
}
