// Package adapter contains infrastructure adapters: report archive access and XML decoding.
package adapter

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	m "github.com/mouse-blink/valdiff/internal/model"
)

const xmlExt = ".xml"

// ErrNoReportEntry is returned when an archive holds no XML payload.
var ErrNoReportEntry = errors.New("could not find report xml in zip")

// ReportFSAdapter abstracts filesystem access to report files so loading can be tested
// against an in-memory filesystem.
type ReportFSAdapter interface {
	// OpenPayload returns the XML payload of the report at path together with the name
	// of the entry it was read from. Plain .xml files are returned as they are; anything
	// else is treated as a zip archive and its first .xml entry is used.
	// The caller must close the returned reader.
	OpenPayload(path m.Path) (io.ReadCloser, string, error)
}

// LocalReportFSAdapter implements ReportFSAdapter on top of an afero filesystem.
type LocalReportFSAdapter struct {
	fs  afero.Fs
	log *logrus.Entry
}

// NewLocalReportFSAdapter constructs a LocalReportFSAdapter. A nil fs means the OS filesystem.
func NewLocalReportFSAdapter(fs afero.Fs, log *logrus.Entry) *LocalReportFSAdapter {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &LocalReportFSAdapter{fs: fs, log: log}
}

// OpenPayload implements ReportFSAdapter.
func (a *LocalReportFSAdapter) OpenPayload(path m.Path) (io.ReadCloser, string, error) {
	file, err := a.fs.Open(string(path))
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open %s", path)
	}

	if strings.EqualFold(filepath.Ext(string(path)), xmlExt) {
		a.log.WithField("path", path).Debug("Reading plain XML report")
		return file, filepath.Base(string(path)), nil
	}

	info, err := file.Stat()
	if err != nil {
		return nil, "", closeOnError(file, errors.Wrapf(err, "failed to stat %s", path))
	}

	archive, err := zip.NewReader(file, info.Size())
	if err != nil {
		return nil, "", closeOnError(file, errors.Wrapf(err, "failed to open zip archive %s", path))
	}

	for _, entry := range archive.File {
		if !strings.EqualFold(filepath.Ext(entry.Name), xmlExt) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, "", closeOnError(file, errors.Wrapf(err, "failed to open entry %s in %s", entry.Name, path))
		}

		a.log.WithFields(logrus.Fields{"path": path, "entry": entry.Name}).Debug("Found report entry in archive")

		return &payload{Reader: rc, closers: []io.Closer{rc, file}}, entry.Name, nil
	}

	return nil, "", closeOnError(file, errors.Wrapf(ErrNoReportEntry, "%s", path))
}

// payload closes the zip entry and the underlying archive file together.
type payload struct {
	io.Reader
	closers []io.Closer
}

func (p *payload) Close() error {
	var errs *multierror.Error

	for _, c := range p.closers {
		if err := c.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}

func closeOnError(c io.Closer, err error) error {
	if closeErr := c.Close(); closeErr != nil {
		return multierror.Append(err, closeErr)
	}

	return err
}
