package adapter

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/valdiff/internal/model"
)

// ResultStore persists and retrieves comparison results.
type ResultStore interface {
	SaveDiff(path m.Path, result m.DiffResult) error
	LoadDiff(path m.Path) (m.DiffResult, error)
}

// LocalResultStore stores comparison results as YAML files.
type LocalResultStore struct {
	fs  afero.Fs
	log *logrus.Entry
}

// NewLocalResultStore constructs a LocalResultStore. A nil fs means the OS filesystem.
func NewLocalResultStore(fs afero.Fs, log *logrus.Entry) *LocalResultStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &LocalResultStore{fs: fs, log: log}
}

// SaveDiff writes result to path, creating missing parent directories.
func (s *LocalResultStore) SaveDiff(path m.Path, result m.DiffResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "failed to encode diff result")
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	if err := afero.WriteFile(s.fs, string(path), data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	s.log.WithFields(logrus.Fields{"path": path, "records": len(result.Records)}).Debug("Saved diff result")

	return nil
}

// LoadDiff reads a result previously written by SaveDiff.
func (s *LocalResultStore) LoadDiff(path m.Path) (m.DiffResult, error) {
	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.DiffResult{}, errors.Wrapf(err, "no saved diff at %s", path)
		}

		return m.DiffResult{}, errors.Wrapf(err, "failed to read %s", path)
	}

	var result m.DiffResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		return m.DiffResult{}, errors.Wrapf(err, "failed to decode %s", path)
	}

	return result, nil
}
