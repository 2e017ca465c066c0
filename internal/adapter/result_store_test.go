package adapter

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/valdiff/internal/model"
)

func TestLocalResultStore_SaveAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	log, _ := nullLog()
	store := NewLocalResultStore(fs, log)

	before, after := "205 ABC", "999 XYZ"
	result := m.DiffResult{
		Records: []m.DiffRecord{
			{
				Path:    m.NodePath{"Gateway", "Control unit, coding", "X"},
				Kind:    m.ValueChanged,
				Message: m.ChangeMessage(&before, &after),
				Old:     &before,
				New:     &after,
			},
			{
				Path:    m.NodePath{"Gateway", "Faults"},
				Kind:    m.MeasurementMissing,
				Missing: m.FirstDocument,
				Message: "measurement not found in first document",
			},
		},
		MissingInSecond: []string{"Engine"},
	}

	require.NoError(t, store.SaveDiff("/out/diffs/result.yaml", result))

	raw, err := afero.ReadFile(fs, "/out/diffs/result.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "kind: value changed")
	assert.Contains(t, string(raw), "missing_in_second:")
	assert.NotContains(t, string(raw), "missing_in_first")

	loaded, err := store.LoadDiff("/out/diffs/result.yaml")
	require.NoError(t, err)
	assert.Equal(t, result, loaded)
}

func TestLocalResultStore_LoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	log, _ := nullLog()
	store := NewLocalResultStore(fs, log)

	_, err := store.LoadDiff("/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved diff at /missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("records:\n  - kind: exploded\n"), 0o644))

	_, err = store.LoadDiff("/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode /bad.yaml")
}
