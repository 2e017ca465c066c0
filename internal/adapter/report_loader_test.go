package adapter

import (
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/valdiff/internal/adapter/mocks"
	m "github.com/mouse-blink/valdiff/internal/model"
)

type failingCloser struct {
	io.Reader
	err error
}

func (f failingCloser) Close() error {
	return f.err
}

func TestReportLoader_LoadsArchive(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeZip(t, fs, "/reports/car.val", zipEntry{name: "VAL_123.xml", body: reportXML(gatewaySection)})

	log, hook := nullLog()
	loader := NewReportLoader(NewLocalReportFSAdapter(fs, log), NewXMLReportDecoder(), log)

	doc, err := loader.Load("/reports/car.val")
	require.NoError(t, err)
	require.Len(t, doc.Sections(), 1)
	assert.Equal(t, "Gateway", doc.Sections()[0].Title())
	assert.Equal(t, 1, hook.LastEntry().Data["sections"])
}

func TestReportLoader_DecodeErrorIsWrapped(t *testing.T) {
	fs := afero.NewMemMapFs()
	broken := strings.Replace(reportXML(), "<TITLE>Quick test</TITLE>", "", 1)
	writeZip(t, fs, "/reports/car.val", zipEntry{name: "VAL_123.xml", body: broken})

	log, _ := nullLog()
	loader := NewReportLoader(NewLocalReportFSAdapter(fs, log), NewXMLReportDecoder(), log)

	doc, err := loader.Load("/reports/car.val")
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed deserializing /reports/car.val")
	assert.ErrorIs(t, err, m.ErrMissingField)
}

func TestReportLoader_WithMocks(t *testing.T) {
	t.Run("open failure is returned as is", func(t *testing.T) {
		fsAdapter := mocks.NewMockReportFSAdapter(t)
		decoder := mocks.NewMockReportDecoder(t)
		errBoom := errors.New("boom")

		fsAdapter.EXPECT().OpenPayload(m.Path("a.val")).Return(nil, "", errBoom)

		log, _ := nullLog()
		_, err := NewReportLoader(fsAdapter, decoder, log).Load("a.val")
		assert.Equal(t, errBoom, err)
	})

	t.Run("close failure fails the load", func(t *testing.T) {
		fsAdapter := mocks.NewMockReportFSAdapter(t)
		decoder := mocks.NewMockReportDecoder(t)
		errClose := errors.New("close failed")
		payload := failingCloser{Reader: strings.NewReader("<VAL/>"), err: errClose}

		fsAdapter.EXPECT().OpenPayload(m.Path("a.val")).Return(payload, "a.xml", nil)
		decoder.EXPECT().Decode(mock.Anything).Return(&m.Document{}, nil)

		log, _ := nullLog()
		doc, err := NewReportLoader(fsAdapter, decoder, log).Load("a.val")
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, errClose)
	})

	t.Run("decode and close failures are combined", func(t *testing.T) {
		fsAdapter := mocks.NewMockReportFSAdapter(t)
		decoder := mocks.NewMockReportDecoder(t)
		errClose := errors.New("close failed")
		errDecode := errors.New("decode failed")
		payload := failingCloser{Reader: strings.NewReader(""), err: errClose}

		fsAdapter.EXPECT().OpenPayload(m.Path("a.val")).Return(payload, "a.xml", nil)
		decoder.EXPECT().Decode(mock.Anything).Return(nil, errDecode)

		log, _ := nullLog()
		_, err := NewReportLoader(fsAdapter, decoder, log).Load("a.val")
		assert.ErrorIs(t, err, errClose)
		assert.ErrorIs(t, err, errDecode)
	})
}
