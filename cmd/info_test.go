package cmd

import (
	"testing"

	"github.com/mouse-blink/valdiff/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestInfoCmd(t *testing.T) {
	cmd, mockWorkflow := newTestCmd(t, newInfoCmd())

	mockWorkflow.EXPECT().Info(domain.InfoArgs{Report: "report.xml"}).Return(nil)

	cmd.SetArgs([]string{"info", "report.xml"})
	require.NoError(t, cmd.Execute())
}
