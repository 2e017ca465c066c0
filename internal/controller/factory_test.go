package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if ui, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Errorf("NewUI(true) returned %T, want *TUI", ui)
	}

	if ui, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Errorf("NewUI(false) returned %T, want *SimpleUI", ui)
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "valdiff-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestIsTTY_ClosedFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "valdiff-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(closed file) = true, want false")
	}
}

func TestIsTTY_CharDevice(t *testing.T) {
	file, err := os.Open("/dev/null")
	if err != nil {
		t.Skip("/dev/null not available")
	}
	defer file.Close()

	if !IsTTY(file) {
		t.Fatalf("IsTTY(/dev/null) = false, want true")
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(buffer) = true, want false")
	}
}
