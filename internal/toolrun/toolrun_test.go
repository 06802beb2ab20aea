package toolrun_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/iceinvein/create-react-csr-app/internal/toolrun"
)

func TestInvocationString(t *testing.T) {
	tests := []struct {
		name string
		inv  toolrun.Invocation
		want string
	}{
		{
			name: "no args",
			inv:  toolrun.Invocation{Name: "npm"},
			want: "npm",
		},
		{
			name: "with args",
			inv:  toolrun.Invocation{Name: "npm", Args: []string{"install", "-D", "eslint"}},
			want: "npm install -D eslint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecRunner_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX true")
	}
	err := toolrun.ExecRunner{}.Run(toolrun.Invocation{Name: "true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX false")
	}
	err := toolrun.ExecRunner{}.Run(toolrun.Invocation{Name: "false"})
	if err == nil {
		t.Fatal("expected error for non-zero exit, got nil")
	}
	if !strings.Contains(err.Error(), "false") {
		t.Errorf("error does not name the invocation: %v", err)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	err := toolrun.ExecRunner{}.Run(toolrun.Invocation{Name: "definitely-not-a-real-binary-xyz"})
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}

func TestExecRunner_RespectsDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX sh")
	}
	dir := t.TempDir()
	err := toolrun.ExecRunner{}.Run(toolrun.Invocation{
		Name: "sh",
		Args: []string{"-c", "pwd > marker.txt"},
		Dir:  dir,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "marker.txt")); statErr != nil {
		t.Errorf("child did not run in Dir: %v", statErr)
	}
}

func TestExecRunner_FailureCarriesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX sh")
	}
	err := toolrun.ExecRunner{}.Run(toolrun.Invocation{
		Name: "sh",
		Args: []string{"-c", "echo boom diagnostics; exit 3"},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "boom diagnostics") {
		t.Errorf("error missing child output: %v", err)
	}
}
