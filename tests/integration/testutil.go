// Package integration provides cross-package and CLI integration tests for
// sovran-typemap.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// typemapBin is the path to the built demo binary.
	typemapBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with the compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// CmdResult holds the result of a demo binary invocation.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunTypemap executes the built demo binary with the given arguments.
func RunTypemap(t *testing.T, args ...string) CmdResult {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build typemap binary: %v", buildErr)
	}
	if typemapBin == "" {
		t.Fatal("typemap binary not built")
	}

	cmd := exec.Command(typemapBin, args...)
	cmd.Dir = t.TempDir()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("run typemap %v: %v", args, err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
