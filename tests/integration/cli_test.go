// CLI integration tests: build the demo binary once and exercise every
// subcommand end to end.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the typemap binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}

	tmpDir, err := os.MkdirTemp("", "typemap-test-*")
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}
	typemapBin = filepath.Join(tmpDir, "typemap")

	cmd := exec.Command("go", "build", "-o", typemapBin, "./cmd/typemap")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestCLI_Version(t *testing.T) {
	result := RunTypemap(t, "version")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "typemap v")
}

func TestCLI_AppState(t *testing.T) {
	result := RunTypemap(t, "appstate")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	assert.Contains(t, result.Stdout, "APPLICATION STATE")
	assert.Contains(t, result.Stdout, "alice@example.com")
	assert.Contains(t, result.Stdout, "bob@example.com")
	// The config module flipped the theme after initialization.
	assert.Contains(t, result.Stdout, "theme=dark")
	assert.Contains(t, result.Stdout, "total page views: 3")
}

func TestCLI_Services(t *testing.T) {
	result := RunTypemap(t, "services")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	assert.Contains(t, result.Stdout, "created user alice")
	assert.Contains(t, result.Stdout, "created user bob")
	assert.Contains(t, result.Stdout, "debug mode disabled")
	assert.Contains(t, result.Stdout, "debug: false")
	assert.Contains(t, result.Stdout, "database: localhost:5432/myapp")
	// Defaults apply when no config file is present.
	assert.Contains(t, result.Stdout, "app: sovran-demo")
	assert.Contains(t, result.Stdout, "max connections: 100")
}

func TestCLI_ServicesWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "typemap.yaml")
	content := "app:\n  name: configured-app\n  max_connections: 7\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	result := RunTypemap(t, "--config", configPath, "services")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	assert.Contains(t, result.Stdout, "app: configured-app")
	assert.Contains(t, result.Stdout, "max connections: 7")
}

func TestCLI_Animals(t *testing.T) {
	result := RunTypemap(t, "animals")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	assert.Contains(t, result.Stdout, "dog says: Woof!")
	assert.Contains(t, result.Stdout, "cat says: Meow!")
	assert.Contains(t, result.Stdout, "the dog is a Golden Retriever")
	assert.Contains(t, result.Stdout, "correctly refused to read the dog as a cat")
}

func TestCLI_Numbers(t *testing.T) {
	result := RunTypemap(t, "numbers")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	assert.Contains(t, result.Stdout, "value 1: 42")
	assert.Contains(t, result.Stdout, "value 2: 42")
	assert.Contains(t, result.Stdout, "updated value 1: 100")
	assert.Contains(t, result.Stdout, "removed value 1")
	assert.Contains(t, result.Stdout, "correctly detected the removed key")
	assert.Contains(t, result.Stdout, "store has 1 item(s), empty=false")
}

func TestCLI_UnknownCommand(t *testing.T) {
	result := RunTypemap(t, "bogus")
	assert.NotEqual(t, 0, result.ExitCode)
}
