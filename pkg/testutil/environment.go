// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate tests from the user's config, state and environment

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment is a temp directory tree standing in for the user's XDG
// directories
type TestEnvironment struct {
	Root       string
	ConfigHome string
	StateHome  string
	ScriptsDir string

	t *testing.T
}

// NewTestEnvironment points XDG_CONFIG_HOME and XDG_STATE_HOME into a temp
// dir, turns the log file off and clears inherited DECKSCRIPT_ variables.
// It uses t.Setenv, so the test must not be parallel.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		ScriptsDir: filepath.Join(root, "scripts"),
		t:          t,
	}
	for _, dir := range []string{env.ConfigHome, env.StateHome, env.ScriptsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	for _, kv := range os.Environ() {
		if key, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(key, "DECKSCRIPT_") {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("DECKSCRIPT_LOGGING_FILE", "false")

	return env
}

// WriteScript stores a script under ScriptsDir and returns its path
func (e *TestEnvironment) WriteScript(name, content string) string {
	e.t.Helper()
	return e.write(filepath.Join(e.ScriptsDir, name), content)
}

// WriteUserConfig stores name (config.toml, config.yaml) in the deckscript
// user config dir, where config.Load finds it without --config
func (e *TestEnvironment) WriteUserConfig(name, content string) string {
	e.t.Helper()
	return e.write(filepath.Join(e.ConfigHome, "deckscript", name), content)
}

// WriteFile stores a file relative to Root
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.t.Helper()
	return e.write(filepath.Join(e.Root, name), content)
}

// LogFile is where logging would write if the file were enabled
func (e *TestEnvironment) LogFile() string {
	return filepath.Join(e.StateHome, "deckscript", "deckscript.log")
}

func (e *TestEnvironment) write(path, content string) string {
	e.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
