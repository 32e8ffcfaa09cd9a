//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, so user settings never leak in
	WorkDir string // directory projects are created in
	PMLog   string // file the fake package manager appends its arguments to
	BinDir  string // holds the fake package manager, first on PATH
}

// setupTestEnv creates isolated temp directories and a fake package manager
// named pm that records every invocation instead of installing anything.
func setupTestEnv(t *testing.T, pm string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package manager is a shell script")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}
	env.PMLog = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PM_LOG", env.PMLog)
	t.Setenv("PATH", env.BinDir)

	writeScript(t, filepath.Join(env.BinDir, pm), "echo \"$@\" >> \"$PM_LOG\"\n")
	return env
}

// failingPackageManager replaces pm with one that fails for pkg.
func failingPackageManager(t *testing.T, env *testEnv, pm, pkg string) {
	t.Helper()
	writeScript(t, filepath.Join(env.BinDir, pm), `echo "$@" >> "$PM_LOG"
case "$*" in
  *`+pkg+`*) echo "ERR! 404 Not Found - `+pkg+`" >&2; exit 1 ;;
esac
`)
}

// calls returns the recorded package manager invocations.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.PMLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", e.PMLog, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// setupTemplates creates an on-disk template catalog and returns its root.
func setupTemplates(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "docs", "meta.json"),
		`{"position": 2, "title": "Docs", "description": "Documentation site", "enabled": true}`)
	writeFile(t, filepath.Join(root, "docs", "src", "routes", "+layout.svelte"), `<script>
	import '@brainandbones/skeleton/themes/theme-hamlindigo.css';
	import '@brainandbones/skeleton/styles/all.css';
	import '../app.postcss';
	import Nav from '$lib/Nav.svelte';
</script>

<Nav />
<slot />
`)
	writeFile(t, filepath.Join(root, "docs", "src", "lib", "Nav.svelte"), "<nav>docs</nav>\n")

	writeFile(t, filepath.Join(root, "shop", "meta.json"),
		`{"position": 1, "title": "Shop", "description": "Storefront", "enabled": true}`)
	writeFile(t, filepath.Join(root, "shop", "src", "routes", "+page.svelte"), "<h1>Shop</h1>\n")

	writeFile(t, filepath.Join(root, "draft", "meta.json"),
		`{"position": 0, "title": "Draft", "description": "Not ready", "enabled": false}`)

	return root
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotContains fails if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s should not contain %q", path, substr)
	}
}
