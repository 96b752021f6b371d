//go:build e2e && unix

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestMain builds the tagbar binary once for every scenario. The binary is
// stamped with an e2e version so a stale build on PATH is never picked up.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tagbar-e2e-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagbar e2e: temp dir: %v\n", err)
		os.Exit(1)
	}
	binPath = filepath.Join(dir, "tagbar")

	build := exec.Command("go", "build",
		"-ldflags", "-X main.Version=e2e",
		"-o", binPath, ".")
	build.Dir = ".."
	build.Env = append(os.Environ(), "CGO_ENABLED=0")
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "tagbar e2e: build failed: %v\n%s", err, out)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}
