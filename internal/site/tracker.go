package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TrackerPackage is the browser half of the category pages, compiled to
// WebAssembly. app.js loads it from the static assets.
const TrackerPackage = "github.com/jayshree-infra/website/cmd/scrollspy"

// Tracker asset names under the assets directory.
const (
	TrackerWasm   = "scrollspy.wasm"
	TrackerLoader = "wasm_exec.js"
)

// ErrNoToolchain is returned by BuildTracker when no Go toolchain is on PATH.
var ErrNoToolchain = errors.New("go toolchain not found")

// HasTracker reports whether dir holds both tracker assets.
func HasTracker(dir string) bool {
	for _, name := range []string{TrackerWasm, TrackerLoader} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.Size() == 0 {
			return false
		}
	}
	return true
}

// BuildTracker compiles TrackerPackage for js/wasm into dir and copies the
// toolchain's matching wasm_exec.js next to it. It needs the go command and
// must run inside a checkout of this module.
func BuildTracker(ctx context.Context, dir string) error {
	goBin, err := exec.LookPath("go")
	if err != nil {
		return ErrNoToolchain
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	out, err := filepath.Abs(filepath.Join(dir, TrackerWasm))
	if err != nil {
		return err
	}

	goroot, err := exec.CommandContext(ctx, goBin, "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("locating GOROOT: %w", err)
	}
	if err := copyLoader(strings.TrimSpace(string(goroot)), filepath.Join(dir, TrackerLoader)); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, goBin, "build", "-o", out, TrackerPackage)
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("compiling %s: %w\n%s", TrackerPackage, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// copyLoader copies wasm_exec.js out of goroot. Go 1.24 moved it from
// misc/wasm to lib/wasm.
func copyLoader(goroot, dst string) error {
	for _, sub := range []string{"lib/wasm", "misc/wasm"} {
		data, err := os.ReadFile(filepath.Join(goroot, sub, TrackerLoader))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	}
	return fmt.Errorf("%s not found under %s", TrackerLoader, goroot)
}
