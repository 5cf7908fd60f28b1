package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Dir returns the runtime directory holding the desktop's control socket and
// session lock. Priority:
// 1) XDG_RUNTIME_DIR as resolved by xdg (defaults to /run/user/<uid>), if it
// exists
// 2) /tmp/xpdesk-runtime-<uid> (created)
func Dir() (string, error) {
	if dir := xdg.RuntimeDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	tmpDir := filepath.Join(os.TempDir(), fmt.Sprintf("xpdesk-runtime-%d", os.Getuid()))
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return tmpDir, nil
}

// SocketPath returns the desktop IPC socket path.
func SocketPath() (string, error) {
	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "xpdesk.sock"), nil
}

// LockPath returns the single-session lock file path.
func LockPath() (string, error) {
	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "xpdesk.lock"), nil
}
