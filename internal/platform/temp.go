package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TempDirPrefix marks session temp directories created by this program
const TempDirPrefix = "ytdlui-"

// NewSessionTempDir creates the temp directory yt-dlp works in for this session
func NewSessionTempDir() (string, error) {
	dir, err := os.MkdirTemp("", TempDirPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	return dir, nil
}

// CleanupTemp removes a temp directory left by a previous session. Paths that
// were not created by NewSessionTempDir are left alone.
func CleanupTemp(dir string) error {
	if dir == "" {
		return nil
	}
	if !strings.HasPrefix(filepath.Base(dir), TempDirPrefix) {
		return fmt.Errorf("refusing to remove foreign directory: %s", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove temp directory %s: %w", dir, err)
	}
	return nil
}
