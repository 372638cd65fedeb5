package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Characters that are not allowed in directory names on common filesystems
const illegalDirChars = `\/:*?"<>|`

// CreateDirectoryIfNotExists creates directory if it doesn't exist.
// An existing non-directory at dirPath is an error.
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists and is not a directory: %s", dirPath)
	}
	return nil
}

// IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if runtime.GOOS == OSAndroid || os.Getenv("ANDROID_DATA") != "" {
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// ExecutableDir returns the directory containing the running binary
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Dir(os.Args[0])
	}
	return filepath.Dir(exe)
}

// ResolveOutputDir returns dir when it is an existing directory and the
// executable's directory otherwise.
func ResolveOutputDir(dir string) string {
	if IsDir(dir) {
		return dir
	}
	return ExecutableDir()
}

// SanitizeDirName strips characters that cannot appear in a directory name
func SanitizeDirName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalDirChars, r) {
			return -1
		}
		return r
	}, name)
}
