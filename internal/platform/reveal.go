package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// RevealDirectory opens dir in the system file manager
func RevealDirectory(dir string) error {
	if !IsDir(dir) {
		return fmt.Errorf("directory does not exist: %s", dir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := revealCommand(runtime.GOOS, absPath, exec.LookPath)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// revealCommand picks the command that opens dir on goos.
// lookPath is consulted on Linux to find an installed file manager.
func revealCommand(goos, dir string, lookPath func(string) (string, error)) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{dir}, nil
	case OSWindows:
		return ExplorerCommand, []string{dir}, nil
	case OSLinux:
		if _, err := lookPath(XDGOpenCommand); err == nil {
			return XDGOpenCommand, []string{dir}, nil
		}
		for _, fm := range LinuxFileManagers {
			if _, err := lookPath(fm); err == nil {
				return fm, []string{dir}, nil
			}
		}
		return "", nil, fmt.Errorf("no suitable file manager found")
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
