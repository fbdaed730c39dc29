package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "earthinspires"

	// AppTitle is the display name shown in the terminal UI header
	AppTitle = "Earth Inspires"

	// AppSubtitle is shown under the title
	AppSubtitle = "Satellite Explorer"

	// Version is the current release
	Version = "0.1.0"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the earthinspires data directory path.
// Linux: ~/.config/earthinspires (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\earthinspires (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// EnsureApplicationDirectory resolves dir (or the default directory when dir
// is empty) and creates it if missing.
func EnsureApplicationDirectory(dir string) (string, error) {
	if dir == "" {
		var err error

		dir, err = GetApplicationDirectory()
		if err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return dir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)

		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
