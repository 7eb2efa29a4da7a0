package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
)

// AppName names the tool's config directory.
const AppName = "mcp-config-glean"

// ConfigFileName is the name of the tool's config file.
const ConfigFileName = "config.yaml"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// ResolveHome returns the user's home directory.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "resolving home directory")
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding the tool's config file.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// Expand resolves a leading "~" and the %APPDATA% placeholder used by
// Windows client paths. Other paths are returned cleaned but otherwise
// unchanged.
func Expand(path string) (string, error) {
	switch {
	case path == "":
		return "", nil
	case path == "~" || strings.HasPrefix(path, "~/"):
		home, err := ResolveHome()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, filepath.FromSlash(strings.TrimPrefix(path, "~"))), nil
	case strings.HasPrefix(path, `%APPDATA%`):
		appData, err := appDataDir()
		if err != nil {
			return "", err
		}
		rest := strings.ReplaceAll(strings.TrimPrefix(path, `%APPDATA%`), `\`, "/")
		return filepath.Join(appData, filepath.FromSlash(rest)), nil
	default:
		return filepath.Clean(path), nil
	}
}

func appDataDir() (string, error) {
	if dir := os.Getenv("APPDATA"); dir != "" {
		return dir, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "AppData", "Roaming"), nil
}
