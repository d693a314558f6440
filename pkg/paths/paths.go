// Package paths provides centralized path handling for rulebook,
// implementing XDG Base Directory compliance for user-level rules, state,
// and logs.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppDirName is the directory name used under XDG base directories.
const AppDirName = "rulebook"

// LogFile returns the log file path under the XDG state directory.
func LogFile() (string, error) {
	return xdg.StateFile(filepath.Join(AppDirName, "rulebook.log"))
}

// UserRulesDir returns the user-level rules directory,
// $XDG_CONFIG_HOME/rulebook/rules. It is the fallback searched when the
// working directory has no rules of its own.
func UserRulesDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "rules")
}

// ExpandHome resolves a leading ~ in path against the current home
// directory. Paths without a leading ~ pass through unchanged.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// ResolveRulesDir picks the effective rules directory: dir itself when it
// exists, otherwise the user-level rules directory when that exists.
// Returns dir unchanged when neither exists, so the caller surfaces the
// load error against the configured location.
func ResolveRulesDir(dir string) string {
	dir = ExpandHome(dir)
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	if user := UserRulesDir(); dirExists(user) {
		return user
	}
	return dir
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
