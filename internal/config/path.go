// Package config resolves where the finance application's database lives.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the finance application's user-data directory name.
	AppName = "Financial Assistance App"
	// DatabaseFile is the database file name inside the user-data directory.
	DatabaseFile = "data.db"
	// PackagedDatabasePath is the database shipped with the application, relative to its root.
	PackagedDatabasePath = "assets/data.db"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// UserDataDatabasePath returns the database path the desktop application uses:
// $APPDATA/<AppName>/data.db, with the home directory standing in for APPDATA
// on systems that do not set it.
func UserDataDatabasePath() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			base = home
		}
	}
	return filepath.Join(base, AppName, DatabaseFile)
}

// ResolveDatabasePath picks the database to operate on. An explicit path wins,
// then the packaged database when requested, then the user-data database.
func ResolveDatabasePath(explicit string, packaged bool) string {
	if explicit != "" {
		return ExpandPath(explicit)
	}
	if packaged {
		return PackagedDatabasePath
	}
	return UserDataDatabasePath()
}
