package config

import (
	"os"
	"path/filepath"
)

const runtimePathEnv = "PATTERNS_RUNTIME_PATH"

// GetRuntimePath is available before the config is parsed, so the runtime
// .env file can be located.
func GetRuntimePath() string {
	path := os.Getenv(runtimePathEnv)
	if path == "" {
		path = ".patterns"
	}
	return ResolveRuntimePath(path)
}

// ResolveRuntimePath anchors relative paths in the user's home directory.
func ResolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func GetEnvFilePath() string {
	return filepath.Join(GetRuntimePath(), ".env")
}
