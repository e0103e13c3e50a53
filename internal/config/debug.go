package config

import (
	"os"
	"strconv"
)

// IsDebug reads PATTERNS_DEBUG directly so the bootstrap logger can honour it.
func IsDebug() bool {
	v, err := strconv.ParseBool(os.Getenv("PATTERNS_DEBUG"))
	return err == nil && v
}
