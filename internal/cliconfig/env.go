// Package cliconfig resolves CLI defaults from the environment.
//
// Flags always win. Environment values only seed flag defaults and
// fallbacks, so `fairy person` picks up FAIRY_LOCALE while
// `fairy person -l de` ignores it.
package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvLocale     = "FAIRY_LOCALE"
	EnvDataDir    = "FAIRY_DATA_DIR"
	EnvFilePrefix = "FAIRY_FILE_PREFIX"
	EnvSeed       = "FAIRY_SEED"
	EnvVerbose    = "FAIRY_VERBOSE"
)

// Locale returns the locale from the environment, or fallback when unset.
func Locale(fallback string) string {
	if v := os.Getenv(EnvLocale); v != "" {
		return v
	}
	return fallback
}

// DataDir returns the data directory from the environment.
// Returns empty string if not set.
func DataDir() string {
	return os.Getenv(EnvDataDir)
}

// FilePrefix returns the data file prefix from the environment, or
// fallback when unset.
func FilePrefix(fallback string) string {
	if v := os.Getenv(EnvFilePrefix); v != "" {
		return v
	}
	return fallback
}

// Seed returns the seed from the environment. The second return is
// false when the variable is unset or not an unsigned integer.
func Seed() (uint64, bool) {
	v := os.Getenv(EnvSeed)
	if v == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

// Verbose reports whether verbose output is enabled via the environment.
func Verbose() bool {
	v := os.Getenv(EnvVerbose)
	return v == "true" || v == "1" || v == "yes"
}
