// Package config provides environment-variable lookup with defaults for the
// command-line entry points. Values come from the process environment,
// optionally populated from a .env file by the caller.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Get returns the value of the environment variable key, or fallback when
// it is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the integer value of the environment variable key, or
// fallback when it is unset, empty, or not an integer.
func GetInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetFloat returns the float value of the environment variable key, or
// fallback when it is unset, empty, or not a number.
func GetFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// GetBool returns the boolean value of the environment variable key, or
// fallback when it is unset, empty, or not parseable as a boolean.
func GetBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
