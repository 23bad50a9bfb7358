// SPDX-License-Identifier: MIT

// Package config loads classbreak settings from a .env file and the
// environment. Command-line flags override what is loaded here.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/classbreak/breaks"
	"github.com/katalvlaran/classbreak/classify"
)

// Config holds all classbreak configuration.
type Config struct {
	Method     string
	Categories int
	Factor     float64
	Band       int
	NoData     float64
	LogLevel   string
}

// Load reads the optional .env files (default ".env") and then environment
// variables with defaults. Missing files are ignored; variables already set
// in the environment win over the file.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
	return Config{
		Method:     getenv("CLASSBREAK_METHOD", "equidistant"),
		Categories: getenvInt("CLASSBREAK_CATEGORIES", breaks.DefaultCategories),
		Factor:     getenvFloat("CLASSBREAK_FACTOR", breaks.DefaultFactor),
		Band:       getenvInt("CLASSBREAK_BAND", 1),
		NoData:     getenvFloat("CLASSBREAK_NODATA", classify.DefaultNoData),
		LogLevel:   getenv("CLASSBREAK_LOG_LEVEL", "info"),
	}
}

// ResolveMethod resolves the configured method name and parameters.
func (c Config) ResolveMethod() (breaks.Method, error) {
	return breaks.ParseMethod(c.Method, c.Categories, c.Factor)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
