package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"datefmt"
)

// defaultPattern is used when neither the flag nor a manifest names one.
const defaultPattern = "yyyy-mm-dd"

type manifestConfig struct {
	Format formatConfig `toml:"format"`
}

type formatConfig struct {
	Pattern string `toml:"pattern"`
}

// findDatefmtToml walks up from startDir looking for a datefmt.toml.
func findDatefmtToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "datefmt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(path string) (manifestConfig, error) {
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// resolvePattern picks the pattern to format with: the explicit flag value,
// then a datefmt.toml discovered from startDir, then the built-in default.
// A manifest pattern is validated here so the error names the file.
func resolvePattern(flagValue, startDir string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	path, ok, err := findDatefmtToml(startDir)
	if err != nil {
		return "", err
	}
	if ok {
		cfg, err := loadManifest(path)
		if err != nil {
			return "", err
		}
		if cfg.Format.Pattern != "" {
			if _, err := datefmt.ParsePattern(cfg.Format.Pattern); err != nil {
				return "", fmt.Errorf("%s: %w", path, err)
			}
			return cfg.Format.Pattern, nil
		}
	}
	return defaultPattern, nil
}
