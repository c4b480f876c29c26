// Package config provides configuration file parsing for brewsight.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the brewsight config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/brewsight if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "brewsight"), nil
}

// Options holds the analysis knobs that are configuration rather than
// code: how missing consumption scores are imputed and what happens to
// rows whose gender is outside the retained enumeration.
type Options struct {
	// ImputeStrategy is "median" or "mean".
	ImputeStrategy string
	// ImputeScope is "cohort" (impute within the row's cohort, falling
	// back to the whole dataset) or "global".
	ImputeScope string
	// GenderPolicy is "exclude" (drop rows with other/missing gender)
	// or "mode" (assign the dataset's most common retained gender).
	GenderPolicy string
}

// Default returns the options used when no config file exists.
func Default() Options {
	return Options{
		ImputeStrategy: "median",
		ImputeScope:    "cohort",
		GenderPolicy:   "exclude",
	}
}

// Load reads the options file at {dir}/options and returns the parsed
// config merged over the defaults. If the file does not exist, the
// defaults are returned without an error. Blank lines and comments are
// skipped; unknown keys are ignored so older binaries tolerate newer
// files.
func Load(dir string) (Options, error) {
	opts := Default()

	path := filepath.Join(dir, "options")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		idx := strings.IndexByte(text, '=')
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(text[:idx])
		value := strings.TrimSpace(text[idx+1:])

		switch key {
		case "impute_strategy":
			opts.ImputeStrategy = value
		case "impute_scope":
			opts.ImputeScope = value
		case "gender_policy":
			opts.GenderPolicy = value
		}
	}
	if err := scanner.Err(); err != nil {
		return opts, err
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Validate checks every option against its allowed values.
func (o Options) Validate() error {
	switch o.ImputeStrategy {
	case "median", "mean":
	default:
		return fmt.Errorf("invalid impute_strategy %q (want median or mean)", o.ImputeStrategy)
	}
	switch o.ImputeScope {
	case "cohort", "global":
	default:
		return fmt.Errorf("invalid impute_scope %q (want cohort or global)", o.ImputeScope)
	}
	switch o.GenderPolicy {
	case "exclude", "mode":
	default:
		return fmt.Errorf("invalid gender_policy %q (want exclude or mode)", o.GenderPolicy)
	}
	return nil
}
