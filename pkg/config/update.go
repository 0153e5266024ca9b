package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string

	strOpts := []struct {
		val string
		fn  func(string) Option
	}{
		{c.Input.Dir, OptInputDir},
		{c.Input.TaxaFile, OptInputTaxaFile},
		{c.Input.SynonymsFile, OptInputSynonymsFile},
		{c.Input.VernacularsFile, OptInputVernacularsFile},
		{c.Input.ReferencesFile, OptInputReferencesFile},
		{c.Output.Dir, OptOutputDir},
		{c.Output.MetricsFile, OptOutputMetricsFile},
		{c.Dataset.ShortName, OptDatasetShortName},
		{c.Dataset.Name, OptDatasetName},
		{c.Dataset.ID, OptDatasetID},
		{c.Dataset.License, OptDatasetLicense},
		{c.Dataset.RightsHolder, OptDatasetRightsHolder},
		{c.Dataset.InstitutionCode, OptDatasetInstitutionCode},
		{c.Dataset.Language, OptDatasetLanguage},
		{c.VocabulariesFile, OptVocabulariesFile},
	}
	for _, v := range strOpts {
		if v.val != "" {
			res = append(res, v.fn(v.val))
		}
	}

	if c.Output.WithProgress {
		res = append(res, OptOutputWithProgress(true))
	}

	if len(c.ProParte) > 0 {
		res = append(res, OptProParte(c.ProParte))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidShortName(name, s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			gn.Warn(
				"<em>%s</em> '%s' may contain only lowercase letters, "+
					"digits, '-' and '_', ignoring", name, s,
			)
			return false
		}
	}
	return true
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
