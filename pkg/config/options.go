package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputDir sets the directory with spreadsheet exports.
func OptInputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Dir", s) {
			c.Input.Dir = s
		}
	}
}

// OptInputTaxaFile sets the file name of accepted taxa.
func OptInputTaxaFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Taxa File", s) {
			c.Input.TaxaFile = s
		}
	}
}

// OptInputSynonymsFile sets the file name of synonyms.
func OptInputSynonymsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Synonyms File", s) {
			c.Input.SynonymsFile = s
		}
	}
}

// OptInputVernacularsFile sets the file name of vernacular names.
func OptInputVernacularsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Vernaculars File", s) {
			c.Input.VernacularsFile = s
		}
	}
}

// OptInputReferencesFile sets the file name of literature references.
func OptInputReferencesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input References File", s) {
			c.Input.ReferencesFile = s
		}
	}
}

// OptOutputDir sets the directory for Darwin Core files.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Dir", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputMetricsFile sets the path of the metrics file.
func OptOutputMetricsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metrics File", s) {
			c.Output.MetricsFile = s
		}
	}
}

// OptOutputWithProgress enables or disables progress bars.
func OptOutputWithProgress(b bool) Option {
	return func(c *Config) {
		c.Output.WithProgress = b
	}
}

// OptDatasetShortName sets the prefix of taxon identifiers.
// Only lowercase letters, digits and dashes are allowed, because the
// short name becomes a part of every identifier.
func OptDatasetShortName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Short Name", s) &&
			isValidShortName("Dataset Short Name", s) {
			c.Dataset.ShortName = s
		}
	}
}

// OptDatasetName sets the title of the dataset.
func OptDatasetName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Name", s) {
			c.Dataset.Name = s
		}
	}
}

// OptDatasetID sets the persistent identifier of the dataset.
func OptDatasetID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset ID", s) {
			c.Dataset.ID = s
		}
	}
}

// OptDatasetLicense sets the license URI.
func OptDatasetLicense(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset License", s) {
			c.Dataset.License = s
		}
	}
}

// OptDatasetRightsHolder sets the owner of the data.
func OptDatasetRightsHolder(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Rights Holder", s) {
			c.Dataset.RightsHolder = s
		}
	}
}

// OptDatasetInstitutionCode sets the code of the publishing institution.
func OptDatasetInstitutionCode(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Institution Code", s) {
			c.Dataset.InstitutionCode = s
		}
	}
}

// OptDatasetLanguage sets the language of the metadata.
func OptDatasetLanguage(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidString("Dataset Language", s) {
			c.Dataset.Language = s
		}
	}
}

// OptProParte sets names of known pro-parte synonyms.
func OptProParte(ss []string) Option {
	var names []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			names = append(names, v)
		}
	}
	return func(c *Config) {
		if len(names) > 0 {
			c.ProParte = names
		}
	}
}

// OptVocabulariesFile sets a path to a file with controlled vocabularies.
func OptVocabulariesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Vocabularies File", s) {
			c.VocabulariesFile = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
