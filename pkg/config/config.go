// Package config provides configuration management for GNmolluscs.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: dir, taxa_file, synonyms_file, vernaculars_file, references_file
//   - Output: dir, with_progress, metrics_file
//   - Dataset: short_name, name, id, license, rights_holder,
//     institution_code, language
//   - Log: level, format, destination
//   - General: pro_parte, vocabularies_file
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNMOLLUSCS_ prefix with underscores for nesting:
//
//	GNMOLLUSCS_INPUT_DIR=./data/raw
//	GNMOLLUSCS_OUTPUT_DIR=./data/processed
//	GNMOLLUSCS_LOG_LEVEL=info
package config

// Config represents the complete GNmolluscs configuration.
type Config struct {
	// Input describes where the spreadsheet exports are located.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Output describes where Darwin Core files are written.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Dataset keeps metadata that is copied to every taxon record.
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// ProParte lists synonym names that are known to be split between
	// several accepted taxa. Names that occur more than once in the synonyms
	// sheet are detected automatically, this list is for cases that are
	// documented elsewhere.
	ProParte []string `mapstructure:"pro_parte" yaml:"pro_parte"`

	// VocabulariesFile is an optional path to a YAML file that replaces
	// the built-in controlled vocabularies.
	VocabulariesFile string `mapstructure:"vocabularies_file" yaml:"vocabularies_file"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// InputConfig contains locations of the source spreadsheets exported as
// CSV files.
type InputConfig struct {
	// Dir is the directory with the source files.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// TaxaFile contains accepted taxa, one row per species.
	TaxaFile string `mapstructure:"taxa_file" yaml:"taxa_file"`

	// SynonymsFile contains synonyms with the names they resolve to.
	SynonymsFile string `mapstructure:"synonyms_file" yaml:"synonyms_file"`

	// VernacularsFile contains vernacular names of accepted taxa.
	VernacularsFile string `mapstructure:"vernaculars_file" yaml:"vernaculars_file"`

	// ReferencesFile contains literature references of accepted taxa.
	ReferencesFile string `mapstructure:"references_file" yaml:"references_file"`
}

// OutputConfig contains settings for the generated Darwin Core files.
type OutputConfig struct {
	// Dir is the directory where output files are created.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// WithProgress shows progress bars while files are written.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// MetricsFile is an optional path for conversion statistics in
	// Prometheus text format, for example for node_exporter textfile
	// collector. Metrics are not saved if it is empty.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// DatasetConfig provides constant metadata of the checklist.
type DatasetConfig struct {
	// ShortName is used as a prefix for taxon identifiers. Changing it
	// changes every identifier of the dataset.
	ShortName string `mapstructure:"short_name" yaml:"short_name"`

	// Name is the title of the dataset.
	Name string `mapstructure:"name" yaml:"name"`

	// ID is a persistent identifier of the dataset (usually a DOI).
	ID string `mapstructure:"id" yaml:"id"`

	// License is the URI of the license.
	License string `mapstructure:"license" yaml:"license"`

	// RightsHolder is the organization owning the data.
	RightsHolder string `mapstructure:"rights_holder" yaml:"rights_holder"`

	// InstitutionCode is the acronym of the publishing institution.
	InstitutionCode string `mapstructure:"institution_code" yaml:"institution_code"`

	// Language is a two-letter code of the language of the metadata.
	Language string `mapstructure:"language" yaml:"language"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			Dir:             "data/raw",
			TaxaFile:        "taxa.csv",
			SynonymsFile:    "synonyms.csv",
			VernacularsFile: "vernacular_names.csv",
			ReferencesFile:  "references.csv",
		},
		Output: OutputConfig{
			Dir: "data/processed",
		},
		Dataset: DatasetConfig{
			ShortName:       "alien-molluscs-checklist",
			Name:            "Checklist of non-native molluscs in Belgium",
			License:         "http://creativecommons.org/publicdomain/zero/1.0/",
			RightsHolder:    "RBINS",
			InstitutionCode: "RBINS",
			Language:        "en",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
