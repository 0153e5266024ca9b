/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/internal/iofs"
	"github.com/gnames/gnmolluscs/internal/iologger"
	app "github.com/gnames/gnmolluscs/pkg"
	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg *config.Config

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnmolluscs",
		Short:   "GNmolluscs publishes the checklist of alien molluscs of Belgium",
		Long: `GNmolluscs converts spreadsheets of the registry of introduced
terrestrial molluscs in Belgium into a Darwin Core Archive: Taxon core with
Vernacular Names, Species Profile, Distribution, Literature References and
Description extensions.

Configuration precedence (highest to lowest):
  1. CLI flags (--input, --output, etc.)
  2. Environment variables (GNMOLLUSCS_*)
  3. Config file (~/.config/gnmolluscs/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (output.dir -> GNMOLLUSCS_OUTPUT_DIR).

  Examples:
    GNMOLLUSCS_INPUT_DIR            Directory with source CSV files
    GNMOLLUSCS_OUTPUT_DIR           Directory for Darwin Core files
    GNMOLLUSCS_DATASET_SHORT_NAME   Prefix of taxon identifiers
    GNMOLLUSCS_LOG_LEVEL            Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnmolluscs version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnmolluscs")

	rootCmd.AddCommand(getConvertCmd())
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound manually, so it is clear which of them
	// are allowed. They match the fields of config.ToOptions().
	v.SetEnvPrefix("GNMOLLUSCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.dir", "GNMOLLUSCS_INPUT_DIR")
	v.BindEnv("input.taxa_file", "GNMOLLUSCS_INPUT_TAXA_FILE")
	v.BindEnv("input.synonyms_file", "GNMOLLUSCS_INPUT_SYNONYMS_FILE")
	v.BindEnv("input.vernaculars_file", "GNMOLLUSCS_INPUT_VERNACULARS_FILE")
	v.BindEnv("input.references_file", "GNMOLLUSCS_INPUT_REFERENCES_FILE")

	// Output configuration
	v.BindEnv("output.dir", "GNMOLLUSCS_OUTPUT_DIR")
	v.BindEnv("output.with_progress", "GNMOLLUSCS_OUTPUT_WITH_PROGRESS")
	v.BindEnv("output.metrics_file", "GNMOLLUSCS_OUTPUT_METRICS_FILE")

	// Dataset configuration
	v.BindEnv("dataset.short_name", "GNMOLLUSCS_DATASET_SHORT_NAME")
	v.BindEnv("dataset.name", "GNMOLLUSCS_DATASET_NAME")
	v.BindEnv("dataset.id", "GNMOLLUSCS_DATASET_ID")
	v.BindEnv("dataset.license", "GNMOLLUSCS_DATASET_LICENSE")
	v.BindEnv("dataset.rights_holder", "GNMOLLUSCS_DATASET_RIGHTS_HOLDER")
	v.BindEnv("dataset.institution_code", "GNMOLLUSCS_DATASET_INSTITUTION_CODE")
	v.BindEnv("dataset.language", "GNMOLLUSCS_DATASET_LANGUAGE")

	// Log configuration
	v.BindEnv("log.level", "GNMOLLUSCS_LOG_LEVEL")
	v.BindEnv("log.format", "GNMOLLUSCS_LOG_FORMAT")
	v.BindEnv("log.destination", "GNMOLLUSCS_LOG_DESTINATION")

	// General configuration
	v.BindEnv("vocabularies_file", "GNMOLLUSCS_VOCABULARIES_FILE")

	v.AutomaticEnv()
}
