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
	"context"
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/internal/ioconvert"
	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/spf13/cobra"
)

// getConvertCmd returns the convert command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getConvertCmd() *cobra.Command {
	var (
		inputDir     string
		outputDir    string
		withProgress bool
	)

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert source spreadsheets to Darwin Core files",
		Long: `Create Darwin Core files from CSV exports of the registry.

This command:
  1. Loads controlled vocabularies (built-in or vocabularies_file)
  2. Reads taxa, synonyms, vernacular names and references
  3. Resolves synonyms and generates stable taxon identifiers
  4. Joins extensions to taxa and unpivots multi-value fields
  5. Writes taxon, extension files, meta.xml and anomalies.csv

Nothing is written if the data contains fatal errors, such as missing
required values or values absent from vocabularies. Problems that do not
stop the conversion are listed in anomalies.csv.

Examples:
  # Use directories from the config file
  gnmolluscs convert

  # Override input and output directories
  gnmolluscs convert -i data/raw -o data/processed

  # Show progress bars
  gnmolluscs convert --progress`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runConvert(cmd, inputDir, outputDir, withProgress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	convertCmd.Flags().StringVarP(
		&inputDir, "input", "i", "",
		"directory with source CSV files",
	)
	convertCmd.Flags().StringVarP(
		&outputDir, "output", "o", "",
		"directory for Darwin Core files",
	)
	convertCmd.Flags().BoolVarP(
		&withProgress, "progress", "p", false,
		"show progress bars",
	)

	return convertCmd
}

func runConvert(
	cmd *cobra.Command,
	inputDir, outputDir string,
	withProgress bool,
) error {
	var opts []config.Option
	if cmd.Flags().Changed("input") {
		opts = append(opts, config.OptInputDir(inputDir))
	}
	if cmd.Flags().Changed("output") {
		opts = append(opts, config.OptOutputDir(outputDir))
	}
	if cmd.Flags().Changed("progress") {
		opts = append(opts, config.OptOutputWithProgress(withProgress))
	}
	cfg.Update(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return ioconvert.New(cfg, nil).Convert(ctx)
}
