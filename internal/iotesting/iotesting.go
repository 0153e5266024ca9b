// Package iotesting provides shared test utilities for I/O packages.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnmolluscs/pkg/config"
)

// Sources is a small registry export: two accepted species, a pro-parte
// synonym, one vernacular name that does not match any taxon and one
// reference.
var Sources = map[string]string{
	"taxa.csv": `scientific_name,family,native_range,introduction_pathway,degree_of_establishment,occurrence_status,first_observation,last_observation,realm
"Cernuella virgata (Da Costa, 1778)",Geomitridae,Europe | Africa,contaminant: nursery,C1 - C3,present,1850,,terrestrial
"Cernuella cisalpina (Rossmässler, 1837)",Geomitridae,Europe,,"D2, E",present,1990,2020,terrestrial
`,
	"synonyms.csv": `scientific_name,synonym_of,remarks
"Helix balteata Pollonera, 1892","Cernuella virgata (Da Costa, 1778)",
"Helix balteata Pollonera, 1892","Cernuella cisalpina (Rossmässler, 1837)",
`,
	"vernacular_names.csv": `scientific_name,vernacular_name,language
"Cernuella virgata (Da Costa, 1778)",Wegslak,Dutch
Cernuella virgata,Maritime garden snail,English
`,
	"references.csv": `scientific_name,identifier,bibliographic_citation
"Cernuella cisalpina (Rossmässler, 1837)",,Adam 1960
`,
}

// WriteSources writes files to dir, creating it if needed.
func WriteSources(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	for k, v := range files {
		path := filepath.Join(dir, k)
		if err := os.WriteFile(path, []byte(v), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}

// TempConfig returns a configuration with Sources written to a temporary
// input directory and an output directory that does not exist yet.
func TempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "raw")
	WriteSources(t, in, Sources)

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputDir(in),
		config.OptOutputDir(filepath.Join(dir, "processed")),
	})
	return cfg
}
