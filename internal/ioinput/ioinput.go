// Package ioinput reads CSV exports of the registry spreadsheets.
//
// Columns are found by header names, so the order of columns does not
// matter and unknown columns are ignored. Header names are compared
// case-insensitively, spaces are treated as underscores.
package ioinput

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/gnmolluscs/pkg/checklist"
	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/gnames/gnmolluscs/pkg/raw"
)

// Column names of the source sheets.
const (
	colScientificName        = "scientific_name"
	colClass                 = "class"
	colOrder                 = "order"
	colFamily                = "family"
	colGenus                 = "genus"
	colNativeRange           = "native_range"
	colIntroductionPathway   = "introduction_pathway"
	colDegreeOfEstablishment = "degree_of_establishment"
	colOccurrenceStatus      = "occurrence_status"
	colFirstObservation      = "first_observation"
	colLastObservation       = "last_observation"
	colSourceDistribution    = "source_distribution"
	colRealm                 = "realm"
	colRemarks               = "remarks"
	colOccurrenceRemarks     = "occurrence_remarks"
	colSynonymOf             = "synonym_of"
	colVernacularName        = "vernacular_name"
	colLanguage              = "language"
	colIdentifier            = "identifier"
	colCitation              = "bibliographic_citation"
)

// Read loads all four source sheets from the input directory.
func Read(cfg *config.Config) (checklist.Input, error) {
	var res checklist.Input
	var err error

	if res.Taxa, err = ReadTaxa(cfg.InputPath(cfg.Input.TaxaFile)); err != nil {
		return res, err
	}
	path := cfg.InputPath(cfg.Input.SynonymsFile)
	if res.Synonyms, err = ReadSynonyms(path); err != nil {
		return res, err
	}
	path = cfg.InputPath(cfg.Input.VernacularsFile)
	if res.Vernaculars, err = ReadVernaculars(path); err != nil {
		return res, err
	}
	path = cfg.InputPath(cfg.Input.ReferencesFile)
	if res.References, err = ReadReferences(path); err != nil {
		return res, err
	}
	return res, nil
}

// ReadTaxa reads accepted taxa.
func ReadTaxa(path string) ([]raw.Taxon, error) {
	sh, err := readSheet(path, colScientificName, colFirstObservation)
	if err != nil {
		return nil, err
	}
	res := make([]raw.Taxon, len(sh.rows))
	for i, r := range sh.rows {
		res[i] = raw.Taxon{
			Row:                   sh.lines[i],
			ScientificName:        sh.get(r, colScientificName),
			Class:                 sh.get(r, colClass),
			Order:                 sh.get(r, colOrder),
			Family:                sh.get(r, colFamily),
			Genus:                 sh.get(r, colGenus),
			NativeRange:           sh.get(r, colNativeRange),
			IntroductionPathway:   sh.get(r, colIntroductionPathway),
			DegreeOfEstablishment: sh.get(r, colDegreeOfEstablishment),
			OccurrenceStatus:      sh.get(r, colOccurrenceStatus),
			FirstObservation:      sh.get(r, colFirstObservation),
			LastObservation:       sh.get(r, colLastObservation),
			SourceDistribution:    sh.get(r, colSourceDistribution),
			Realm:                 sh.get(r, colRealm),
			Remarks:               sh.get(r, colRemarks),
			OccurrenceRemarks:     sh.get(r, colOccurrenceRemarks),
		}
	}
	return res, nil
}

// ReadSynonyms reads synonyms.
func ReadSynonyms(path string) ([]raw.Synonym, error) {
	sh, err := readSheet(path, colScientificName, colSynonymOf)
	if err != nil {
		return nil, err
	}
	res := make([]raw.Synonym, len(sh.rows))
	for i, r := range sh.rows {
		res[i] = raw.Synonym{
			Row:            sh.lines[i],
			ScientificName: sh.get(r, colScientificName),
			SynonymOf:      sh.get(r, colSynonymOf),
			Remarks:        sh.get(r, colRemarks),
		}
	}
	return res, nil
}

// ReadVernaculars reads vernacular names.
func ReadVernaculars(path string) ([]raw.Vernacular, error) {
	sh, err := readSheet(
		path, colScientificName, colVernacularName, colLanguage,
	)
	if err != nil {
		return nil, err
	}
	res := make([]raw.Vernacular, len(sh.rows))
	for i, r := range sh.rows {
		res[i] = raw.Vernacular{
			Row:            sh.lines[i],
			ScientificName: sh.get(r, colScientificName),
			VernacularName: sh.get(r, colVernacularName),
			Language:       sh.get(r, colLanguage),
		}
	}
	return res, nil
}

// ReadReferences reads literature references.
func ReadReferences(path string) ([]raw.Reference, error) {
	sh, err := readSheet(path, colScientificName, colCitation)
	if err != nil {
		return nil, err
	}
	res := make([]raw.Reference, len(sh.rows))
	for i, r := range sh.rows {
		res[i] = raw.Reference{
			Row:            sh.lines[i],
			ScientificName: sh.get(r, colScientificName),
			Identifier:     sh.get(r, colIdentifier),
			Citation:       sh.get(r, colCitation),
		}
	}
	return res, nil
}

// sheet is a parsed CSV file with columns indexed by normalized header
// names.
type sheet struct {
	cols map[string]int
	rows [][]string
	// lines are line numbers of rows in the file.
	lines []int
}

func readSheet(path string, required ...string) (*sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, MissingColumnError(path, required[0])
	}
	if err != nil {
		return nil, ReadFileError(path, err)
	}

	res := sheet{cols: make(map[string]int, len(header))}
	for i, v := range header {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		k := columnKey(v)
		if _, ok := res.cols[k]; !ok {
			res.cols[k] = i
		}
	}
	for _, v := range required {
		if _, ok := res.cols[v]; !ok {
			return nil, MissingColumnError(path, v)
		}
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadFileError(path, err)
		}
		if isBlank(row) {
			continue
		}
		line, _ := r.FieldPos(0)
		res.rows = append(res.rows, row)
		res.lines = append(res.lines, line)
	}
	slog.Debug("Read source file", "path", path, "rows", len(res.rows))
	return &res, nil
}

func (s *sheet) get(row []string, col string) string {
	i, ok := s.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(gnlib.FixUtf8(row[i]))
}

func columnKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
