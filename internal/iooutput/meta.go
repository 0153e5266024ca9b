package iooutput

import (
	"encoding/xml"
	"os"

	"github.com/gnames/gnmolluscs/pkg/dwc"
)

const textNS = "http://rs.tdwg.org/dwc/text/"

type archive struct {
	XMLName    xml.Name   `xml:"archive"`
	XMLNS      string     `xml:"xmlns,attr"`
	Core       fileDesc   `xml:"core"`
	Extensions []fileDesc `xml:"extension"`
}

type fileDesc struct {
	Encoding          string  `xml:"encoding,attr"`
	FieldsTerminated  string  `xml:"fieldsTerminatedBy,attr"`
	LinesTerminated   string  `xml:"linesTerminatedBy,attr"`
	FieldsEnclosed    string  `xml:"fieldsEnclosedBy,attr"`
	IgnoreHeaderLines int     `xml:"ignoreHeaderLines,attr"`
	RowType           string  `xml:"rowType,attr"`
	Location          string  `xml:"files>location"`
	ID                *index  `xml:"id,omitempty"`
	CoreID            *index  `xml:"coreid,omitempty"`
	Fields            []field `xml:"field"`
}

type index struct {
	Index int `xml:"index,attr"`
}

type field struct {
	Index int    `xml:"index,attr"`
	Term  string `xml:"term,attr"`
}

func newFileDesc(t dwc.Table) fileDesc {
	res := fileDesc{
		Encoding:          "UTF-8",
		FieldsTerminated:  ",",
		LinesTerminated:   `\n`,
		FieldsEnclosed:    `"`,
		IgnoreHeaderLines: 1,
		RowType:           t.RowType,
		Location:          FileName(t),
	}
	// the ID column is always first
	if t.IsCore() {
		res.ID = &index{}
	} else {
		res.CoreID = &index{}
	}
	for i, v := range t.Terms {
		res.Fields = append(res.Fields, field{Index: i, Term: v.URI})
	}
	return res
}

// Meta creates meta.xml content for all tables.
func Meta() ([]byte, error) {
	arc := archive{XMLNS: textNS}
	for _, t := range dwc.Tables() {
		if t.IsCore() {
			arc.Core = newFileDesc(t)
			continue
		}
		arc.Extensions = append(arc.Extensions, newFileDesc(t))
	}
	res, err := xml.MarshalIndent(arc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), res...), nil
}

// WriteMeta saves meta.xml to the path.
func WriteMeta(path string) error {
	data, err := Meta()
	if err != nil {
		return WriteFileError(path, err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
