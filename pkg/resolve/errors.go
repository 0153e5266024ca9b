package resolve

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

// MissingFieldError is returned when a required field is empty.
func MissingFieldError(table string, row int, field string) error {
	msg := "Row %d of <em>%s</em> has no value for <em>%s</em>"
	vars := []any{row, table, field}
	return &gn.Error{
		Code: errcode.MissingFieldError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("required field %s is empty in %s, row %d",
			field, table, row),
	}
}

// DuplicateTaxonIDError is returned when several taxa share an ID that
// cannot be explained by pro-parte synonyms.
func DuplicateTaxonIDError(ids []string) error {
	msg := `Found <em>%d</em> duplicate taxon IDs

<em>How to fix:</em>
  1. Remove repeated names from the taxa sheet
  2. Make sure no synonym repeats an accepted name`

	return &gn.Error{
		Code: errcode.DuplicateTaxonIDError,
		Msg:  msg,
		Vars: []any{len(ids)},
		Err:  fmt.Errorf("duplicate taxon IDs: %s", strings.Join(ids, ", ")),
	}
}
