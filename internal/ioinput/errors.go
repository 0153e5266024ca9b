package ioinput

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

func MissingColumnError(path, col string) error {
	msg := `File <em>%s</em> has no <em>%s</em> column

<em>How to fix:</em>
  1. Export the sheet with a header row
  2. Rename the column to <em>%s</em>`

	vars := []any{path, col, col}
	return &gn.Error{
		Code: errcode.MissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("column %s is missing in %s", col, path),
	}
}
