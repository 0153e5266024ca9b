package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

// CreateDirError is returned when a config, log or output directory of
// gnmolluscs cannot be made.
func CreateDirError(dir string, err error) error {
	msg := `Cannot make gnmolluscs directory <em>%s</em>

<em>How to fix:</em>
  Check that the parent directory is writable`

	vars := []any{dir}
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("mkdir %s: %w", dir, err),
	}
}

func ConfigFileError(path string, err error) error {
	msg := "Cannot save default config.yaml to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ConfigFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("save config.yaml template: %w", err),
	}
}

// ReadFileError is returned for unreadable files named in config.yaml,
// such as vocabularies_file.
func ReadFileError(path string, err error) error {
	msg := `Cannot read <em>%s</em>

<em>How to fix:</em>
  Check the path in config.yaml or in GNMOLLUSCS_* variables`

	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read %s: %w", path, err),
	}
}
