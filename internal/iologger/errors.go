package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

<em>How to fix:</em>
  Set <em>log.destination</em> to stderr in config.yaml
  or make the log directory writable`

	vars := []any{path}
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("open %s for logging: %w", path, err),
	}
}
