package iometrics

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

func WriteFileError(path string, err error) error {
	msg := "Cannot save metrics to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write metrics %s: %w", path, err),
	}
}
