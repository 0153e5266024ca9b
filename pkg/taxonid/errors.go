package taxonid

import (
	"errors"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

// ErrEmptyName is wrapped by errors about empty scientific names.
var ErrEmptyName = errors.New("scientific name is empty")

// EmptyNameError creates an error for a record without a scientific name.
func EmptyNameError() error {
	msg := `Cannot create taxon identifier from an empty scientific name`

	return &gn.Error{
		Code: errcode.EmptyNameError,
		Msg:  msg,
		Err:  ErrEmptyName,
	}
}
