package ioconvert

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

func CancelledError(err error) error {
	msg := "Conversion was cancelled"

	return &gn.Error{
		Code: errcode.ConvertCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("conversion cancelled: %w", err),
	}
}
