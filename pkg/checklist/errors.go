package checklist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

// ReferentialIntegrityError is returned when extension rows refer to
// taxa absent from the core.
func ReferentialIntegrityError(ids []string) error {
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))
	msg := "Extensions refer to <em>%d</em> unknown taxon IDs"
	return &gn.Error{
		Code: errcode.ReferentialIntegrityError,
		Msg:  msg,
		Vars: []any{len(ids)},
		Err:  fmt.Errorf("unknown taxon IDs: %s", strings.Join(ids, ", ")),
	}
}
