package vocab

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnmolluscs/pkg/errcode"
)

// LoadError creates an error for malformed vocabularies.
func LoadError(err error) error {
	msg := `Cannot load controlled vocabularies

<em>How to fix:</em>
  1. Compare the vocabularies file with the built-in one
  2. Make sure every stage in precedence has a code`

	return &gn.Error{
		Code: errcode.VocabularyLoadError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot load vocabularies: %w", err),
	}
}

// VocabularyError creates an error for a value that is absent from a
// closed vocabulary.
func VocabularyError(kind, val string) error {
	msg := `Value <em>%s</em> is not in the %s vocabulary

<em>How to fix:</em>
  1. Correct the value in the source spreadsheet, or
  2. Add the value to the vocabularies file`

	return &gn.Error{
		Code: errcode.VocabularyError,
		Msg:  msg,
		Vars: []any{val, kind},
		Err:  fmt.Errorf("unknown %s value %q", kind, val),
	}
}
