package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ConfigFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	MissingColumnError
	MissingFieldError
	EmptyNameError

	// Vocabulary errors
	VocabularyLoadError
	VocabularyError

	// Resolution errors
	DuplicateTaxonIDError
	ReferentialIntegrityError

	// Convert errors
	ConvertCancelledError
)
