package leaveimport

import "errors"

var (
	ErrTooManyRows            = errors.New("Import exceeds the maximum of 1000 rows per batch")
	ErrNoDataRows             = errors.New("Import file has no data rows")
	ErrMissingRequiredHeaders = errors.New("Import file is missing required columns")
	ErrUnsupportedFileType    = errors.New("Unsupported import file type")
	ErrBatchNotFound          = errors.New("Import batch not found")
)
