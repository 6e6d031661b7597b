// Package errcode enumerates error codes used by d4s.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteDefaultFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Data errors
	DataLoadError
	SchemaError
	ObsValueError
	ReferenceError

	// Presentation errors
	ChartRenderError
	ExportError
	ServerError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBSchemaError
	PublishError
)
