package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Static content errors
	DataFormatError
	UnknownCategoryError
	ReferentialIntegrityError

	// Schema errors
	SchemaBuildError
	SchemaCreateError
	SchemaMigrateError

	// Save-file errors
	NoSaveGameError
	InvalidSaveGameError
	SavePopulateError
	SaveQueryError

	// Trade errors
	CapacityExceededError
	InsufficientCargoError
	InsufficientFundsError
	UnknownLocationError
	UnknownCommodityError
	UnknownShipError
	NoWarehouseError
)

// Of extracts the error code from an error created by this
// module. Returns UnknownError for foreign errors and nil.
func Of(err error) gn.ErrorCode {
	if err == nil {
		return UnknownError
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code
	}
	return UnknownError
}
