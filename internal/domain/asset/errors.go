package asset

import "errors"

var (
	// ErrAssetNotFound indicates the asset doesn't exist.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrInvalidStatus indicates a status value outside the known set.
	ErrInvalidStatus = errors.New("invalid asset status")
	// ErrFilenameRequired indicates an upload with no filename.
	ErrFilenameRequired = errors.New("asset filename required")
	// ErrOwnerOnly indicates an operation reserved for the project owner.
	ErrOwnerOnly = errors.New("only the project owner may do this")
)
