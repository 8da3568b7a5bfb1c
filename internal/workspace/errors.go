package workspace

import "errors"

// ErrNoActiveAsset indicates a viewer operation with no asset open.
var ErrNoActiveAsset = errors.New("no asset open in viewer")
