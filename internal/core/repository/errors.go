package repository

import "errors"

// ErrNotFound marks absence on a read path: the row does not exist or is
// soft-deleted. It is not a storage fault.
var ErrNotFound = errors.New("record not found")
