package kv

import "github.com/pkg/errors"

// ErrNotFound can be used directly, or wrapped, whenever a db method needs to
// indicate that a value couldn't be found.
var ErrNotFound = errors.New("not found in db")

var errBlobRetentionEpochMismatch = errors.New("epochs for blobs request value in DB does not match runtime config")
