package db

import "github.com/prysmaticlabs/blobnode/beacon-chain/db/iface"

// ReadOnlyDatabase exposes the node's block and blob data in a read-only manner.
type ReadOnlyDatabase = iface.ReadOnlyDatabase

// NoHeadAccessDatabase exposes block and blob data without head access.
type NoHeadAccessDatabase = iface.NoHeadAccessDatabase

// Database defines the necessary methods for the beacon node backend which may be implemented by any
// key-value or relational database in practice. This is the full database interface which should
// not be used often. Prefer a more restrictive interface in this package.
type Database = iface.Database
