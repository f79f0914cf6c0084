// Package kv defines a bolt-db, key-value store implementation
// of the Database interface defined by a beacon node.
package kv

import (
	"context"
	"os"
	"path"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prysmaticlabs/blobnode/config/params"
	"github.com/prysmaticlabs/blobnode/consensus-types/primitives"
	"github.com/prysmaticlabs/blobnode/encoding/bytesutil"
	"github.com/prysmaticlabs/prombbolt"
	bolt "go.etcd.io/bbolt"
)

const (
	// BeaconNodeDbDirName is the name of the directory containing the beacon node database.
	BeaconNodeDbDirName = "beaconchaindata"
	// DatabaseFileName is the name of the beacon node database.
	DatabaseFileName = "beaconchain.db"

	boltAllocSize = 8 * 1024 * 1024
)

// BlockCacheSize specifies 1000 slots worth of blocks cached.
var BlockCacheSize = 1000

// Store defines an implementation of the beacon node Database interface
// using BoltDB as the underlying persistent kv-store.
type Store struct {
	db                  *bolt.DB
	databasePath        string
	blockCache          *lru.Cache
	blobRetentionEpochs primitives.Epoch
}

// NewKVStore initializes a new boltDB key-value store at the directory
// path specified, creates the kv-buckets based on the schema, and stores
// an open connection db object as a property of the Store struct.
func NewKVStore(ctx context.Context, dirPath string) (*Store, error) {
	hasDir, err := hasDir(dirPath)
	if err != nil {
		return nil, err
	}
	if !hasDir {
		if err := os.MkdirAll(dirPath, 0700); err != nil {
			return nil, err
		}
	}
	datafile := path.Join(dirPath, DatabaseFileName)
	boltDB, err := bolt.Open(
		datafile,
		0600,
		&bolt.Options{
			Timeout:         1 * time.Second,
			InitialMmapSize: 10e6,
		},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errors.New("cannot obtain database lock, database may be in use by another process")
		}
		return nil, err
	}
	boltDB.AllocSize = boltAllocSize

	blockCache, err := lru.New(BlockCacheSize)
	if err != nil {
		closeOnError(boltDB)
		return nil, err
	}

	kv := &Store{
		db:                  boltDB,
		databasePath:        dirPath,
		blockCache:          blockCache,
		blobRetentionEpochs: params.BeaconConfig().MinEpochsForBlobsSidecarsRequest,
	}

	if err := kv.db.Update(func(tx *bolt.Tx) error {
		return createBuckets(
			tx,
			blocksBucket,
			blobSidecarsBucket,
			unreconciledRootsBucket,
			chainMetadataBucket,
		)
	}); err != nil {
		closeOnError(boltDB)
		return nil, err
	}
	if err := kv.checkEpochsForBlobSidecarsRequestBucket(kv.db); err != nil {
		closeOnError(boltDB)
		return nil, err
	}

	if err := prometheus.Register(createBoltCollector(kv.db)); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			closeOnError(boltDB)
			return nil, err
		}
	}
	log.WithField("path", datafile).Debug("Opened beacon node database")
	return kv, nil
}

// ClearDB removes the previously stored database in the data directory.
func (s *Store) ClearDB() error {
	if _, err := os.Stat(s.databasePath); os.IsNotExist(err) {
		return nil
	}
	prometheus.Unregister(createBoltCollector(s.db))
	if err := os.Remove(path.Join(s.databasePath, DatabaseFileName)); err != nil {
		return errors.Wrap(err, "could not remove database file")
	}
	return nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	prometheus.Unregister(createBoltCollector(s.db))
	return s.db.Close()
}

// DatabasePath at which this database writes files.
func (s *Store) DatabasePath() string {
	return s.databasePath
}

func createBuckets(tx *bolt.Tx, buckets ...[]byte) error {
	for _, bucket := range buckets {
		if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
			return err
		}
	}
	return nil
}

// createBoltCollector returns a prometheus collector specifically configured for boltdb.
func createBoltCollector(db *bolt.DB) prometheus.Collector {
	return prombbolt.New("boltDB", db)
}

// checkEpochsForBlobSidecarsRequestBucket records the blob retention window on first open and
// refuses to open a database written under a different window.
func (s *Store) checkEpochsForBlobSidecarsRequestBucket(db *bolt.DB) error {
	uRetentionEpochs := uint64(s.blobRetentionEpochs)
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(chainMetadataBucket)
		v := b.Get(blobRetentionEpochsKey)
		if v == nil {
			return b.Put(blobRetentionEpochsKey, bytesutil.Uint64ToBytesBigEndian(uRetentionEpochs))
		}
		if stored := bytesutil.BytesToUint64BigEndian(v); stored != uRetentionEpochs {
			return errors.Wrapf(errBlobRetentionEpochMismatch, "db=%d, config=%d", stored, uRetentionEpochs)
		}
		return nil
	})
}

func closeOnError(db *bolt.DB) {
	if err := db.Close(); err != nil {
		log.WithError(err).Error("Could not close database after failed open")
	}
}

func hasDir(dirPath string) (bool, error) {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
