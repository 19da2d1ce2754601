package localstore

import (
	"context"

	"dukaan/config"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/fx"
)

var bucketSnapshots = []byte("snapshots")

// boltStore is the on-disk Store implementation backed by a single bbolt
// file. bbolt serializes writers internally, so snapshot reads and writes
// stay synchronous from the caller's point of view.
type boltStore struct {
	db *bolt.DB
}

// Params holds dependencies for the bolt store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens (or creates) the snapshot store file and registers a shutdown
// hook that closes it.
func New(params Params) (Store, error) {
	store, err := Open(params.Config.Store.Path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens the snapshot store file at path.
func Open(path string) (*boltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open store file %s", path)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)

		return err
	}); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "create snapshots bucket")
	}

	return &boltStore{db: db}, nil
}

// Read returns the snapshot stored under key, or found=false when the key
// has never been written.
func (s *boltStore) Read(key string) ([]byte, bool, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if stored := tx.Bucket(bucketSnapshots).Get([]byte(key)); stored != nil {
			// The value is only valid inside the transaction.
			blob = make([]byte, len(stored))
			copy(blob, stored)
		}

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrapf(err, "read key %s", key)
	}

	return blob, blob != nil, nil
}

// Write replaces the snapshot stored under key.
func (s *boltStore) Write(key string, blob []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(key), blob)
	})

	return errors.Wrapf(err, "write key %s", key)
}

// Close closes the underlying store file.
func (s *boltStore) Close() error {
	return errors.Wrap(s.db.Close(), "close store file")
}
