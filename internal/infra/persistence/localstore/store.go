// Package localstore implements the persistence layer on an embedded,
// synchronous key-value store: one serialized snapshot per fixed key, the
// server-side analogue of browser local storage.
package localstore

import (
	"encoding/json"

	domainerrors "dukaan/internal/domain/errors"

	"github.com/pkg/errors"
)

// Snapshot keys. Each key holds the full serialized contents of one logical
// collection; every write replaces the prior value entirely.
const (
	KeyProducts = "dukaan_store_products"
	KeyOrders   = "dukaan_store_orders"
	KeySettings = "dukaan_store_settings"
)

// Store is the synchronous snapshot store contract. Read reports absence via
// found rather than an error; Write fully overwrites the prior snapshot for
// the key. Neither call retries on failure.
type Store interface {
	Read(key string) (blob []byte, found bool, err error)
	Write(key string, blob []byte) error
}

// readSnapshot reads and decodes one collection snapshot. A missing key
// returns found=false with no error; an undecodable blob is a fatal,
// distinct error kind, never a zero-valued result.
func readSnapshot[T any](store Store, key string) (value T, found bool, err error) {
	blob, found, err := store.Read(key)
	if err != nil {
		return value, false, errors.Wrapf(err, "read %s snapshot", key)
	}
	if !found {
		return value, false, nil
	}

	if err := json.Unmarshal(blob, &value); err != nil {
		return value, false, domainerrors.NewSnapshotCorruptError(err, key)
	}

	return value, true, nil
}

// writeSnapshot serializes and stores one collection snapshot, replacing the
// prior value wholesale.
func writeSnapshot[T any](store Store, key string, value T) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshal %s snapshot", key)
	}

	if err := store.Write(key, blob); err != nil {
		return errors.Wrapf(err, "write %s snapshot", key)
	}

	return nil
}
