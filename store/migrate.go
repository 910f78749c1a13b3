package store

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/homegym/spotter/internal/models"
)

const schemaVersionKey = "schema_version"

// migrations are applied in order. The schema version stored in the meta
// bucket is the number of migrations applied so far.
var migrations = []func(tx *bbolt.Tx) error{
	migrateHistoryKeys,
	migrateLastWorkout,
}

// migrateHistoryKeys rewrites history entries that were keyed by their
// completion time alone, and assigns an id to records that lack one.
func migrateHistoryKeys(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(historyBucket))

	type entry struct {
		key []byte
		rec models.CompletionRecord
	}

	var stale []entry

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var rec models.CompletionRecord

		err := json.Unmarshal(v, &rec)
		if err != nil {
			return err
		}

		if rec.ID != "" && bytes.Equal(k, historyKey(rec)) {
			continue
		}

		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}

		stale = append(stale, entry{key: bytes.Clone(k), rec: rec})
	}

	for _, e := range stale {
		v, err := json.Marshal(e.rec)
		if err != nil {
			return err
		}

		err = bucket.Delete(e.key)
		if err != nil {
			return err
		}

		err = bucket.Put(historyKey(e.rec), v)
		if err != nil {
			return err
		}
	}

	return nil
}

// migrateLastWorkout points the last workout at the newest history entry when
// the pointer is missing.
func migrateLastWorkout(tx *bbolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))
	if meta.Get([]byte(lastWorkoutKey)) != nil {
		return nil
	}

	_, v := tx.Bucket([]byte(historyBucket)).Cursor().Last()
	if v == nil {
		return nil
	}

	return meta.Put([]byte(lastWorkoutKey), bytes.Clone(v))
}

func schemaVersion(meta *bbolt.Bucket) (int, error) {
	v := meta.Get([]byte(schemaVersionKey))
	if v == nil {
		return 0, nil
	}

	return strconv.Atoi(string(v))
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version, err := schemaVersion(meta)
	if err != nil {
		return err
	}

	for i := version; i < len(migrations); i++ {
		err = migrations[i](tx)
		if err != nil {
			return err
		}
	}

	return meta.Put([]byte(schemaVersionKey), []byte(strconv.Itoa(len(migrations))))
}
