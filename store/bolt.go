package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/osutil"
	"github.com/homegym/spotter/internal/timeutil"
)

const (
	routineBucket  = "routines"
	historyBucket  = "history"
	metaBucket     = "meta"
	settingsBucket = "settings"

	lastWorkoutKey = "last_workout"
	settingsKey    = "settings"
)

var buckets = []string{routineBucket, historyBucket, metaBucket, settingsBucket}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	now func() time.Time
}

// NewClient returns a wrapper to a BoltDB connection. The buckets are created
// and pending migrations applied.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{
		DB:  db,
		now: time.Now,
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	if err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// another process holds the file lock
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errInstanceRunning
		}

		return nil, err
	}

	return db, nil
}

func (c *Client) ListRoutines(_ context.Context) ([]models.Routine, error) {
	var routines []models.Routine

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(routineBucket)).ForEach(func(_, v []byte) error {
			var r models.Routine
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			routines = append(routines, r)

			return nil
		})
	})

	return routines, err
}

func (c *Client) GetRoutine(_ context.Context, id string) (*models.Routine, error) {
	var r models.Routine

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(routineBucket)).Get([]byte(id))
		if len(b) == 0 {
			return fmt.Errorf("routine %s: %w", id, ErrNotFound)
		}

		return json.Unmarshal(b, &r)
	})
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (c *Client) SaveRoutine(_ context.Context, r *models.Routine) error {
	if err := prepareRoutine(r, c.now()); err != nil {
		return err
	}

	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(routineBucket)).Put([]byte(r.ID), value)
	})
}

func (c *Client) DeleteRoutine(_ context.Context, id string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(routineBucket))
		if b.Get([]byte(id)) == nil {
			return fmt.Errorf("routine %s: %w", id, ErrNotFound)
		}

		return b.Delete([]byte(id))
	})
}

func (c *Client) GetPlan(
	ctx context.Context,
	routineID string,
	dayIndex int,
) (models.TrainingPlan, error) {
	r, err := c.GetRoutine(ctx, routineID)
	if err != nil {
		return models.TrainingPlan{}, err
	}

	return planFor(r, dayIndex)
}

func (c *Client) SaveCompletion(_ context.Context, rec models.CompletionRecord) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(historyBucket)).Put(historyKey(rec), value)
		if err != nil {
			return err
		}

		meta := tx.Bucket([]byte(metaBucket))

		// a retried record must not replace a newer last workout
		if b := meta.Get([]byte(lastWorkoutKey)); len(b) != 0 {
			var last models.CompletionRecord
			if err := json.Unmarshal(b, &last); err != nil {
				return err
			}

			if last.CompletedAt.After(rec.CompletedAt) {
				return nil
			}
		}

		return meta.Put([]byte(lastWorkoutKey), value)
	})
}

func (c *Client) LastWorkout(_ context.Context) (*models.CompletionRecord, error) {
	var rec models.CompletionRecord

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(metaBucket)).Get([]byte(lastWorkoutKey))
		if len(b) == 0 {
			return fmt.Errorf("last workout: %w", ErrNotFound)
		}

		return json.Unmarshal(b, &rec)
	})
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (c *Client) History(
	_ context.Context,
	since, until time.Time,
) ([]models.CompletionRecord, error) {
	var records []models.CompletionRecord

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(historyBucket)).Cursor()

		var maxKey []byte
		if !until.IsZero() {
			// the key of a record ends with its id, so anything sharing the
			// timestamp prefix still sorts below this bound
			maxKey = append(timeutil.ToKey(until), 0xff)
		}

		for k, v := cur.Seek(timeutil.ToKey(since)); k != nil; k, v = cur.Next() {
			if maxKey != nil && bytes.Compare(k, maxKey) > 0 {
				break
			}

			var rec models.CompletionRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}

			if inRange(rec.CompletedAt, since, until) {
				records = append(records, rec)
			}
		}

		return nil
	})

	return records, err
}

func (c *Client) GetSettings(_ context.Context) (models.Settings, error) {
	s := models.DefaultSettings()

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(settingsBucket)).Get([]byte(settingsKey))
		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, &s)
	})

	return s, err
}

func (c *Client) SaveSettings(_ context.Context, s models.Settings) error {
	s.UpdatedAt = c.now()

	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(settingsKey), value)
	})
}

// historyKey orders records by completion time. The id keeps records that
// complete within the same instant apart.
func historyKey(rec models.CompletionRecord) []byte {
	return append(timeutil.ToKey(rec.CompletedAt), []byte("/"+rec.ID)...)
}
