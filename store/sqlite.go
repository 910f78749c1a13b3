package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	_ "modernc.org/sqlite"

	"github.com/homegym/spotter/internal/models"
	"github.com/homegym/spotter/internal/osutil"
	"github.com/homegym/spotter/internal/timeutil"
)

const memoryDSN = ":memory:"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite implements Repository on top of modernc.org/sqlite.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLite opens (or creates) the database at dbPath and applies pending
// migrations. Pass ":memory:" for a throwaway database.
func NewSQLite(ctx context.Context, dbPath string) (*SQLite, error) {
	if dbPath != memoryDSN {
		if err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// one writer at a time, and a single connection keeps an in-memory
	// database alive
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &SQLite{db: db, now: time.Now}

	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Migrate runs all embedded SQL migration files in order.
func (s *SQLite) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)

	for _, name := range names {
		var count int

		err := s.db.QueryRowContext(
			ctx,
			"SELECT COUNT(*) FROM schema_migrations WHERE filename = ?",
			name,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}

		if count > 0 {
			continue
		}

		data, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := s.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		_, err = s.db.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", name)
		if err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// --- Routines ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoutine(row rowScanner) (*models.Routine, error) {
	var (
		r                models.Routine
		days             string
		created, updated string
	)

	if err := row.Scan(&r.ID, &r.Name, &days, &created, &updated); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(days), &r.Days); err != nil {
		return nil, fmt.Errorf("decoding days of routine %s: %w", r.ID, err)
	}

	var err error

	if r.CreatedAt, err = timeutil.Parse(created); err != nil {
		return nil, err
	}

	if r.UpdatedAt, err = timeutil.Parse(updated); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *SQLite) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, days, created_at, updated_at FROM routines ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	defer rows.Close()

	var routines []models.Routine

	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan routine: %w", err)
		}

		routines = append(routines, *r)
	}

	return routines, rows.Err()
}

func (s *SQLite) GetRoutine(ctx context.Context, id string) (*models.Routine, error) {
	r, err := scanRoutine(s.db.QueryRowContext(ctx,
		`SELECT id, name, days, created_at, updated_at FROM routines WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("routine %s: %w", id, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}

	return r, nil
}

func (s *SQLite) SaveRoutine(ctx context.Context, r *models.Routine) error {
	if err := prepareRoutine(r, s.now()); err != nil {
		return err
	}

	days, err := json.Marshal(r.Days)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO routines (id, name, days, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, days = excluded.days, updated_at = excluded.updated_at`,
		r.ID, r.Name, string(days), timeutil.Format(r.CreatedAt), timeutil.Format(r.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save routine: %w", err)
	}

	return nil
}

func (s *SQLite) DeleteRoutine(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM routines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return fmt.Errorf("routine %s: %w", id, ErrNotFound)
	}

	return nil
}

func (s *SQLite) GetPlan(
	ctx context.Context,
	routineID string,
	dayIndex int,
) (models.TrainingPlan, error) {
	r, err := s.GetRoutine(ctx, routineID)
	if err != nil {
		return models.TrainingPlan{}, err
	}

	return planFor(r, dayIndex)
}

// --- History ---

const historyColumns = `id, routine_id, routine_name, day_index, day_name, exercises_completed, completed_at`

func scanRecord(row rowScanner) (*models.CompletionRecord, error) {
	var (
		rec       models.CompletionRecord
		completed string
	)

	err := row.Scan(
		&rec.ID,
		&rec.RoutineID,
		&rec.RoutineName,
		&rec.DayIndex,
		&rec.DayName,
		&rec.ExercisesCompleted,
		&completed,
	)
	if err != nil {
		return nil, err
	}

	rec.CompletedAt, err = timeutil.Parse(completed)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *SQLite) SaveCompletion(ctx context.Context, rec models.CompletionRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO history (`+historyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.RoutineID,
		rec.RoutineName,
		rec.DayIndex,
		rec.DayName,
		rec.ExercisesCompleted,
		timeutil.Format(rec.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}

	// a retried record must not replace a newer last workout
	_, err = tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
		WHERE NOT EXISTS (
			SELECT 1 FROM history h
			WHERE h.id = meta.value AND h.completed_at > ?
		)`,
		lastWorkoutKey, rec.ID, timeutil.Format(rec.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("update last workout: %w", err)
	}

	return tx.Commit()
}

func (s *SQLite) LastWorkout(ctx context.Context) (*models.CompletionRecord, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM history
		WHERE id = (SELECT value FROM meta WHERE key = ?)`,
		lastWorkoutKey,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("last workout: %w", ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("get last workout: %w", err)
	}

	return rec, nil
}

func (s *SQLite) History(
	ctx context.Context,
	since, until time.Time,
) ([]models.CompletionRecord, error) {
	query := `SELECT ` + historyColumns + ` FROM history WHERE completed_at >= ?`
	args := []any{timeutil.Format(since)}

	if !until.IsZero() {
		query += ` AND completed_at <= ?`

		args = append(args, timeutil.Format(until))
	}

	rows, err := s.db.QueryContext(ctx, query+` ORDER BY completed_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []models.CompletionRecord

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}

		records = append(records, *rec)
	}

	return records, rows.Err()
}

// --- Settings ---

func (s *SQLite) GetSettings(ctx context.Context) (models.Settings, error) {
	var (
		st      = models.DefaultSettings()
		updated string
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT language, rest_between_sets, rest_between_exercises, cues_enabled, updated_at
		FROM settings WHERE id = 1`,
	).Scan(&st.Language, &st.RestBetweenSets, &st.RestBetweenExercises, &st.CuesEnabled, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}

	if err != nil {
		return st, fmt.Errorf("get settings: %w", err)
	}

	st.UpdatedAt, err = timeutil.Parse(updated)
	if err != nil {
		return st, fmt.Errorf("get settings: %w", err)
	}

	return st, nil
}

func (s *SQLite) SaveSettings(ctx context.Context, st models.Settings) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, language, rest_between_sets, rest_between_exercises, cues_enabled, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			language = excluded.language,
			rest_between_sets = excluded.rest_between_sets,
			rest_between_exercises = excluded.rest_between_exercises,
			cues_enabled = excluded.cues_enabled,
			updated_at = excluded.updated_at`,
		st.Language,
		st.RestBetweenSets,
		st.RestBetweenExercises,
		boolToInt(st.CuesEnabled),
		timeutil.Format(s.now()),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// boolToInt converts a bool to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
