package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/autofeed/pkg/domain"
)

//go:embed schema.sql
var schema string

// SQLite keeps feeds in a single SQLite table, each mutation is one statement.
// A database that can't be initialized is replaced by an empty in-memory one,
// Load and SaveErr report this degraded mode.
type SQLite struct {
	db      *sqlx.DB
	dsn     string
	initErr error

	now   func() time.Time
	newID func() string
}

// SQLiteConfig represents database configuration
type SQLiteConfig struct {
	DSN          string
	MaxOpenConns int
}

// feedSQL is the db row of a feed
type feedSQL struct {
	ID              string       `db:"id"`
	Name            string       `db:"name"`
	IntervalMinutes int          `db:"interval_minutes"`
	Destination     string       `db:"destination"`
	Payload         string       `db:"payload"`
	Active          bool         `db:"active"`
	CreatedAt       time.Time    `db:"created_at"`
	LastDeliveredAt sql.NullTime `db:"last_delivered_at"`
}

// NewSQLite opens the database and makes sure the schema exists.
// Only a failure to open the driver is returned, a broken database falls back to memory.
func NewSQLite(ctx context.Context, cfg SQLiteConfig) (*SQLite, error) {
	if cfg.DSN == "" {
		cfg.DSN = sqliteDSN("")
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	res := &SQLite{db: db, dsn: cfg.DSN, now: time.Now, newID: newID}

	initErr := initSchema(ctx, db)
	if initErr == nil {
		return res, nil
	}
	_ = db.Close()
	lgr.Printf("[WARN] can't use database %s, feeds kept in memory only: %v", cfg.DSN, initErr)

	// named in-memory db, a single connection keeps it alive
	mem, err := sqlx.Open("sqlite", "file:autofeed-"+newID()+"?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("open fallback database: %w", err)
	}
	mem.SetMaxOpenConns(1)
	if err := initSchema(ctx, mem); err != nil {
		_ = mem.Close()
		return nil, fmt.Errorf("init fallback database: %w", err)
	}
	res.db = mem
	res.initErr = &domain.PersistenceError{Op: "load", Path: cfg.DSN, Err: initErr}
	return res, nil
}

func initSchema(ctx context.Context, db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Load checks the database is reachable and reports how many feeds it holds.
// A database replaced by the in-memory fallback is reported as PersistenceError.
func (s *SQLite) Load(ctx context.Context) error {
	if s.initErr != nil {
		lgr.Printf("[WARN] feeds database unusable, starting empty: %v", s.initErr)
		return s.initErr
	}
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM feeds"); err != nil {
		lgr.Printf("[WARN] can't read feeds from %s: %v", s.dsn, err)
		return &domain.PersistenceError{Op: "load", Path: s.dsn, Err: err}
	}
	lgr.Printf("[INFO] loaded %d feeds from %s", count, s.dsn)
	return nil
}

// Save is a no-op, every mutation is committed by its own statement
func (s *SQLite) Save(context.Context) error { return nil }

// SaveErr reports the in-memory fallback, failed statements are returned directly to callers
func (s *SQLite) SaveErr() error { return s.initErr }

// Close closes the database connection
func (s *SQLite) Close() error { return s.db.Close() }

// Create inserts a new feed with a fresh id and creation time
func (s *SQLite) Create(ctx context.Context, feed domain.Feed) (domain.Feed, error) {
	ctx = context.WithoutCancel(ctx)
	feed.CreatedAt = s.now().UTC()
	feed.LastDeliveredAt = nil

	for range 5 {
		feed.ID = s.newID()
		row, err := toFeedSQL(feed)
		if err != nil {
			return domain.Feed{}, fmt.Errorf("create feed: %w", err)
		}
		query := `INSERT INTO feeds (id, name, interval_minutes, destination, payload, active, created_at)
			VALUES (:id, :name, :interval_minutes, :destination, :payload, :active, :created_at)
			ON CONFLICT(id) DO NOTHING`
		var res sql.Result
		err = s.retry(ctx, func() (err error) {
			res, err = s.db.NamedExecContext(ctx, query, row)
			return err
		})
		if err != nil {
			return domain.Feed{}, &domain.PersistenceError{Op: "save", Path: s.dsn, Err: fmt.Errorf("create feed: %w", err)}
		}
		if n, _ := res.RowsAffected(); n == 1 {
			return feed, nil
		}
		lgr.Printf("[DEBUG] feed id %s collision, regenerate", feed.ID)
	}
	return domain.Feed{}, fmt.Errorf("create feed: can't allocate unique id")
}

// Get returns feed by id
func (s *SQLite) Get(ctx context.Context, id string) (domain.Feed, error) {
	var row feedSQL
	if err := s.db.GetContext(ctx, &row, "SELECT * FROM feeds WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Feed{}, fmt.Errorf("get feed %s: %w", id, domain.ErrFeedNotFound)
		}
		return domain.Feed{}, fmt.Errorf("get feed %s: %w", id, err)
	}
	return row.toDomain()
}

// All returns all feeds ordered by creation time
func (s *SQLite) All(ctx context.Context) ([]domain.Feed, error) {
	var rows []feedSQL
	if err := s.db.SelectContext(ctx, &rows, "SELECT * FROM feeds ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}
	res := make([]domain.Feed, 0, len(rows))
	for _, r := range rows {
		f, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	sortFeeds(res)
	return res, nil
}

// FindByName returns the first feed with case-insensitive name match
func (s *SQLite) FindByName(ctx context.Context, name string) (domain.Feed, error) {
	var row feedSQL
	err := s.db.GetContext(ctx, &row,
		"SELECT * FROM feeds WHERE name = ? COLLATE NOCASE ORDER BY created_at, id LIMIT 1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Feed{}, fmt.Errorf("find feed %q: %w", name, domain.ErrFeedNotFound)
		}
		return domain.Feed{}, fmt.Errorf("find feed %q: %w", name, err)
	}
	return row.toDomain()
}

// Update replaces editable fields of an existing feed
func (s *SQLite) Update(ctx context.Context, feed domain.Feed) (domain.Feed, error) {
	ctx = context.WithoutCancel(ctx)
	row, err := toFeedSQL(feed)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("update feed: %w", err)
	}
	query := `UPDATE feeds SET name = :name, interval_minutes = :interval_minutes, destination = :destination,
		payload = :payload, active = :active WHERE id = :id`
	if err := s.execOne(ctx, "update feed "+feed.ID, func() (sql.Result, error) {
		return s.db.NamedExecContext(ctx, query, row)
	}); err != nil {
		return domain.Feed{}, err
	}
	return s.Get(ctx, feed.ID)
}

// Delete removes feed, returns false if it didn't exist
func (s *SQLite) Delete(ctx context.Context, id string) (bool, error) {
	ctx = context.WithoutCancel(ctx)
	err := s.execOne(ctx, "delete feed "+id, func() (sql.Result, error) {
		return s.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	})
	if errors.Is(err, domain.ErrFeedNotFound) {
		return false, nil
	}
	return err == nil, err
}

// SetActive sets active flag of the feed
func (s *SQLite) SetActive(ctx context.Context, id string, active bool) (domain.Feed, error) {
	ctx = context.WithoutCancel(ctx)
	if err := s.execOne(ctx, "set active for feed "+id, func() (sql.Result, error) {
		return s.db.ExecContext(ctx, "UPDATE feeds SET active = ? WHERE id = ?", active, id)
	}); err != nil {
		return domain.Feed{}, err
	}
	return s.Get(ctx, id)
}

// RecordDelivery sets last successful delivery time
func (s *SQLite) RecordDelivery(ctx context.Context, id string, ts time.Time) error {
	ctx = context.WithoutCancel(ctx)
	return s.execOne(ctx, "record delivery for feed "+id, func() (sql.Result, error) {
		return s.db.ExecContext(ctx, "UPDATE feeds SET last_delivered_at = ? WHERE id = ?", ts.UTC(), id)
	})
}

// execOne runs a statement expected to touch exactly one row, no rows means feed not found
func (s *SQLite) execOne(ctx context.Context, op string, fn func() (sql.Result, error)) error {
	var res sql.Result
	err := s.retry(ctx, func() (err error) {
		res, err = fn()
		return err
	})
	if err != nil {
		return &domain.PersistenceError{Op: "save", Path: s.dsn, Err: fmt.Errorf("%s: %w", op, err)}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrFeedNotFound)
	}
	return nil
}

// retry repeats fn on lock errors only, any other error is returned as is
func (s *SQLite) retry(ctx context.Context, fn func() error) error {
	var lastErr error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		lastErr = fn()
		if isLockError(lastErr) {
			return lastErr // retry
		}
		return nil
	})
	if err != nil {
		return err
	}
	return lastErr
}

func toFeedSQL(f domain.Feed) (feedSQL, error) {
	payload, err := json.Marshal(f.Payload)
	if err != nil {
		return feedSQL{}, fmt.Errorf("marshal payload: %w", err)
	}
	row := feedSQL{
		ID:              f.ID,
		Name:            f.Name,
		IntervalMinutes: f.IntervalMinutes,
		Destination:     f.Destination,
		Payload:         string(payload),
		Active:          f.Active,
		CreatedAt:       f.CreatedAt.UTC(),
	}
	if f.LastDeliveredAt != nil {
		row.LastDeliveredAt = sql.NullTime{Time: f.LastDeliveredAt.UTC(), Valid: true}
	}
	return row, nil
}

func (r feedSQL) toDomain() (domain.Feed, error) {
	f := domain.Feed{
		ID:              r.ID,
		Name:            r.Name,
		IntervalMinutes: r.IntervalMinutes,
		Destination:     r.Destination,
		Active:          r.Active,
		CreatedAt:       r.CreatedAt.UTC(),
	}
	if r.Payload != "" {
		if err := json.Unmarshal([]byte(r.Payload), &f.Payload); err != nil {
			return domain.Feed{}, fmt.Errorf("unmarshal payload of feed %s: %w", r.ID, err)
		}
	}
	if r.LastDeliveredAt.Valid {
		ts := r.LastDeliveredAt.Time.UTC()
		f.LastDeliveredAt = &ts
	}
	return f, nil
}
