package probecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"minfo/internal/logging"
)

// Entry is one cached inspection: the raw JSON payloads of both tools plus
// the file identity they were captured against.
type Entry struct {
	Path      string
	Size      int64
	ModTime   time.Time
	ExifJSON  []byte
	ProbeJSON []byte
	CreatedAt time.Time
}

// Cache provides access to the probe result database.
type Cache struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS probe_entries (
    path       TEXT PRIMARY KEY,
    size       INTEGER NOT NULL,
    mtime_ns   INTEGER NOT NULL,
    exif_json  BLOB,
    probe_json BLOB,
    created_at TEXT NOT NULL
)`

// Open initializes or connects to the cache database at path.
func Open(path string, logger *slog.Logger) (*Cache, error) {
	if path == "" {
		return nil, errors.New("probe cache: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Cache{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "probecache"),
	}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the cached entry for path when its recorded size and
// modification time still match. A stale or absent entry is a plain miss.
func (c *Cache) Lookup(ctx context.Context, path string, size int64, modTime time.Time) (Entry, bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT size, mtime_ns, exif_json, probe_json, created_at FROM probe_entries WHERE path = ?`, path)

	var (
		entry     Entry
		mtimeNS   int64
		createdAt string
	)
	entry.Path = path
	err := row.Scan(&entry.Size, &mtimeNS, &entry.ExifJSON, &entry.ProbeJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("lookup cache entry: %w", err)
	}

	entry.ModTime = time.Unix(0, mtimeNS)
	if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		entry.CreatedAt = parsed
	}

	if entry.Size != size || mtimeNS != modTime.UnixNano() {
		c.logger.Debug("stale cache entry",
			logging.String(logging.FieldPath, path),
			logging.Int64("cached_size", entry.Size),
			logging.Int64("current_size", size))
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// Store inserts or replaces the entry for its path.
func (c *Cache) Store(ctx context.Context, entry Entry) error {
	if entry.Path == "" {
		return errors.New("probe cache: entry path cannot be empty")
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO probe_entries (path, size, mtime_ns, exif_json, probe_json, created_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
             size = excluded.size,
             mtime_ns = excluded.mtime_ns,
             exif_json = excluded.exif_json,
             probe_json = excluded.probe_json,
             created_at = excluded.created_at`,
		entry.Path, entry.Size, entry.ModTime.UnixNano(),
		entry.ExifJSON, entry.ProbeJSON, createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}

	c.logger.Debug("cached probe results",
		logging.String(logging.FieldPath, entry.Path),
		logging.Int64("size", entry.Size))
	return nil
}

// List returns every cached entry, newest first.
func (c *Cache) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT path, size, mtime_ns, exif_json, probe_json, created_at
         FROM probe_entries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cache entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			mtimeNS   int64
			createdAt string
		)
		if err := rows.Scan(&entry.Path, &entry.Size, &mtimeNS, &entry.ExifJSON, &entry.ProbeJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan cache entry: %w", err)
		}
		entry.ModTime = time.Unix(0, mtimeNS)
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear removes every cache entry.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM probe_entries`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Path returns the database location.
func (c *Cache) Path() string {
	return c.path
}
