package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bryan-buckman/foodmood/internal/model"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

var _ Store = (*DB)(nil)

// New opens or creates an SQLite database at the given path.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Enable WAL mode for better concurrency.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// DatabaseType returns the database backend name.
func (db *DB) DatabaseType() string {
	return "SQLite"
}

// SupportsHighConcurrency returns false for SQLite.
func (db *DB) SupportsHighConcurrency() bool {
	return false
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		url TEXT NOT NULL UNIQUE,
		last_fetched DATETIME,
		last_error TEXT DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		author_avatar TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL DEFAULT 0,
		is_expert INTEGER NOT NULL DEFAULT 0,
		expert_level INTEGER NOT NULL DEFAULT 0,
		facets TEXT NOT NULL DEFAULT '{}',
		time_minutes INTEGER NOT NULL DEFAULT 0,
		budget INTEGER NOT NULL DEFAULT 0,
		location TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		likes INTEGER NOT NULL DEFAULT 0,
		comments INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		report_details TEXT,
		source_id INTEGER REFERENCES sources(id) ON DELETE CASCADE,
		guid TEXT,
		UNIQUE(source_id, guid)
	);
	CREATE TABLE IF NOT EXISTS ratings (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL DEFAULT '',
		user_avatar TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL,
		created_at DATETIME NOT NULL,
		good_count INTEGER NOT NULL DEFAULT 0,
		bad_count INTEGER NOT NULL DEFAULT 0,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		budget INTEGER NOT NULL DEFAULT 0,
		time_minutes INTEGER NOT NULL DEFAULT 0,
		texture TEXT NOT NULL DEFAULT '',
		temperature TEXT NOT NULL DEFAULT '',
		good_points TEXT NOT NULL DEFAULT '',
		bad_points TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	-- Default polling interval (15 minutes minimum).
	INSERT OR IGNORE INTO settings (key, value) VALUES ('polling_interval_minutes', '15');
	CREATE INDEX IF NOT EXISTS idx_ratings_post_id ON ratings(post_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// --- Post Methods ---

// ListPosts returns all posts, newest first.
func (db *DB) ListPosts() ([]model.Post, error) {
	rows, err := db.conn.Query("SELECT " + postColumns + " FROM posts ORDER BY created_at DESC, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

// GetPost returns a single post by id.
func (db *DB) GetPost(id string) (*model.Post, error) {
	return scanPost(db.conn.QueryRow("SELECT "+postColumns+" FROM posts WHERE id = ?", id))
}

// CreatePost inserts p, assigning an id and creation time when missing.
func (db *DB) CreatePost(p *model.Post) error {
	preparePost(p)
	args, err := postArgs(p)
	if err != nil {
		return err
	}
	_, err = db.conn.Exec("INSERT INTO posts ("+postColumns+") VALUES ("+placeholders(len(args), false)+")", args...)
	return err
}

// CountPosts returns the number of stored posts.
func (db *DB) CountPosts() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM posts").Scan(&n)
	return n, err
}

// --- Rating Methods ---

// ListRatings returns the ratings of a post, newest first.
func (db *DB) ListRatings(postID string) ([]model.Rating, error) {
	rows, err := db.conn.Query("SELECT "+ratingColumns+" FROM ratings WHERE post_id = ? ORDER BY created_at DESC, id", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRatings(rows)
}

// AddRating inserts r, assigning an id and creation time when missing.
func (db *DB) AddRating(r *model.Rating) error {
	prepareRating(r)
	args := ratingArgs(r)
	_, err := db.conn.Exec("INSERT INTO ratings ("+ratingColumns+") VALUES ("+placeholders(len(args), false)+")", args...)
	return err
}

// --- Source Methods ---

const sourceQuery = `SELECT s.id, s.title, s.url, s.last_fetched, s.last_error,
	(SELECT COUNT(*) FROM posts p WHERE p.source_id = s.id)
	FROM sources s`

// GetSources returns all sources ordered by title.
func (db *DB) GetSources() ([]model.Source, error) {
	rows, err := db.conn.Query(sourceQuery + " ORDER BY s.title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSources(rows)
}

// GetOrCreateSource finds a source by URL, or creates it.
func (db *DB) GetOrCreateSource(title, url string) (int64, bool, error) {
	var id int64
	err := db.conn.QueryRow("SELECT id FROM sources WHERE url = ?", url).Scan(&id)
	if err == sql.ErrNoRows {
		res, err := db.conn.Exec("INSERT INTO sources (title, url) VALUES (?, ?)", title, url)
		if err != nil {
			return 0, false, err
		}
		id, err := res.LastInsertId()
		return id, true, err
	}
	return id, false, err
}

// GetSourceByID returns a single source.
func (db *DB) GetSourceByID(sourceID int64) (*model.Source, error) {
	rows, err := db.conn.Query(sourceQuery+" WHERE s.id = ?", sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sources, err := scanSources(rows)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, sql.ErrNoRows
	}
	return &sources[0], nil
}

// UpdateSourceLastFetched records a successful fetch and clears the last error.
func (db *DB) UpdateSourceLastFetched(sourceID int64, t time.Time) error {
	_, err := db.conn.Exec("UPDATE sources SET last_fetched = ?, last_error = '' WHERE id = ?", t.UTC(), sourceID)
	return err
}

// UpdateSourceTitle updates the title of a source.
func (db *DB) UpdateSourceTitle(sourceID int64, title string) error {
	_, err := db.conn.Exec("UPDATE sources SET title = ? WHERE id = ?", title, sourceID)
	return err
}

// UpdateSourceError stores the last fetch error of a source.
func (db *DB) UpdateSourceError(sourceID int64, errMsg string) error {
	_, err := db.conn.Exec("UPDATE sources SET last_error = ? WHERE id = ?", errMsg, sourceID)
	return err
}

// DeleteSource removes a source and the posts imported from it.
func (db *DB) DeleteSource(sourceID int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM posts WHERE source_id = ?", sourceID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM sources WHERE id = ?", sourceID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// AddImportedPost inserts p for a source unless guid was seen before.
func (db *DB) AddImportedPost(sourceID int64, guid string, p *model.Post) (bool, error) {
	preparePost(p)
	args, err := postArgs(p)
	if err != nil {
		return false, err
	}
	args = append(args, sourceID, guid)
	res, err := db.conn.Exec(`INSERT INTO posts (`+postColumns+`, source_id, guid)
		VALUES (`+placeholders(len(args), false)+`)
		ON CONFLICT(source_id, guid) DO NOTHING`, args...)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

// --- Settings Methods ---

// GetSetting retrieves a setting value.
func (db *DB) GetSetting(key string) (string, error) {
	var val string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&val)
	return val, err
}

// SetSetting saves a setting.
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec("INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?", key, value, value)
	return err
}

// GetPollingInterval returns the polling interval in minutes, with a minimum of 15.
func (db *DB) GetPollingInterval() (int, error) {
	val, err := db.GetSetting(model.SettingPollingInterval)
	if err != nil {
		return MinPollingIntervalMinutes, nil
	}
	return pollingInterval(val), nil
}
