package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"quicktab/internal/entity"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	namespace_key TEXT PRIMARY KEY,
	revision      INTEGER NOT NULL,
	save_id       TEXT NOT NULL,
	checksum      TEXT NOT NULL,
	entities      TEXT NOT NULL
);`

// SQLiteStore is a durable Store backed by a single SQLite file. It is
// meant for the coordinator, which is the only process opening the file;
// change notifications fan out in-process.
type SQLiteStore struct {
	db *sql.DB

	*notifier
}

// OpenSQLite opens (creating if needed) the snapshot database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// The coordinator serializes its own writes; one connection keeps
	// SQLITE_BUSY out of the picture.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, notifier: newNotifier()}, nil
}

// Get retrieves the snapshot for a key, or nil if never written.
func (s *SQLiteStore) Get(ctx context.Context, key string) (*entity.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT revision, save_id, checksum, entities FROM snapshots WHERE namespace_key = ?`, key)

	var (
		revision int64
		saveID   string
		checksum string
		encoded  string
	)
	if err := row.Scan(&revision, &saveID, &checksum, &encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", key, err)
	}

	entities := make(map[string]*entity.QuickTab)
	if err := json.Unmarshal([]byte(encoded), &entities); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return &entity.Snapshot{
		Entities: entities,
		Revision: revision,
		SaveID:   saveID,
		Checksum: checksum,
	}, nil
}

// CompareAndSet stores snap iff the current revision equals
// expectedRevision.
func (s *SQLiteStore) CompareAndSet(ctx context.Context, key string, snap *entity.Snapshot, expectedRevision int64) error {
	encoded, err := json.Marshal(snap.Entities)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapSQLiteErr(err)
	}
	defer tx.Rollback()

	var old *entity.Snapshot
	var currentRev int64
	row := tx.QueryRowContext(ctx,
		`SELECT revision, save_id, checksum, entities FROM snapshots WHERE namespace_key = ?`, key)
	var (
		saveID, checksum, oldEncoded string
	)
	switch err := row.Scan(&currentRev, &saveID, &checksum, &oldEncoded); {
	case errors.Is(err, sql.ErrNoRows):
		currentRev = 0
	case err != nil:
		return fmt.Errorf("read current revision %s: %w", key, err)
	default:
		oldEntities := make(map[string]*entity.QuickTab)
		if err := json.Unmarshal([]byte(oldEncoded), &oldEntities); err == nil {
			old = &entity.Snapshot{Entities: oldEntities, Revision: currentRev, SaveID: saveID, Checksum: checksum}
		}
	}

	if currentRev != expectedRevision {
		return ErrStaleWrite
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (namespace_key, revision, save_id, checksum, entities)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(namespace_key) DO UPDATE SET
			revision = excluded.revision,
			save_id  = excluded.save_id,
			checksum = excluded.checksum,
			entities = excluded.entities`,
		key, snap.Revision, snap.SaveID, snap.Checksum, string(encoded))
	if err != nil {
		return mapSQLiteErr(err)
	}
	if err := tx.Commit(); err != nil {
		return mapSQLiteErr(err)
	}

	s.notify(key, old, snap)
	return nil
}

// Subscribe registers a change callback for a key.
func (s *SQLiteStore) Subscribe(key string, fn ChangeFunc) func() {
	return s.subscribe(key, fn)
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// mapSQLiteErr converts backend-specific failures into the store's error
// taxonomy. A full database is a permanent quota failure.
func mapSQLiteErr(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "database or disk is full") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return err
}
