// Package repositories holds the data access layer between the web server
// and SQLite.
package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/sqlite"
)

// ErrSaveNotFound is returned when a session has no save in the given slot.
var ErrSaveNotFound = errors.NewSentinel("save not found")

// SaveSlot is one archived save as listed to the player.
type SaveSlot struct {
	Slot    string    `db:"slot" json:"slot"`
	SavedAt time.Time `db:"saved_at" json:"saved_at"`
}

// SaveRepository archives save envelopes per session and slot.
type SaveRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewSaveRepository(dbs *sqlite.Database, logger *slog.Logger) *SaveRepository {
	return &SaveRepository{
		dbs:    dbs,
		logger: logger.With("source", "SaveRepository"),
	}
}

// Put stores the envelope payload in the session's slot, replacing any
// earlier save there.
func (r *SaveRepository) Put(ctx context.Context, sessionID, slot string, payload []byte) error {
	stmt := `INSERT INTO save_slots (session_id, slot, payload, saved_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (session_id, slot) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`
	if _, err := r.dbs.ReadWrite.ExecContext(ctx, stmt, sessionID, slot, string(payload), time.Now().UTC()); err != nil {
		return errors.Wrap(err, "store save slot", slog.String("slot", slot))
	}
	return nil
}

// Get returns the envelope payload stored in the session's slot.
func (r *SaveRepository) Get(ctx context.Context, sessionID, slot string) ([]byte, error) {
	var payload string
	stmt := `SELECT payload FROM save_slots WHERE session_id = ? AND slot = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &payload, stmt, sessionID, slot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrSaveNotFound, "read save slot", slog.String("slot", slot))
		}
		return nil, errors.Wrap(err, "read save slot", slog.String("slot", slot))
	}
	return []byte(payload), nil
}

// List returns the session's slots, most recent first.
func (r *SaveRepository) List(ctx context.Context, sessionID string) ([]SaveSlot, error) {
	var slots []SaveSlot
	stmt := `SELECT slot, saved_at FROM save_slots WHERE session_id = ? ORDER BY saved_at DESC, slot`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &slots, stmt, sessionID); err != nil {
		return nil, errors.Wrap(err, "list save slots")
	}
	return slots, nil
}

// Delete removes the session's slot. Deleting an absent slot is a no-op.
func (r *SaveRepository) Delete(ctx context.Context, sessionID, slot string) error {
	stmt := `DELETE FROM save_slots WHERE session_id = ? AND slot = ?`
	if _, err := r.dbs.ReadWrite.ExecContext(ctx, stmt, sessionID, slot); err != nil {
		return errors.Wrap(err, "delete save slot", slog.String("slot", slot))
	}
	return nil
}
