package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/itektr/turkish-spellchecker/internal/model"
)

// DictionaryRepo manages custom dictionary words in the
// 'dictionary_entries' table.
type DictionaryRepo struct{ DB *sql.DB }

func NewDictionaryRepo(db *sql.DB) *DictionaryRepo { return &DictionaryRepo{DB: db} }

// Add inserts a custom word and returns its ID. The normalized form is
// what the spell checker matches against; it carries the unique index.
func (r *DictionaryRepo) Add(ctx context.Context, word, normalized string, addedBy uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO dictionary_entries (word, normalized, added_by) VALUES (?,?,?)",
		word, normalized, addedBy)
	if err != nil {
		// MySQL 1062: duplicate key on the unique normalized index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrDuplicateWord
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListActive returns all active entries, newest first.
func (r *DictionaryRepo) ListActive(ctx context.Context) ([]model.DictionaryEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, word, normalized, added_by, is_active, created_at FROM dictionary_entries WHERE is_active=1 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DictionaryEntry
	for rows.Next() {
		var e model.DictionaryEntry
		if err := rows.Scan(&e.ID, &e.Word, &e.Normalized, &e.AddedBy, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Deactivate soft-deletes an entry. Returns ErrNotFound when no active
// row matched the id.
func (r *DictionaryRepo) Deactivate(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE dictionary_entries SET is_active=0 WHERE id=? AND is_active=1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
