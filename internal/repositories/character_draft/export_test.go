package characterdraft

import "context"

// Overwrite stores raw bytes as the record, bypassing encoding
func (r *SQLiteRepository) Overwrite(ctx context.Context, data string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE wizard_drafts SET data = ? WHERE draft_key = ?`, data, r.key)
	return err
}

// UpdatedAt reads the stored updated_at stamp
func (r *SQLiteRepository) UpdatedAt(ctx context.Context) (int64, error) {
	var stamp int64
	err := r.db.QueryRowContext(ctx, `SELECT updated_at FROM wizard_drafts WHERE draft_key = ?`, r.key).Scan(&stamp)
	return stamp, err
}
