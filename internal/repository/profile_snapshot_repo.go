package repository

import (
	"context"
)

// ProfileSnapshotRepository stores one serialized Profile per user. The row
// is read and rewritten wholesale; there are no partial updates and no
// versioning, so the last writer wins.
type ProfileSnapshotRepository struct {
	db DBTX
}

func NewProfileSnapshotRepository(db DBTX) *ProfileSnapshotRepository {
	return &ProfileSnapshotRepository{db: db}
}

// Get returns the raw snapshot bytes. Decoding is left to the caller so a
// corrupt snapshot can be detected and replaced rather than surfaced.
func (r *ProfileSnapshotRepository) Get(ctx context.Context, userID int64) ([]byte, error) {
	query := `
		SELECT data
		FROM profile_snapshots
		WHERE user_id = $1
	`
	var data []byte
	if err := r.db.QueryRow(ctx, query, userID).Scan(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *ProfileSnapshotRepository) Save(ctx context.Context, userID int64, data []byte) error {
	query := `
		INSERT INTO profile_snapshots (user_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, userID, data)
	return err
}

func (r *ProfileSnapshotRepository) Delete(ctx context.Context, userID int64) error {
	query := `DELETE FROM profile_snapshots WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}
