package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/repository"
	"github.com/bnema/docklayout/internal/logging"
)

const (
	upsertLayoutSQL = `
INSERT INTO layouts (name, version, data, content_count, floating_count, hidden_count, saved_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (name) DO UPDATE SET
    version = excluded.version,
    data = excluded.data,
    content_count = excluded.content_count,
    floating_count = excluded.floating_count,
    hidden_count = excluded.hidden_count,
    saved_at = excluded.saved_at`

	getLayoutSQL = `
SELECT name, version, data, content_count, floating_count, hidden_count, saved_at
FROM layouts WHERE name = ?`

	listLayoutsSQL = `
SELECT name, version, length(data), content_count, floating_count, hidden_count, saved_at
FROM layouts ORDER BY saved_at DESC, name`

	deleteLayoutSQL = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	db *sql.DB
}

// NewLayoutRepository creates a layout repository backed by db.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db}
}

func (r *layoutRepo) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if err := entity.ValidateLayoutName(snap.Name); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin layout transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("layout rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, upsertLayoutSQL,
		string(snap.Name),
		snap.Version,
		snap.Data,
		snap.ContentCount,
		snap.FloatingCount,
		snap.HiddenCount,
		snap.SavedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("upsert layout: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit layout transaction: %w", err)
	}

	log.Debug().
		Str("layout", string(snap.Name)).
		Int("bytes", len(snap.Data)).
		Msg("layout stored")
	return nil
}

func (r *layoutRepo) Get(ctx context.Context, name entity.LayoutName) (*entity.LayoutSnapshot, error) {
	var (
		snap    entity.LayoutSnapshot
		savedAt int64
	)
	err := r.db.QueryRowContext(ctx, getLayoutSQL, string(name)).Scan(
		&snap.Name,
		&snap.Version,
		&snap.Data,
		&snap.ContentCount,
		&snap.FloatingCount,
		&snap.HiddenCount,
		&savedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snap.SavedAt = time.Unix(0, savedAt).UTC()
	return &snap, nil
}

func (r *layoutRepo) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []entity.LayoutInfo
	for rows.Next() {
		var (
			info    entity.LayoutInfo
			savedAt int64
		)
		if err := rows.Scan(
			&info.Name,
			&info.Version,
			&info.SizeBytes,
			&info.ContentCount,
			&info.FloatingCount,
			&info.HiddenCount,
			&savedAt,
		); err != nil {
			return nil, err
		}
		info.SavedAt = time.Unix(0, savedAt).UTC()
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (r *layoutRepo) Delete(ctx context.Context, name entity.LayoutName) error {
	logging.FromContext(ctx).Debug().Str("layout", string(name)).Msg("deleting layout")
	_, err := r.db.ExecContext(ctx, deleteLayoutSQL, string(name))
	return err
}
