package journal

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/eieluploader/internal/client/models"
)

type SQLiteRepository struct {
	db DBTX
}

func NewSQLiteRepository(db DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Record(ctx context.Context, a *models.Attempt) error {

	query := `INSERT INTO attempts (session_id, file_name, size, category, municipality, work_id, success, reason, started_at, finished_at)
			values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(session_id) DO UPDATE SET file_name = excluded.file_name,
				size = excluded.size,
				category = excluded.category,
				municipality = excluded.municipality,
				work_id = excluded.work_id,
				success = excluded.success,
				reason = excluded.reason,
				started_at = excluded.started_at,
				finished_at = excluded.finished_at
	`
	_, err := r.db.ExecContext(ctx, query, a.SessionID, a.FileName, a.Size, string(a.Category), a.Municipality,
		a.WorkID, a.Success, a.Reason, a.StartedAt.UTC(), a.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]*models.Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `select session_id, file_name, size, category, municipality, work_id, success, reason, started_at, finished_at
		from attempts order by started_at desc, session_id desc limit ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error selecting attempts: %w", err)
	}
	defer rows.Close()

	var result []*models.Attempt

	for rows.Next() {
		var item = &models.Attempt{}
		var category string
		err := rows.Scan(&item.SessionID, &item.FileName, &item.Size, &category, &item.Municipality,
			&item.WorkID, &item.Success, &item.Reason, &item.StartedAt, &item.FinishedAt)
		if err != nil {
			return nil, err
		}
		item.Category = models.Category(category)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
