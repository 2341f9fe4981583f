package models

import (
	"context"
	"errors"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
	"moviecatalog/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRequestModel struct {
	DB *pgxpool.Pool
}

// Upsert creates the user's admin request or resets a previously decided
// one back to pending. One active request per user, enforced by the unique
// user_id constraint the upsert targets.
func (m *AdminRequestModel) Upsert(ctx context.Context, userID int64, message *string) (*models.AdminRequest, error) {
	rows, _ := m.DB.Query(ctx,
		`INSERT INTO admin_requests (user_id, request_message, status)
		 VALUES ($1, $2, 'pending')
		 ON CONFLICT (user_id)
		 DO UPDATE SET request_message = $2, status = 'pending', created_at = CURRENT_TIMESTAMP
		 RETURNING id, user_id, request_message, status, reviewed_by, reviewed_at, created_at`,
		userID, message)
	request, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.AdminRequest])
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (m *AdminRequestModel) Get(ctx context.Context, id int64) (*models.AdminRequest, error) {
	rows, _ := m.DB.Query(ctx,
		`SELECT id, user_id, request_message, status, reviewed_by, reviewed_at, created_at
		 FROM admin_requests WHERE id = $1`, id)
	request, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.AdminRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (m *AdminRequestModel) GetByUser(ctx context.Context, userID int64) (*models.AdminRequest, error) {
	rows, _ := m.DB.Query(ctx,
		`SELECT id, user_id, request_message, status, reviewed_by, reviewed_at, created_at
		 FROM admin_requests WHERE user_id = $1`, userID)
	request, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.AdminRequest])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (m *AdminRequestModel) ListPending(ctx context.Context) ([]models.AdminRequestWithUser, error) {
	rows, _ := m.DB.Query(ctx,
		`SELECT ar.id, ar.user_id, ar.request_message, ar.status, ar.reviewed_by, ar.reviewed_at, ar.created_at,
		        u.username, u.email
		 FROM admin_requests ar
		 JOIN users u ON ar.user_id = u.id
		 WHERE ar.status = 'pending'
		 ORDER BY ar.created_at DESC`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.AdminRequestWithUser])
}

// Decide marks the request approved or rejected; approval also flips the
// requesting user's is_admin flag in the same transaction.
func (m *AdminRequestModel) Decide(ctx context.Context, id, userID, reviewerID int64, approved bool) error {
	status := models.AdminRequestRejected
	if approved {
		status = models.AdminRequestApproved
	}
	return postgres.WithTx(ctx, m.DB, func(tx pgx.Tx) error {
		if approved {
			if _, err := tx.Exec(ctx, "UPDATE users SET is_admin = TRUE WHERE id = $1", userID); err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx,
			`UPDATE admin_requests
			 SET status = $1, reviewed_by = $2, reviewed_at = CURRENT_TIMESTAMP
			 WHERE id = $3`,
			status, reviewerID, id)
		return err
	})
}
