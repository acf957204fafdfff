package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// RequestWriteRepository handles snack request write operations
type RequestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRequestWriteRepository(db *sqlx.DB, txGetter TxGetter) *RequestWriteRepository {
	return &RequestWriteRepository{db: db, txGetter: txGetter}
}

// Insert creates a new pending request and returns its id.
func (r *RequestWriteRepository) Insert(ctx context.Context, name string, quantity int, reason, url *string, actorID uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO snack_requests (request_id, name, quantity, reason, url, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING request_id
	`

	var requestID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &requestID, query,
		uuid.New(), name, quantity, reason, url, models.StatusPending, actorID)

	logger.Log.Infow("insert snack request",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, quantity, actorID},
		"result", requestID,
		"error", err,
	)

	return requestID, err
}

// Update rewrites a request's fields and resets it to pending.
// Returns sql.ErrNoRows when no row matches.
func (r *RequestWriteRepository) Update(ctx context.Context, requestID uuid.UUID, name string, quantity int, reason, url *string) error {
	query := `
		UPDATE snack_requests
		SET name = $2, quantity = $3, reason = $4, url = $5, status = $6, updated_at = NOW()
		WHERE request_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		requestID, name, quantity, reason, url, models.StatusPending)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("update snack request",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, name, quantity},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetStatusIfPending transitions a request to a terminal status, but only
// while it is still pending. The condition lives inside the update clause,
// so two concurrent approvals cannot both succeed. Returns sql.ErrNoRows
// when the request is missing or no longer pending.
func (r *RequestWriteRepository) SetStatusIfPending(ctx context.Context, requestID uuid.UUID, status string, approverID uuid.UUID) error {
	query := `
		UPDATE snack_requests
		SET status = $2, approved_by = $3, updated_at = NOW()
		WHERE request_id = $1 AND status = $4
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, requestID, status, approverID, models.StatusPending)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("set snack request status",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, status, approverID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a request row. Returns sql.ErrNoRows when absent.
func (r *RequestWriteRepository) Delete(ctx context.Context, requestID uuid.UUID) error {
	query := `DELETE FROM snack_requests WHERE request_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, requestID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("delete snack request",
		"query", query,
		"args", []any{requestID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RequestReadRepository handles snack request read operations
type RequestReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRequestReadRepository(db *sqlx.DB, txGetter TxGetter) *RequestReadRepository {
	return &RequestReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the request with the given id, or nil when absent.
func (r *RequestReadRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*models.SnackRequestDB, error) {
	const query = `
		SELECT request_id, name, quantity, reason, url, status, created_by, approved_by, created_at, updated_at
		FROM snack_requests
		WHERE request_id = $1
	`

	var req models.SnackRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, requestID)

	logger.Log.Infow("get snack request by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List returns all requests joined with the requester's username, newest first.
func (r *RequestReadRepository) List(ctx context.Context) ([]models.SnackRequestRow, error) {
	const query = `
		SELECT sr.request_id, sr.name, sr.quantity, sr.reason, sr.url, sr.status,
		       sr.created_by, sr.approved_by, sr.created_at, sr.updated_at,
		       u.username AS requester_name
		FROM snack_requests sr
		JOIN users u ON u.user_id = sr.created_by
		ORDER BY sr.created_at DESC
	`

	var rows []models.SnackRequestRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query)

	logger.Log.Infow("list snack requests",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	return rows, err
}
