package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// HistoryWriteRepository appends audit records. Rows it writes are never
// updated or deleted.
type HistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHistoryWriteRepository(db *sqlx.DB, txGetter TxGetter) *HistoryWriteRepository {
	return &HistoryWriteRepository{db: db, txGetter: txGetter}
}

// Append writes one audit row through the caller's transaction when one is
// open, so a mutation and its record commit or roll back together.
func (r *HistoryWriteRepository) Append(ctx context.Context, snackID *uuid.UUID, userID uuid.UUID, action string, quantity *int, memo *string) error {
	query := `
		INSERT INTO snack_histories (history_id, snack_id, user_id, action, quantity, memo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		uuid.New(), snackID, userID, action, quantity, memo)

	logger.Log.Infow("append snack history",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{snackID, userID, action, quantity},
		"error", err,
	)

	return err
}

// HistoryReadRepository serves the audit trail page.
type HistoryReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHistoryReadRepository(db *sqlx.DB, txGetter TxGetter) *HistoryReadRepository {
	return &HistoryReadRepository{db: db, txGetter: txGetter}
}

// List returns history rows joined with snack and actor names, newest
// first, optionally bounded by an inclusive created-at window. The snack
// join is a left join: deleted snacks leave the name null but the row stays.
func (r *HistoryReadRepository) List(ctx context.Context, from, to *time.Time) ([]models.SnackHistoryRow, error) {
	const query = `
		SELECT h.history_id, s.name AS snack_name, u.username,
		       h.action, h.quantity, h.memo, h.created_at
		FROM snack_histories h
		LEFT JOIN snacks s ON s.snack_id = h.snack_id
		LEFT JOIN users u ON u.user_id = h.user_id
		WHERE ($1::TIMESTAMPTZ IS NULL OR h.created_at >= $1)
		  AND ($2::TIMESTAMPTZ IS NULL OR h.created_at <= $2)
		ORDER BY h.created_at DESC, h.history_id DESC
	`

	var rows []models.SnackHistoryRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, from, to)

	logger.Log.Infow("list snack history",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{from, to},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}
