package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// AlertWriteRepository handles expiry alert write operations
type AlertWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAlertWriteRepository(db *sqlx.DB, txGetter TxGetter) *AlertWriteRepository {
	return &AlertWriteRepository{db: db, txGetter: txGetter}
}

// InsertIfAbsent inserts an unread alert unless one already exists for the
// same (snack_id, expire_date). The unique index plus ON CONFLICT makes
// the check-and-insert a single atomic statement, so concurrent generator
// runs cannot double-insert. Reports whether a row was created.
func (r *AlertWriteRepository) InsertIfAbsent(ctx context.Context, snackID uuid.UUID, expireDate time.Time, daysLeft int) (bool, error) {
	query := `
		INSERT INTO snack_alerts (alert_id, snack_id, expire_date, days_left, is_read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		ON CONFLICT (snack_id, expire_date) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		uuid.New(), snackID, expireDate, daysLeft)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("insert expiry alert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{snackID, expireDate, daysLeft},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// MarkRead flags an alert as read. Returns sql.ErrNoRows when absent.
func (r *AlertWriteRepository) MarkRead(ctx context.Context, alertID uuid.UUID) error {
	query := `UPDATE snack_alerts SET is_read = TRUE WHERE alert_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, alertID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("mark alert read",
		"query", query,
		"args", []any{alertID},
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

// AlertReadRepository handles expiry alert read operations
type AlertReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAlertReadRepository(db *sqlx.DB, txGetter TxGetter) *AlertReadRepository {
	return &AlertReadRepository{db: db, txGetter: txGetter}
}

// ListUnread returns unread alerts, soonest expiry first.
func (r *AlertReadRepository) ListUnread(ctx context.Context) ([]models.SnackAlertDB, error) {
	const query = `
		SELECT alert_id, snack_id, expire_date, days_left, is_read, created_at
		FROM snack_alerts
		WHERE is_read = FALSE
		ORDER BY expire_date, created_at
	`

	var alerts []models.SnackAlertDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &alerts, query)

	logger.Log.Infow("list unread alerts",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(alerts),
		"error", err,
	)

	return alerts, err
}
