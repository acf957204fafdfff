package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// SnackWriteRepository handles snack write operations
type SnackWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSnackWriteRepository(db *sqlx.DB, txGetter TxGetter) *SnackWriteRepository {
	return &SnackWriteRepository{db: db, txGetter: txGetter}
}

// AdjustQuantity applies a signed delta to a snack's quantity in one
// conditional update. The guard `quantity + delta >= 0` makes concurrent
// decrements serialize on the row without ever going below zero. Returns
// sql.ErrNoRows when the snack is missing or the guard fails.
func (r *SnackWriteRepository) AdjustQuantity(ctx context.Context, snackID uuid.UUID, delta int, actorID uuid.UUID) (int, error) {
	query := `
		UPDATE snacks
		SET quantity = quantity + $2, updated_at = NOW(), updated_by = $3
		WHERE snack_id = $1 AND quantity + $2 >= 0
		RETURNING quantity
	`

	var quantity int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &quantity, query, snackID, delta, actorID)

	logger.Log.Infow("adjust snack quantity",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{snackID, delta, actorID},
		"result", quantity,
		"error", err,
	)

	return quantity, err
}

// Insert creates a new snack row and returns its id.
func (r *SnackWriteRepository) Insert(ctx context.Context, name string, quantity int, expireDate *time.Time, actorID uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO snacks (snack_id, name, quantity, expire_date, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, NOW(), $5, NOW(), $5)
		RETURNING snack_id
	`

	var snackID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &snackID, query, uuid.New(), name, quantity, expireDate, actorID)

	logger.Log.Infow("insert snack",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, quantity, expireDate, actorID},
		"result", snackID,
		"error", err,
	)

	return snackID, err
}

// Update rewrites the mutable snack fields. Returns sql.ErrNoRows when no
// row matches the id.
func (r *SnackWriteRepository) Update(ctx context.Context, snackID uuid.UUID, name string, quantity int, expireDate *time.Time, actorID uuid.UUID) error {
	query := `
		UPDATE snacks
		SET name = $2, quantity = $3, expire_date = $4, updated_at = NOW(), updated_by = $5
		WHERE snack_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, snackID, name, quantity, expireDate, actorID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("update snack",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{snackID, name, quantity, expireDate, actorID},
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

// Delete removes a snack row. History rows referencing it are kept.
func (r *SnackWriteRepository) Delete(ctx context.Context, snackID uuid.UUID) error {
	query := `DELETE FROM snacks WHERE snack_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, snackID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("delete snack",
		"query", query,
		"args", []any{snackID},
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

// SnackReadRepository handles snack read operations
type SnackReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSnackReadRepository(db *sqlx.DB, txGetter TxGetter) *SnackReadRepository {
	return &SnackReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the snack with the given id, or nil when absent.
func (r *SnackReadRepository) GetByID(ctx context.Context, snackID uuid.UUID) (*models.SnackDB, error) {
	const query = `
		SELECT snack_id, name, quantity, expire_date, created_at, created_by, updated_at, updated_by
		FROM snacks
		WHERE snack_id = $1
	`

	var snack models.SnackDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &snack, query, snackID)

	logger.Log.Infow("get snack by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{snackID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snack, nil
}

// GetByName returns the snack with the given name, or nil when absent.
// Used by request approval to merge into existing stock.
func (r *SnackReadRepository) GetByName(ctx context.Context, name string) (*models.SnackDB, error) {
	const query = `
		SELECT snack_id, name, quantity, expire_date, created_at, created_by, updated_at, updated_by
		FROM snacks
		WHERE name = $1
	`

	var snack models.SnackDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &snack, query, name)

	logger.Log.Infow("get snack by name",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snack, nil
}

// ExistsWithName reports whether another snack already uses the name.
// excludeID skips the row being edited.
func (r *SnackReadRepository) ExistsWithName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM snacks
			WHERE name = $1 AND ($2::UUID IS NULL OR snack_id <> $2)
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, name, excludeID)

	logger.Log.Infow("snack name exists",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// List returns all snacks, newest first.
func (r *SnackReadRepository) List(ctx context.Context) ([]models.SnackDB, error) {
	const query = `
		SELECT snack_id, name, quantity, expire_date, created_at, created_by, updated_at, updated_by
		FROM snacks
		ORDER BY created_at DESC
	`

	var snacks []models.SnackDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &snacks, query)

	logger.Log.Infow("list snacks",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(snacks),
		"error", err,
	)

	return snacks, err
}

// ListExpiring returns snacks whose expiry date falls inside the inclusive
// window. Snacks without an expiry date never match.
func (r *SnackReadRepository) ListExpiring(ctx context.Context, from, to time.Time) ([]models.SnackDB, error) {
	const query = `
		SELECT snack_id, name, quantity, expire_date, created_at, created_by, updated_at, updated_by
		FROM snacks
		WHERE expire_date IS NOT NULL AND expire_date BETWEEN $1 AND $2
		ORDER BY expire_date
	`

	var snacks []models.SnackDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &snacks, query, from, to)

	logger.Log.Infow("list expiring snacks",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{from, to},
		"result", len(snacks),
		"error", err,
	)

	return snacks, err
}
