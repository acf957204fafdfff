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

// QuoteRepository serves the daily quote pick and its durable day cache.
type QuoteRepository struct {
	db *sqlx.DB
}

func NewQuoteRepository(db *sqlx.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Random returns one random quote, or nil when the table is empty.
func (r *QuoteRepository) Random(ctx context.Context) (*models.QuoteDB, error) {
	const query = `
		SELECT quote_id, text, created_at
		FROM quotes
		ORDER BY RANDOM()
		LIMIT 1
	`

	var quote models.QuoteDB
	err := r.db.GetContext(ctx, &quote, query)

	logger.Log.Infow("pick random quote",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetForDay returns the quote already pinned to the given day, or nil.
func (r *QuoteRepository) GetForDay(ctx context.Context, day time.Time) (*models.QuoteDB, error) {
	const query = `
		SELECT q.quote_id, q.text, q.created_at
		FROM quote_cache c
		JOIN quotes q ON q.quote_id = c.quote_id
		WHERE c.day = $1
	`

	var quote models.QuoteDB
	err := r.db.GetContext(ctx, &quote, query, day)

	logger.Log.Infow("get quote for day",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{day},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// PinForDay records the day's chosen quote. The unique day column plus ON
// CONFLICT keeps concurrent first views from pinning two different quotes;
// the loser of the race simply keeps the winner's row.
func (r *QuoteRepository) PinForDay(ctx context.Context, day time.Time, quoteID uuid.UUID) error {
	query := `
		INSERT INTO quote_cache (day, quote_id)
		VALUES ($1, $2)
		ON CONFLICT (day) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, day, quoteID)

	logger.Log.Infow("pin quote for day",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{day, quoteID},
		"error", err,
	)

	return err
}
