package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// ErrNoQuotes is returned when the quote table is empty.
var ErrNoQuotes = errors.New("no quotes available")

// QuotePicker reads and pins quotes in the durable store.
type QuotePicker interface {
	Random(ctx context.Context) (*models.QuoteDB, error)
	GetForDay(ctx context.Context, day time.Time) (*models.QuoteDB, error)
	PinForDay(ctx context.Context, day time.Time, quoteID uuid.UUID) error
}

// QuoteCache is the hot day-keyed cache in front of the durable store.
type QuoteCache interface {
	GetForDay(ctx context.Context, day time.Time) (string, error)
	SetForDay(ctx context.Context, day time.Time, text string) error
}

// QuoteService serves the dashboard's daily quote: Redis first, then the
// durable day pin, then a fresh random pick that becomes the day's quote.
type QuoteService struct {
	picker QuotePicker
	cache  QuoteCache

	now func() time.Time
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(picker QuotePicker, cache QuoteCache) *QuoteService {
	return &QuoteService{
		picker: picker,
		cache:  cache,
		now:    time.Now,
	}
}

// DailyQuote returns today's quote text and where it came from
// ("cache" or "random").
func (s *QuoteService) DailyQuote(ctx context.Context) (text, source string, err error) {
	day := startOfDay(s.now())

	if s.cache != nil {
		if cached, err := s.cache.GetForDay(ctx, day); err == nil {
			return cached, "cache", nil
		}
	}

	pinned, err := s.picker.GetForDay(ctx, day)
	if err != nil {
		logger.Log.Errorw("failed to read pinned quote", "error", err)
		return "", "", err
	}
	if pinned != nil {
		s.fillCache(ctx, day, pinned.Text)
		return pinned.Text, "cache", nil
	}

	quote, err := s.picker.Random(ctx)
	if err != nil {
		logger.Log.Errorw("failed to pick random quote", "error", err)
		return "", "", err
	}
	if quote == nil {
		return "", "", ErrNoQuotes
	}

	if err := s.picker.PinForDay(ctx, day, quote.QuoteID); err != nil {
		logger.Log.Errorw("failed to pin quote for day", "quoteID", quote.QuoteID, "error", err)
		return "", "", err
	}

	s.fillCache(ctx, day, quote.Text)
	return quote.Text, "random", nil
}

// fillCache is best-effort: a cache write failure only costs a reread.
func (s *QuoteService) fillCache(ctx context.Context, day time.Time, text string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetForDay(ctx, day, text); err != nil {
		logger.Log.Errorw("failed to cache daily quote", "error", err)
	}
}
