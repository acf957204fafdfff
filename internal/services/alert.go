package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// ErrAlertNotFound is returned when no alert row matches the target id.
var ErrAlertNotFound = errors.New("alert not found")

// ExpiringSnackLister lists snacks whose expiry falls in a date window.
type ExpiringSnackLister interface {
	ListExpiring(ctx context.Context, from, to time.Time) ([]models.SnackDB, error)
}

// AlertWriter defines write operations for expiry alerts.
type AlertWriter interface {
	InsertIfAbsent(ctx context.Context, snackID uuid.UUID, expireDate time.Time, daysLeft int) (bool, error)
	MarkRead(ctx context.Context, alertID uuid.UUID) error
}

// AlertReader defines read operations for expiry alerts.
type AlertReader interface {
	ListUnread(ctx context.Context) ([]models.SnackAlertDB, error)
}

// AlertService generates deduplicated expiry alerts. Each snack's insert
// is its own atomic statement; a rerun over an unchanged snack set creates
// nothing new.
type AlertService struct {
	snacks ExpiringSnackLister
	writer AlertWriter
	reader AlertReader

	now func() time.Time // injectable clock for tests
}

// NewAlertService creates a new AlertService.
func NewAlertService(snacks ExpiringSnackLister, writer AlertWriter, reader AlertReader) *AlertService {
	return &AlertService{
		snacks: snacks,
		writer: writer,
		reader: reader,
		now:    time.Now,
	}
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Generate scans snacks expiring within thresholdDays of today (inclusive)
// and inserts an unread alert for each, skipping pairs that already have
// one. Returns how many alerts were created.
func (s *AlertService) Generate(ctx context.Context, thresholdDays int) (int, error) {
	// expire_date is a DATE column and scans back as a UTC midnight, so
	// the window bounds and the day arithmetic must use the same clock or
	// the local offset leaks into days_left.
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	threshold := today.AddDate(0, 0, thresholdDays)

	expiring, err := s.snacks.ListExpiring(ctx, today, threshold)
	if err != nil {
		logger.Log.Errorw("failed to list expiring snacks", "error", err)
		return 0, err
	}

	created := 0
	for _, snack := range expiring {
		if snack.ExpireDate == nil {
			continue
		}

		daysLeft := int(snack.ExpireDate.Sub(today).Hours() / 24)

		inserted, err := s.writer.InsertIfAbsent(ctx, snack.SnackID, *snack.ExpireDate, daysLeft)
		if err != nil {
			logger.Log.Errorw("failed to insert expiry alert", "snackID", snack.SnackID, "error", err)
			return created, err
		}
		if inserted {
			created++
		}
	}

	logger.Log.Infow("expiry alert generation finished",
		"threshold_days", thresholdDays,
		"candidates", len(expiring),
		"created", created,
	)

	return created, nil
}

// ListUnread returns unread alerts, soonest expiry first.
func (s *AlertService) ListUnread(ctx context.Context) ([]models.SnackAlertDB, error) {
	alerts, err := s.reader.ListUnread(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list unread alerts", "error", err)
		return nil, err
	}
	return alerts, nil
}

// MarkRead flags one alert as read.
func (s *AlertService) MarkRead(ctx context.Context, alertID uuid.UUID) error {
	if err := s.writer.MarkRead(ctx, alertID); err != nil {
		logger.Log.Errorw("failed to mark alert read", "alertID", alertID, "error", err)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}
	return nil
}
