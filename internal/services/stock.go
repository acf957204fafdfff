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

var (
	// ErrSnackNotFound is returned when no snack row matches the target id.
	ErrSnackNotFound = errors.New("snack not found")
	// ErrInsufficientStock is returned when a decrement would take a snack below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrSnackAlreadyExists is returned when a snack name is already taken.
	ErrSnackAlreadyExists = errors.New("snack already exists")
)

// TxRunner runs a closure inside a single database transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// SnackReader defines read-only operations for snacks.
type SnackReader interface {
	GetByID(ctx context.Context, snackID uuid.UUID) (*models.SnackDB, error)
	GetByName(ctx context.Context, name string) (*models.SnackDB, error)
	ExistsWithName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	List(ctx context.Context) ([]models.SnackDB, error)
}

// SnackWriter defines write operations for snacks.
type SnackWriter interface {
	AdjustQuantity(ctx context.Context, snackID uuid.UUID, delta int, actorID uuid.UUID) (int, error)
	Insert(ctx context.Context, name string, quantity int, expireDate *time.Time, actorID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, snackID uuid.UUID, name string, quantity int, expireDate *time.Time, actorID uuid.UUID) error
	Delete(ctx context.Context, snackID uuid.UUID) error
}

// HistoryAppender appends one immutable audit row inside the caller's
// transaction.
type HistoryAppender interface {
	Append(ctx context.Context, snackID *uuid.UUID, userID uuid.UUID, action string, quantity *int, memo *string) error
}

// StockService mutates snack stock. Every mutation and its history row
// share one transaction; a Kafka event goes out after the commit.
type StockService struct {
	tx          TxRunner
	reader      SnackReader
	writer      SnackWriter
	history     HistoryAppender
	kafkaWriter KafkaWriter
}

// NewStockService creates a new StockService.
func NewStockService(tx TxRunner, reader SnackReader, writer SnackWriter, history HistoryAppender, kafkaWriter KafkaWriter) *StockService {
	return &StockService{
		tx:          tx,
		reader:      reader,
		writer:      writer,
		history:     history,
		kafkaWriter: kafkaWriter,
	}
}

// Increase adds one unit to a snack's stock and returns the new quantity.
func (s *StockService) Increase(ctx context.Context, snackID, actorID uuid.UUID) (int, error) {
	return s.adjust(ctx, snackID, actorID, +1)
}

// Decrease removes one unit from a snack's stock and returns the new
// quantity. Fails with ErrInsufficientStock at zero; nothing is written.
func (s *StockService) Decrease(ctx context.Context, snackID, actorID uuid.UUID) (int, error) {
	return s.adjust(ctx, snackID, actorID, -1)
}

func (s *StockService) adjust(ctx context.Context, snackID, actorID uuid.UUID, delta int) (int, error) {
	action := models.ActionIncrease
	if delta < 0 {
		action = models.ActionDecrease
	}

	var newQuantity int
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		quantity, err := s.writer.AdjustQuantity(ctx, snackID, delta, actorID)
		if errors.Is(err, sql.ErrNoRows) {
			// The conditional update matched nothing: either the row is
			// missing or the non-negativity guard failed.
			snack, readErr := s.reader.GetByID(ctx, snackID)
			if readErr != nil {
				return readErr
			}
			if snack == nil {
				return ErrSnackNotFound
			}
			return ErrInsufficientStock
		}
		if err != nil {
			return err
		}

		magnitude := delta
		if magnitude < 0 {
			magnitude = -magnitude
		}
		if err := s.history.Append(ctx, &snackID, actorID, action, &magnitude, nil); err != nil {
			return err
		}

		newQuantity = quantity
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to adjust stock", "snackID", snackID, "delta", delta, "actorID", actorID, "error", err)
		return 0, err
	}

	publishEvent(ctx, s.kafkaWriter, models.StockEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		SnackID:   snackID.String(),
		UserID:    actorID.String(),
		Action:    action,
		Quantity:  1,
	})

	return newQuantity, nil
}

// Create stocks a brand-new snack and logs an "add" history row.
func (s *StockService) Create(ctx context.Context, actorID uuid.UUID, name string, quantity int, expireDate *time.Time) (uuid.UUID, error) {
	var snackID uuid.UUID
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.reader.ExistsWithName(ctx, name, nil)
		if err != nil {
			return err
		}
		if exists {
			return ErrSnackAlreadyExists
		}

		snackID, err = s.writer.Insert(ctx, name, quantity, expireDate, actorID)
		if err != nil {
			return err
		}

		memo := "snack added"
		return s.history.Append(ctx, &snackID, actorID, models.ActionAdd, &quantity, &memo)
	})
	if err != nil {
		logger.Log.Errorw("failed to create snack", "name", name, "actorID", actorID, "error", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.StockEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		SnackID:   snackID.String(),
		UserID:    actorID.String(),
		Action:    models.ActionAdd,
		Quantity:  quantity,
	})

	return snackID, nil
}

// Edit rewrites a snack's name, quantity and expiry, logging an "edit" row.
func (s *StockService) Edit(ctx context.Context, actorID, snackID uuid.UUID, name string, quantity int, expireDate *time.Time) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.reader.ExistsWithName(ctx, name, &snackID)
		if err != nil {
			return err
		}
		if exists {
			return ErrSnackAlreadyExists
		}

		if err := s.writer.Update(ctx, snackID, name, quantity, expireDate, actorID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSnackNotFound
			}
			return err
		}

		memo := "snack edited"
		return s.history.Append(ctx, &snackID, actorID, models.ActionEdit, &quantity, &memo)
	})
	if err != nil {
		logger.Log.Errorw("failed to edit snack", "snackID", snackID, "actorID", actorID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.StockEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		SnackID:   snackID.String(),
		UserID:    actorID.String(),
		Action:    models.ActionEdit,
		Quantity:  quantity,
	})

	return nil
}

// Delete removes a snack row. The history row written first keeps the
// snack id as a dangling reference, so the audit trail outlives the snack.
func (s *StockService) Delete(ctx context.Context, actorID, snackID uuid.UUID) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		snack, err := s.reader.GetByID(ctx, snackID)
		if err != nil {
			return err
		}
		if snack == nil {
			return ErrSnackNotFound
		}

		memo := "deleted snack: " + snack.Name
		if err := s.history.Append(ctx, &snackID, actorID, models.ActionDelete, &snack.Quantity, &memo); err != nil {
			return err
		}

		return s.writer.Delete(ctx, snackID)
	})
	if err != nil {
		logger.Log.Errorw("failed to delete snack", "snackID", snackID, "actorID", actorID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.StockEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		SnackID:   snackID.String(),
		UserID:    actorID.String(),
		Action:    models.ActionDelete,
	})

	return nil
}

// List returns all stocked snacks, newest first.
func (s *StockService) List(ctx context.Context) ([]models.SnackDB, error) {
	snacks, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list snacks", "error", err)
		return nil, err
	}
	return snacks, nil
}
