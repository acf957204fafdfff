package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

var (
	// ErrRequestNotFound is returned when no request row matches the target id.
	ErrRequestNotFound = errors.New("snack request not found")
	// ErrRequestNotPending is returned when a terminal request is approved or
	// rejected again. Terminal states never transition.
	ErrRequestNotPending = errors.New("snack request is not pending")
	// ErrNotRequestOwner is returned when a non-admin touches someone else's request.
	ErrNotRequestOwner = errors.New("not the request owner")
)

// RequestReader defines read-only operations for snack requests.
type RequestReader interface {
	GetByID(ctx context.Context, requestID uuid.UUID) (*models.SnackRequestDB, error)
	List(ctx context.Context) ([]models.SnackRequestRow, error)
}

// RequestWriter defines write operations for snack requests.
type RequestWriter interface {
	Insert(ctx context.Context, name string, quantity int, reason, url *string, actorID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, requestID uuid.UUID, name string, quantity int, reason, url *string) error
	SetStatusIfPending(ctx context.Context, requestID uuid.UUID, status string, approverID uuid.UUID) error
	Delete(ctx context.Context, requestID uuid.UUID) error
}

// RequestService drives the pending -> approved|rejected lifecycle. The
// approval-side stock merge, the status flip and the audit row run in one
// transaction, so a failure at any step rolls back all of them.
type RequestService struct {
	tx          TxRunner
	reader      RequestReader
	writer      RequestWriter
	snackReader SnackReader
	snackWriter SnackWriter
	history     HistoryAppender
	kafkaWriter KafkaWriter
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	tx TxRunner,
	reader RequestReader,
	writer RequestWriter,
	snackReader SnackReader,
	snackWriter SnackWriter,
	history HistoryAppender,
	kafkaWriter KafkaWriter,
) *RequestService {
	return &RequestService{
		tx:          tx,
		reader:      reader,
		writer:      writer,
		snackReader: snackReader,
		snackWriter: snackWriter,
		history:     history,
		kafkaWriter: kafkaWriter,
	}
}

// Create files a new pending request.
func (s *RequestService) Create(ctx context.Context, actorID uuid.UUID, name string, quantity int, reason, url *string) (uuid.UUID, error) {
	requestID, err := s.writer.Insert(ctx, name, quantity, reason, url, actorID)
	if err != nil {
		logger.Log.Errorw("failed to create snack request", "name", name, "actorID", actorID, "error", err)
		return uuid.Nil, err
	}
	return requestID, nil
}

// Update edits a request and resets it to pending. Only the requester may
// edit, and only while the request has not been resolved.
func (s *RequestService) Update(ctx context.Context, actorID, requestID uuid.UUID, name string, quantity int, reason, url *string) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		req, err := s.reader.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if req.CreatedBy != actorID {
			return ErrNotRequestOwner
		}

		if err := s.writer.Update(ctx, requestID, name, quantity, reason, url); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRequestNotFound
			}
			return err
		}
		return nil
	})
}

// Approve transitions a pending request to approved and applies its stock:
// an existing snack with the requested name gains the requested quantity,
// otherwise a new snack is created with expiry unset. Exactly one
// "approved" history row is written, keyed to the affected snack.
func (s *RequestService) Approve(ctx context.Context, requestID, actorID uuid.UUID) error {
	var snackID uuid.UUID
	var requested int

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		req, err := s.reader.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}

		if err := s.writer.SetStatusIfPending(ctx, requestID, models.StatusApproved, actorID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// The row existed a moment ago, so the guard lost to a
				// concurrent resolution.
				return ErrRequestNotPending
			}
			return err
		}

		snack, err := s.snackReader.GetByName(ctx, req.Name)
		if err != nil {
			return err
		}
		if snack != nil {
			if _, err := s.snackWriter.AdjustQuantity(ctx, snack.SnackID, req.Quantity, actorID); err != nil {
				return err
			}
			snackID = snack.SnackID
		} else {
			snackID, err = s.snackWriter.Insert(ctx, req.Name, req.Quantity, nil, actorID)
			if err != nil {
				return err
			}
		}

		requested = req.Quantity
		return s.history.Append(ctx, &snackID, actorID, models.ActionApproved, &req.Quantity, nil)
	})
	if err != nil {
		logger.Log.Errorw("failed to approve snack request", "requestID", requestID, "actorID", actorID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.StockEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		SnackID:   snackID.String(),
		UserID:    actorID.String(),
		Action:    models.ActionApproved,
		Quantity:  requested,
	})

	return nil
}

// Reject transitions a pending request to rejected and records the
// approver. The history row carries no snack id: nothing was stocked.
func (s *RequestService) Reject(ctx context.Context, requestID, actorID uuid.UUID) error {
	var requested int

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		req, err := s.reader.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}

		if err := s.writer.SetStatusIfPending(ctx, requestID, models.StatusRejected, actorID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRequestNotPending
			}
			return err
		}

		requested = req.Quantity
		memo := fmt.Sprintf("rejected request: %s", req.Name)
		return s.history.Append(ctx, nil, actorID, models.ActionRejected, &req.Quantity, &memo)
	})
	if err != nil {
		logger.Log.Errorw("failed to reject snack request", "requestID", requestID, "actorID", actorID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, models.StockEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    actorID.String(),
		Action:    models.ActionRejected,
		Quantity:  requested,
	})

	return nil
}

// Delete removes a request. Admins may delete any request, requesters only
// their own. The audit row is written before the row disappears.
func (s *RequestService) Delete(ctx context.Context, requestID, actorID uuid.UUID, admin bool) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		req, err := s.reader.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if !admin && req.CreatedBy != actorID {
			return ErrNotRequestOwner
		}

		memo := fmt.Sprintf("deleted request: %s", req.Name)
		if err := s.history.Append(ctx, nil, actorID, models.ActionDelete, &req.Quantity, &memo); err != nil {
			return err
		}

		return s.writer.Delete(ctx, requestID)
	})
	if err != nil {
		logger.Log.Errorw("failed to delete snack request", "requestID", requestID, "actorID", actorID, "error", err)
		return err
	}
	return nil
}

// List returns every request with its requester's name, newest first.
func (s *RequestService) List(ctx context.Context) ([]models.SnackRequestRow, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list snack requests", "error", err)
		return nil, err
	}
	return rows, nil
}
