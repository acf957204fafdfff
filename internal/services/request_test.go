package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/snackops/snackledger/internal/models"
)

func TestRequestService_Approve_ExistingSnack(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	snackID := uuid.New()
	actorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRequestReader(ctrl)
	writer := NewMockRequestWriter(ctrl)
	snackReader := NewMockSnackReader(ctrl)
	snackWriter := NewMockSnackWriter(ctrl)
	history := NewMockHistoryAppender(ctrl)
	kafka := NewMockKafkaWriter(ctrl)

	reader.EXPECT().GetByID(gomock.Any(), requestID).Return(&models.SnackRequestDB{
		RequestID: requestID,
		Name:      "Cola",
		Quantity:  5,
		Status:    models.StatusPending,
	}, nil)
	writer.EXPECT().SetStatusIfPending(gomock.Any(), requestID, models.StatusApproved, actorID).Return(nil)
	snackReader.EXPECT().GetByName(gomock.Any(), "Cola").Return(&models.SnackDB{SnackID: snackID, Name: "Cola", Quantity: 3}, nil)
	snackWriter.EXPECT().AdjustQuantity(gomock.Any(), snackID, 5, actorID).Return(8, nil)
	history.EXPECT().Append(gomock.Any(), &snackID, actorID, models.ActionApproved, gomock.Any(), gomock.Nil()).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewRequestService(passthroughTx(ctrl), reader, writer, snackReader, snackWriter, history, kafka)
	assert.NoError(t, svc.Approve(ctx, requestID, actorID))
}

func TestRequestService_Approve_NewSnack(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	snackID := uuid.New()
	actorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRequestReader(ctrl)
	writer := NewMockRequestWriter(ctrl)
	snackReader := NewMockSnackReader(ctrl)
	snackWriter := NewMockSnackWriter(ctrl)
	history := NewMockHistoryAppender(ctrl)
	kafka := NewMockKafkaWriter(ctrl)

	reader.EXPECT().GetByID(gomock.Any(), requestID).Return(&models.SnackRequestDB{
		RequestID: requestID,
		Name:      "Pocky",
		Quantity:  2,
		Status:    models.StatusPending,
	}, nil)
	writer.EXPECT().SetStatusIfPending(gomock.Any(), requestID, models.StatusApproved, actorID).Return(nil)
	snackReader.EXPECT().GetByName(gomock.Any(), "Pocky").Return(nil, nil)
	// A fresh snack has no expiry until someone edits it in.
	snackWriter.EXPECT().Insert(gomock.Any(), "Pocky", 2, gomock.Nil(), actorID).Return(snackID, nil)
	history.EXPECT().Append(gomock.Any(), &snackID, actorID, models.ActionApproved, gomock.Any(), gomock.Nil()).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewRequestService(passthroughTx(ctrl), reader, writer, snackReader, snackWriter, history, kafka)
	assert.NoError(t, svc.Approve(ctx, requestID, actorID))
}

func TestRequestService_Approve_NotPending(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	actorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRequestReader(ctrl)
	writer := NewMockRequestWriter(ctrl)

	reader.EXPECT().GetByID(gomock.Any(), requestID).Return(&models.SnackRequestDB{
		RequestID: requestID,
		Name:      "Cola",
		Quantity:  5,
		Status:    models.StatusApproved,
	}, nil)
	writer.EXPECT().SetStatusIfPending(gomock.Any(), requestID, models.StatusApproved, actorID).Return(sql.ErrNoRows)

	svc := NewRequestService(passthroughTx(ctrl), reader, writer, NewMockSnackReader(ctrl), NewMockSnackWriter(ctrl), NewMockHistoryAppender(ctrl), nil)
	err := svc.Approve(ctx, requestID, actorID)

	assert.ErrorIs(t, err, ErrRequestNotPending)
}

func TestRequestService_Approve_NotFound(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRequestReader(ctrl)
	reader.EXPECT().GetByID(gomock.Any(), requestID).Return(nil, nil)

	svc := NewRequestService(passthroughTx(ctrl), reader, NewMockRequestWriter(ctrl), NewMockSnackReader(ctrl), NewMockSnackWriter(ctrl), NewMockHistoryAppender(ctrl), nil)
	err := svc.Approve(ctx, requestID, uuid.New())

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestService_Reject(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	actorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRequestReader(ctrl)
	writer := NewMockRequestWriter(ctrl)
	history := NewMockHistoryAppender(ctrl)
	kafka := NewMockKafkaWriter(ctrl)

	reader.EXPECT().GetByID(gomock.Any(), requestID).Return(&models.SnackRequestDB{
		RequestID: requestID,
		Name:      "Cola",
		Quantity:  5,
		Status:    models.StatusPending,
	}, nil)
	writer.EXPECT().SetStatusIfPending(gomock.Any(), requestID, models.StatusRejected, actorID).Return(nil)
	// No snack is touched on rejection, so the row carries a nil snack id.
	history.EXPECT().Append(gomock.Any(), gomock.Nil(), actorID, models.ActionRejected, gomock.Any(), gomock.Any()).Return(nil)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewRequestService(passthroughTx(ctrl), reader, writer, NewMockSnackReader(ctrl), NewMockSnackWriter(ctrl), history, kafka)
	assert.NoError(t, svc.Reject(ctx, requestID, actorID))
}

func TestRequestService_Update_NotOwner(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	ownerID := uuid.New()
	actorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRequestReader(ctrl)
	reader.EXPECT().GetByID(gomock.Any(), requestID).Return(&models.SnackRequestDB{
		RequestID: requestID,
		Name:      "Cola",
		Quantity:  5,
		Status:    models.StatusPending,
		CreatedBy: ownerID,
	}, nil)

	svc := NewRequestService(passthroughTx(ctrl), reader, NewMockRequestWriter(ctrl), NewMockSnackReader(ctrl), NewMockSnackWriter(ctrl), NewMockHistoryAppender(ctrl), nil)
	err := svc.Update(ctx, actorID, requestID, "Cola", 6, nil, nil)

	assert.ErrorIs(t, err, ErrNotRequestOwner)
}

func TestRequestService_Delete_OwnerAndAdmin(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name    string
		actorID uuid.UUID
		admin   bool
		wantErr error
	}{
		{name: "owner deletes own request", actorID: ownerID, admin: false, wantErr: nil},
		{name: "admin deletes any request", actorID: otherID, admin: true, wantErr: nil},
		{name: "stranger is refused", actorID: otherID, admin: false, wantErr: ErrNotRequestOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requestID := uuid.New()
			reader := NewMockRequestReader(ctrl)
			writer := NewMockRequestWriter(ctrl)
			history := NewMockHistoryAppender(ctrl)

			reader.EXPECT().GetByID(gomock.Any(), requestID).Return(&models.SnackRequestDB{
				RequestID: requestID,
				Name:      "Cola",
				Quantity:  5,
				Status:    models.StatusPending,
				CreatedBy: ownerID,
			}, nil)
			if tt.wantErr == nil {
				history.EXPECT().Append(gomock.Any(), gomock.Nil(), tt.actorID, models.ActionDelete, gomock.Any(), gomock.Any()).Return(nil)
				writer.EXPECT().Delete(gomock.Any(), requestID).Return(nil)
			}

			svc := NewRequestService(passthroughTx(ctrl), reader, writer, NewMockSnackReader(ctrl), NewMockSnackWriter(ctrl), history, nil)
			err := svc.Delete(ctx, requestID, tt.actorID, tt.admin)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
