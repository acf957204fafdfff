package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snackops/snackledger/internal/models"
)

func TestRequestRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	requesterID := seedUser(t, db, "alice", models.RoleMember)
	approverID := seedUser(t, db, "boss", models.RoleAdmin)

	writer := NewRequestWriteRepository(db, TxFromContext)
	reader := NewRequestReadRepository(db, TxFromContext)

	t.Run("insert starts pending", func(t *testing.T) {
		reason := "out of stock"
		requestID, err := writer.Insert(ctx, "Cola", 5, &reason, nil, requesterID)
		assert.NoError(t, err)

		req, err := reader.GetByID(ctx, requestID)
		assert.NoError(t, err)
		assert.NotNil(t, req)
		assert.Equal(t, models.StatusPending, req.Status)
		assert.Equal(t, requesterID, req.CreatedBy)
		assert.Nil(t, req.ApprovedBy)
	})

	t.Run("status flips exactly once", func(t *testing.T) {
		requestID, err := writer.Insert(ctx, "Pocky", 2, nil, nil, requesterID)
		assert.NoError(t, err)

		assert.NoError(t, writer.SetStatusIfPending(ctx, requestID, models.StatusApproved, approverID))

		// Second resolution loses the pending guard.
		err = writer.SetStatusIfPending(ctx, requestID, models.StatusRejected, approverID)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		req, err := reader.GetByID(ctx, requestID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusApproved, req.Status)
		assert.NotNil(t, req.ApprovedBy)
		assert.Equal(t, approverID, *req.ApprovedBy)
	})

	t.Run("update resets to pending", func(t *testing.T) {
		requestID, err := writer.Insert(ctx, "Senbei", 1, nil, nil, requesterID)
		assert.NoError(t, err)
		assert.NoError(t, writer.SetStatusIfPending(ctx, requestID, models.StatusRejected, approverID))

		assert.NoError(t, writer.Update(ctx, requestID, "Senbei", 3, nil, nil))

		req, err := reader.GetByID(ctx, requestID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, req.Status)
		assert.Equal(t, 3, req.Quantity)
	})

	t.Run("list joins requester name", func(t *testing.T) {
		rows, err := reader.List(ctx)
		assert.NoError(t, err)
		assert.NotEmpty(t, rows)
		for _, row := range rows {
			if row.CreatedBy == requesterID {
				assert.Equal(t, "alice", row.RequesterName)
			}
		}
	})

	t.Run("delete", func(t *testing.T) {
		requestID, err := writer.Insert(ctx, "Wasabi Peas", 1, nil, nil, requesterID)
		assert.NoError(t, err)

		assert.NoError(t, writer.Delete(ctx, requestID))

		req, err := reader.GetByID(ctx, requestID)
		assert.NoError(t, err)
		assert.Nil(t, req)

		assert.ErrorIs(t, writer.Delete(ctx, requestID), sql.ErrNoRows)
	})
}
